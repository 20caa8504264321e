package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func visitedItem() ChallengeItem {
	now := time.Now()
	return ChallengeItem{VisitedAt: &now}
}

func TestChallengeProgressOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []ChallengeItem
		want  ChallengeProgress
	}{
		{
			name:  "no items yields all zeroes",
			items: nil,
			want:  ChallengeProgress{},
		},
		{
			name:  "nothing visited",
			items: []ChallengeItem{{}, {}, {}},
			want:  ChallengeProgress{TotalCount: 3, VisitedCount: 0, ProgressPercentage: 0},
		},
		{
			name:  "one of three rounds to 33",
			items: []ChallengeItem{visitedItem(), {}, {}},
			want:  ChallengeProgress{TotalCount: 3, VisitedCount: 1, ProgressPercentage: 33},
		},
		{
			name:  "two of three rounds to 67",
			items: []ChallengeItem{visitedItem(), visitedItem(), {}},
			want:  ChallengeProgress{TotalCount: 3, VisitedCount: 2, ProgressPercentage: 67},
		},
		{
			name:  "half rounds up to 50",
			items: []ChallengeItem{visitedItem(), {}},
			want:  ChallengeProgress{TotalCount: 2, VisitedCount: 1, ProgressPercentage: 50},
		},
		{
			name:  "all visited",
			items: []ChallengeItem{visitedItem(), visitedItem()},
			want:  ChallengeProgress{TotalCount: 2, VisitedCount: 2, ProgressPercentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ChallengeProgressOf(tt.items))
		})
	}
}
