package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeSatisfied(t *testing.T) {
	t.Parallel()

	stats := ActivityStats{
		ReviewCount:        10,
		VisitedBakeryCount: 7,
		PerfectRatingCount: 3,
		ThemeVisitCounts:   map[string]int{"크루아상": 5},
	}

	tests := []struct {
		name  string
		badge Badge
		want  bool
	}{
		{
			name:  "review count met",
			badge: Badge{ConditionType: ConditionReviewCount, ConditionValue: 10},
			want:  true,
		},
		{
			name:  "review count not met",
			badge: Badge{ConditionType: ConditionReviewCount, ConditionValue: 11},
			want:  false,
		},
		{
			name:  "bakery count met",
			badge: Badge{ConditionType: ConditionBakeryCount, ConditionValue: 5},
			want:  true,
		},
		{
			name:  "perfect rating met exactly",
			badge: Badge{ConditionType: ConditionPerfectRating, ConditionValue: 3},
			want:  true,
		},
		{
			name:  "theme visit met",
			badge: Badge{ConditionType: "theme_visit:크루아상", ConditionValue: 5},
			want:  true,
		},
		{
			name:  "theme visit unknown theme",
			badge: Badge{ConditionType: "theme_visit:베이글", ConditionValue: 1},
			want:  false,
		},
		{
			name:  "unknown condition type never matches",
			badge: Badge{ConditionType: "follower_count", ConditionValue: 0},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.badge.Satisfied(stats))
		})
	}
}
