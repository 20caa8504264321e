package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRatings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ratings []int
		want    RatingAggregate
	}{
		{
			name:    "empty yields zero aggregate",
			ratings: nil,
			want:    RatingAggregate{Count: 0, Average: 0},
		},
		{
			name:    "single rating",
			ratings: []int{4},
			want:    RatingAggregate{Count: 1, Average: 4},
		},
		{
			name:    "average rounds to one decimal",
			ratings: []int{5, 4, 4},
			want:    RatingAggregate{Count: 3, Average: 4.3},
		},
		{
			name:    "rounds half up",
			ratings: []int{4, 5}, // 4.5 stays 4.5
			want:    RatingAggregate{Count: 2, Average: 4.5},
		},
		{
			name:    "repeating third rounds down",
			ratings: []int{1, 1, 2}, // 1.333...
			want:    RatingAggregate{Count: 3, Average: 1.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AggregateRatings(tt.ratings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundRating(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 4.7, RoundRating(4.666), 1e-9)
	assert.InDelta(t, 4.6, RoundRating(4.649), 1e-9)
	assert.InDelta(t, 0, RoundRating(0), 1e-9)
}
