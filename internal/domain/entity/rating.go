package entity

import "math"

// RatingAggregate is the derived (count, average) pair recomputed from the
// current review set on every read. It is never cached at rest.
type RatingAggregate struct {
	Count   int     `json:"count"`   // Number of reviews contributing to the average.
	Average float64 `json:"average"` // Mean rating rounded to one decimal, 0 when Count is 0.
}

// AggregateRatings reduces a set of 1-5 review ratings into a RatingAggregate.
// An empty input yields {0, 0}.
func AggregateRatings(ratings []int) RatingAggregate {
	if len(ratings) == 0 {
		return RatingAggregate{}
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
	}

	average := float64(sum) / float64(len(ratings))

	return RatingAggregate{
		Count:   len(ratings),
		Average: RoundRating(average),
	}
}

// RoundRating rounds an average rating to one decimal place, half away from zero.
func RoundRating(average float64) float64 {
	return math.Round(average*10) / 10
}
