package entity

// ActivityStats is the aggregate activity bundle the badge evaluator consumes.
// All counts are derived fresh from the user's current reviews.
type ActivityStats struct {
	ReviewCount        int            `json:"reviewCount"`        // Total reviews written by the user.
	VisitedBakeryCount int            `json:"visitedBakeryCount"` // Distinct bakeries the user has reviewed.
	PerfectRatingCount int            `json:"perfectRatingCount"` // Reviews with a 5-star rating.
	AverageRating      float64        `json:"averageRating"`      // Mean rating across the user's reviews, one decimal.
	FavoriteCount      int            `json:"favoriteCount"`      // Bakeries the user has favorited.
	ThemeVisitCounts   map[string]int `json:"themeVisitCounts"`   // Distinct visited bakeries per theme name.
}

// DistributionEntry is a single (name, value) pair for profile charts.
type DistributionEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProfileStats extends ActivityStats with the chart distributions shown on the
// profile page.
type ProfileStats struct {
	ActivityStats
	RegionDistribution []DistributionEntry `json:"regionDistribution"`
	ThemeDistribution  []DistributionEntry `json:"themeDistribution"`
}
