package entity

// RecommendedBundle is a themed set of bakeries surfaced on the weekly
// recommendation feed. IDs are stable slugs so the client can key on them.
type RecommendedBundle struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Bakeries    []RatedBakery `json:"bakeries"`
	Difficulty  string        `json:"difficulty"`
}
