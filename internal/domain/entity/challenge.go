package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Challenge is a user-curated list of bakeries to visit.
type Challenge struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsPublic    bool            `json:"isPublic"`
	IsActive    bool            `json:"isActive"`
	ShareToken  string          `json:"shareToken,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []ChallengeItem `json:"items,omitempty"`
}

// ChallengeItem is one bakery slot in a challenge. VisitedAt is nil until the
// user marks the bakery visited.
type ChallengeItem struct {
	ID          uuid.UUID  `json:"id"`
	ChallengeID uuid.UUID  `json:"challengeId"`
	BakeryID    uuid.UUID  `json:"bakeryId"`
	OrderNum    int        `json:"orderNum"`
	VisitedAt   *time.Time `json:"visitedAt"`
	Memo        string     `json:"memo,omitempty"`
	Bakery      *Bakery    `json:"bakery,omitempty"`
}

// Visited reports whether this item has been checked off.
func (i *ChallengeItem) Visited() bool {
	return i.VisitedAt != nil
}

// ChallengeProgress summarizes completion of a challenge.
type ChallengeProgress struct {
	TotalCount         int `json:"total_count"`
	VisitedCount       int `json:"visited_count"`
	ProgressPercentage int `json:"progress_percentage"`
}

// ChallengeProgressOf computes progress over a challenge's items. An empty
// item list yields all zeroes rather than a division by zero.
func ChallengeProgressOf(items []ChallengeItem) ChallengeProgress {
	total := len(items)
	if total == 0 {
		return ChallengeProgress{}
	}
	visited := 0
	for i := range items {
		if items[i].Visited() {
			visited++
		}
	}
	pct := int(math.Round(float64(visited) / float64(total) * 100))
	return ChallengeProgress{
		TotalCount:         total,
		VisitedCount:       visited,
		ProgressPercentage: pct,
	}
}

// Progress is a convenience over the challenge's loaded items.
func (c *Challenge) Progress() ChallengeProgress {
	return ChallengeProgressOf(c.Items)
}
