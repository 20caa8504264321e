package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Badge condition types. theme_visit conditions carry the theme name after a
// colon, e.g. "theme_visit:크루아상".
const (
	ConditionReviewCount   = "review_count"
	ConditionBakeryCount   = "bakery_count"
	ConditionPerfectRating = "perfect_rating"
	ConditionThemeVisitPfx = "theme_visit:"
)

// Badge is an achievement definition from the badge catalog.
type Badge struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	ConditionType  string    `json:"conditionType"`
	ConditionValue int       `json:"conditionValue"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Satisfied reports whether the user's current activity meets this badge's
// condition. Unknown condition types never match, so a catalog entry with a
// typo cannot be awarded by accident.
func (b *Badge) Satisfied(stats ActivityStats) bool {
	var stat int
	switch {
	case b.ConditionType == ConditionReviewCount:
		stat = stats.ReviewCount
	case b.ConditionType == ConditionBakeryCount:
		stat = stats.VisitedBakeryCount
	case b.ConditionType == ConditionPerfectRating:
		stat = stats.PerfectRatingCount
	case strings.HasPrefix(b.ConditionType, ConditionThemeVisitPfx):
		theme := strings.TrimPrefix(b.ConditionType, ConditionThemeVisitPfx)
		stat = stats.ThemeVisitCounts[theme]
	default:
		return false
	}
	return stat >= b.ConditionValue
}

// UserBadge records that a user earned a badge. The (UserID, BadgeID) pair is
// unique in storage; a badge is never awarded twice.
type UserBadge struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	BadgeID  uuid.UUID `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
	Badge    *Badge    `json:"badge,omitempty"`
}
