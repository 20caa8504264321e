package model

import (
	"time"

	"github.com/google/uuid"
)

// BadgeModel mirrors the 'badges' table, the achievement catalog.
type BadgeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Description    string    `gorm:"type:text"`
	Icon           string    `gorm:"type:varchar(20)"`
	ConditionType  string    `gorm:"type:varchar(100);not null"`
	ConditionValue int       `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BadgeModel) TableName() string {
	return "badges"
}

// UserBadgeModel mirrors the 'user_badges' table. The (user_id, badge_id)
// pair is unique; awards are append-only.
type UserBadgeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge"`
	BadgeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge"`
	EarnedAt time.Time `gorm:"not null;default:now()"`

	Badge *BadgeModel `gorm:"foreignKey:BadgeID"`
}

// TableName explicitly sets the table name for GORM.
func (UserBadgeModel) TableName() string {
	return "user_badges"
}
