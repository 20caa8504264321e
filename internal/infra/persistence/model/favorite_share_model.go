package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteShareModel mirrors the 'favorite_shares' table. Each user has at
// most one share and each token resolves to at most one user.
type FavoriteShareModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShareToken string    `gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteShareModel) TableName() string {
	return "favorite_shares"
}
