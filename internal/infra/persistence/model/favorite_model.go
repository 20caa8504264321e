package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The (user_id, bakery_id) pair
// is unique so a bakery can only be favorited once per user.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_bakery"`
	BakeryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_bakery"`
	CreatedAt time.Time

	Bakery *BakeryModel `gorm:"foreignKey:BakeryID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
