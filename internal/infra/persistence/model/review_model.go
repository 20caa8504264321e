package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel mirrors the 'reviews' table. Ratings are constrained to 1-5 at
// the database level.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BakeryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text"`
	PhotoURL  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	User   *UserModel   `gorm:"foreignKey:UserID"`
	Bakery *BakeryModel `gorm:"foreignKey:BakeryID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
