package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BakeryModel mirrors the 'bakeries' table.
type BakeryModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string     `gorm:"type:varchar(100);not null"`
	Address        string     `gorm:"type:text;not null"`
	District       string     `gorm:"type:varchar(50);not null;index"`
	Lat            float64    `gorm:"type:decimal(10,7);not null"`
	Lng            float64    `gorm:"type:decimal(10,7);not null"`
	SignatureBread string     `gorm:"type:varchar(100)"`
	Description    string     `gorm:"type:text"`
	ImageURL       string     `gorm:"type:text"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Reviews []ReviewModel `gorm:"foreignKey:BakeryID"`
	Themes  []ThemeModel  `gorm:"many2many:bakery_themes"`
}

// TableName explicitly sets the table name for GORM.
func (BakeryModel) TableName() string {
	return "bakeries"
}

// ThemeModel mirrors the 'themes' table.
type ThemeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(50);unique;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50)"`
	Icon        string    `gorm:"type:varchar(20)"`
	Color       string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThemeModel) TableName() string {
	return "themes"
}

// BakeryThemeModel mirrors the 'bakery_themes' join table.
type BakeryThemeModel struct {
	BakeryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ThemeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (BakeryThemeModel) TableName() string {
	return "bakery_themes"
}
