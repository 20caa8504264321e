package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChallengeModel mirrors the 'challenges' table.
type ChallengeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	IsPublic    bool      `gorm:"not null;default:false"`
	IsActive    bool      `gorm:"not null;default:true"`
	ShareToken  string    `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Items []ChallengeBakeryModel `gorm:"foreignKey:ChallengeID"`
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ChallengeBakeryModel mirrors the 'challenge_bakeries' table, one bakery
// slot in a challenge. VisitedAt is null until the user checks it off.
type ChallengeBakeryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChallengeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_bakeries_pair"`
	BakeryID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_bakeries_pair"`
	OrderNum    int        `gorm:"not null"`
	VisitedAt   *time.Time `gorm:"index"`
	Memo        string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Bakery *BakeryModel `gorm:"foreignKey:BakeryID"`
}

// TableName explicitly sets the table name for GORM.
func (ChallengeBakeryModel) TableName() string {
	return "challenge_bakeries"
}
