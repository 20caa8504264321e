package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a registered push token for badge award notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	Platform  string    `json:"platform"` // "ios", "android" or "web"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
