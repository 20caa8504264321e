// Package usecase defines the application's use case interfaces, the contract
// between the delivery layer and the business logic.
package usecase

import (
	"context"
	"time"

	"breadmap/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Nickname string
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	Nickname        string
	ProfileImageURL string
}

// AuthTokens bundles the token pair returned on register and login.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Activity is one entry of the recent-activity feed: either a review or a
// favorite, newest first.
type Activity struct {
	ID        uuid.UUID             `json:"id"`
	Type      string                `json:"type"` // "review" or "favorite"
	Bakery    *entity.BakerySummary `json:"bakery,omitempty"`
	Rating    int                   `json:"rating,omitempty"`
	Comment   string                `json:"comment,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// UserUsecase defines the interface for account and profile use cases
type UserUsecase interface {
	// Register creates a new account and returns the user with a token pair
	Register(ctx context.Context, input RegisterInput) (*entity.User, *AuthTokens, error)

	// Login verifies credentials and returns the user with a token pair
	Login(ctx context.Context, email, password string) (*entity.User, *AuthTokens, error)

	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile updates a user's mutable profile fields
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// GetProfileStats computes the user's activity stats with chart distributions
	GetProfileStats(ctx context.Context, userID uuid.UUID) (*entity.ProfileStats, error)

	// GetRecentActivities merges the user's latest reviews and favorites into
	// one feed, newest first, capped at fifteen entries
	GetRecentActivities(ctx context.Context, userID uuid.UUID) ([]Activity, error)
}
