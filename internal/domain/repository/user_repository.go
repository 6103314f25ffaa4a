package repository

import (
	"context"
	"errors"

	"eventer/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound is returned when a user has no completed profile.
var ErrProfileNotFound = errors.New("profile not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// FindByUserName retrieves a single user by their unique username,
	// including their profile when one exists.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// FindAll returns every user account.
	FindAll(ctx context.Context) ([]*entity.User, error)
}

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// Create persists a new profile entity and fills in its generated ID.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile belonging to a user account.
	FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error)
}
