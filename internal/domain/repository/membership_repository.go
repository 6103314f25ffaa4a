package repository

import (
	"context"
	"errors"

	"eventer/internal/domain/entity"
)

// ErrMembershipNotFound is returned when no membership row exists for a
// (profile, event) pair.
var ErrMembershipNotFound = errors.New("membership not found")

// MembershipRepository manages the Event-Profile join relation.
type MembershipRepository interface {
	// Find looks up the membership row for a (profile, event) pair.
	Find(ctx context.Context, profileID, eventID int64) (*entity.Membership, error)

	// Create inserts a membership row. The storage layer enforces uniqueness
	// of the (profile, event) pair as a backstop to the service-level check.
	Create(ctx context.Context, membership *entity.Membership) error

	// CountByEvent returns the number of profiles that joined the event.
	CountByEvent(ctx context.Context, eventID int64) (int64, error)

	// FindEventsByProfile returns every event the profile has joined, each
	// reconstructed with its location and category.
	FindEventsByProfile(ctx context.Context, profileID int64) ([]*entity.Event, error)
}
