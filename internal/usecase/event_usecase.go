// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"eventer/internal/domain/entity"
)

// --- Input DTOs ---

// LocationInput carries the caller-supplied fields of a location.
type LocationInput struct {
	Street  string `json:"street" validate:"required"`
	Number  int    `json:"number"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// CategoryInput carries the caller-supplied fields of a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// EventInput defines the data required to create or edit an event.
// Capacity and price bounds are enforced by entity validation, not here.
type EventInput struct {
	Name            string        `json:"name"`
	Date            time.Time     `json:"date"`
	Price           float64       `json:"price"`
	MinParticipants int           `json:"minParticipants"`
	MaxParticipants int           `json:"maxParticipants"`
	Location        LocationInput `json:"location"`
	Category        CategoryInput `json:"category"`
}

// EventUsecase defines the event participation subsystem: creation, role-gated
// mutation, capacity-bounded joining and participant accounting.
type EventUsecase interface {
	// AddEvent creates fresh location and category rows, then the event.
	// Any authenticated caller may create events; there is no role gate here.
	AddEvent(ctx context.Context, input *EventInput) (*entity.Event, error)

	// GetEvents returns the full event collection in insertion order.
	GetEvents(ctx context.Context) ([]*entity.Event, error)

	// GetEventByID returns the event or a not-found failure.
	GetEventByID(ctx context.Context, id int64) (*entity.Event, error)

	// EditEvent replaces the event's fields. Permitted for Admin and Mod only.
	// Location and category edits are upserts: new rows, not patches.
	EditEvent(ctx context.Context, id int64, input *EventInput, role entity.Role) (*entity.Event, error)

	// DeleteEvent removes the event. Permitted for Admin only. Irreversible;
	// membership rows cascade at the storage layer.
	DeleteEvent(ctx context.Context, id int64, role entity.Role) error

	// JoinEvent adds the named user's profile to the event, enforcing the
	// capacity bound and duplicate-join prevention atomically.
	JoinEvent(ctx context.Context, eventID int64, userName string) error

	// GetEventParticipants returns the membership count for the event.
	GetEventParticipants(ctx context.Context, eventID int64) (int64, error)

	// GetEventsOfParticipant returns every event the named user has joined.
	GetEventsOfParticipant(ctx context.Context, userName string) ([]*entity.Event, error)
}
