// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"eventer/internal/domain/entity"
)

// ErrEventNotFound is a domain-specific error returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	// Create persists a new event entity and fills in its generated ID.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves a single event, including its location and category.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// FindByIDLocked retrieves an event holding a row-level lock for the
	// duration of the surrounding transaction. Used to serialize concurrent
	// join attempts against the capacity check.
	FindByIDLocked(ctx context.Context, id int64) (*entity.Event, error)

	// FindAll returns every event in insertion order.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// Update persists the current state of an already-stored event.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event. Membership rows cascade at the storage layer.
	Delete(ctx context.Context, id int64) error
}
