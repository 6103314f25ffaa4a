package entity

import (
	"strings"
	"time"

	domainerrors "eventer/internal/domain/errors"
)

// Event is a schedulable activity with capacity bounds that profiles can join.
// Construction and mutation both run the full invariant set, so a reachable
// Event value is always structurally valid.
type Event struct {
	ID              int64     `json:"id"`              // Database identifier, zero while unpersisted.
	Name            string    `json:"name"`            // Display name, never empty.
	Date            time.Time `json:"date"`            // When the event takes place.
	Price           float64   `json:"price"`           // Entry price, never negative.
	MinParticipants int       `json:"minParticipants"` // Minimum number of participants, never negative.
	MaxParticipants int       `json:"maxParticipants"` // Capacity, always > 0 and >= MinParticipants.
	Location        Location  `json:"location"`        // Where the event takes place.
	Category        Category  `json:"category"`        // What kind of event it is.
	LastEdit        time.Time `json:"lastEdit"`        // Server-assigned timestamp of the last mutation.
	DateCreated     time.Time `json:"dateCreated"`     // Server-assigned timestamp of creation.
}

// EventFields carries the caller-supplied fields of an event, used both for
// construction and for whole-event edits. Location and Category are resolved
// to persisted sub-entities before they reach here.
type EventFields struct {
	Name            string
	Date            time.Time
	Price           float64
	MinParticipants int
	MaxParticipants int
	Location        Location
	Category        Category
}

// NewEvent constructs a validated Event. LastEdit and DateCreated are set to
// the construction time and are never client-supplied. Invalid fields fail
// fast with a validation error; no partially-constructed event escapes.
func NewEvent(fields EventFields) (*Event, error) {
	if err := validateEventFields(fields); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Event{
		Name:            fields.Name,
		Date:            fields.Date,
		Price:           fields.Price,
		MinParticipants: fields.MinParticipants,
		MaxParticipants: fields.MaxParticipants,
		Location:        fields.Location,
		Category:        fields.Category,
		LastEdit:        now,
		DateCreated:     now,
	}, nil
}

// Apply replaces the caller-editable fields as one atomic operation,
// re-running the full invariant set first. On failure the event is left
// untouched. LastEdit is refreshed on success.
func (e *Event) Apply(fields EventFields) error {
	if err := validateEventFields(fields); err != nil {
		return err
	}

	e.Name = fields.Name
	e.Date = fields.Date
	e.Price = fields.Price
	e.MinParticipants = fields.MinParticipants
	e.MaxParticipants = fields.MaxParticipants
	e.Location = fields.Location
	e.Category = fields.Category
	e.LastEdit = time.Now()

	return nil
}

// Persisted reports whether the event has been stored and assigned an ID.
func (e *Event) Persisted() bool {
	return e.ID != 0
}

func validateEventFields(fields EventFields) error {
	switch {
	case strings.TrimSpace(fields.Name) == "":
		return domainerrors.NewValidationError("Name is required.")
	case fields.Price < 0:
		return domainerrors.NewValidationError("Price must be positive.")
	case fields.MinParticipants < 0:
		return domainerrors.NewValidationError("Minimum participants must be positive.")
	case fields.MaxParticipants <= 0:
		return domainerrors.NewValidationError("Maximum participants must be positive.")
	case fields.MaxParticipants < fields.MinParticipants:
		return domainerrors.NewValidationError("Maximum participants must be greater than minimum participants.")
	default:
		return nil
	}
}
