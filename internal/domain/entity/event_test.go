package entity

import (
	"testing"
	"time"

	domainerrors "eventer/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventFields() EventFields {
	return EventFields{
		Name:            "Board game night",
		Date:            time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC),
		Price:           5,
		MinParticipants: 5,
		MaxParticipants: 10,
		Location:        Location{ID: 1, Street: "Kerkstraat", City: "Antwerp", Country: "Belgium"},
		Category:        Category{ID: 1, Name: "Games"},
	}
}

func TestNewEvent_Success(t *testing.T) {
	event, err := NewEvent(validEventFields())
	require.NoError(t, err)
	assert.Equal(t, "Board game night", event.Name)
	assert.False(t, event.LastEdit.IsZero())
	assert.Equal(t, event.DateCreated, event.LastEdit)
	assert.False(t, event.Persisted())
}

func TestNewEvent_Validation(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(fields *EventFields)
		expectedMessage string
	}{
		{
			name:            "empty name",
			mutate:          func(f *EventFields) { f.Name = "" },
			expectedMessage: "Name is required.",
		},
		{
			name:            "whitespace name",
			mutate:          func(f *EventFields) { f.Name = "   " },
			expectedMessage: "Name is required.",
		},
		{
			name:            "negative price",
			mutate:          func(f *EventFields) { f.Price = -0.01 },
			expectedMessage: "Price must be positive.",
		},
		{
			name:            "negative minimum participants",
			mutate:          func(f *EventFields) { f.MinParticipants = -1 },
			expectedMessage: "Minimum participants must be positive.",
		},
		{
			name:            "zero maximum participants",
			mutate:          func(f *EventFields) { f.MaxParticipants = 0 },
			expectedMessage: "Maximum participants must be positive.",
		},
		{
			name: "maximum below minimum",
			mutate: func(f *EventFields) {
				f.MinParticipants = 8
				f.MaxParticipants = 3
			},
			expectedMessage: "Maximum participants must be greater than minimum participants.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validEventFields()
			tt.mutate(&fields)

			event, err := NewEvent(fields)
			require.Error(t, err)
			assert.Nil(t, event)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.CodeValidation, appErr.ErrorCode())
			assert.Equal(t, tt.expectedMessage, appErr.Message())
		})
	}
}

func TestNewEvent_BoundaryValues(t *testing.T) {
	fields := validEventFields()
	fields.Price = 0
	fields.MinParticipants = 0
	fields.MaxParticipants = 1

	event, err := NewEvent(fields)
	require.NoError(t, err)
	assert.Equal(t, float64(0), event.Price)
	assert.Equal(t, 1, event.MaxParticipants)
}

func TestNewEvent_MaxEqualsMin(t *testing.T) {
	fields := validEventFields()
	fields.MinParticipants = 10
	fields.MaxParticipants = 10

	_, err := NewEvent(fields)
	require.NoError(t, err)
}

func TestEvent_Apply_Success(t *testing.T) {
	event, err := NewEvent(validEventFields())
	require.NoError(t, err)

	event.LastEdit = time.Now().Add(-time.Hour)
	previousEdit := event.LastEdit
	created := event.DateCreated

	fields := validEventFields()
	fields.Name = "Quiz night"
	fields.Price = 7.5

	require.NoError(t, event.Apply(fields))
	assert.Equal(t, "Quiz night", event.Name)
	assert.Equal(t, 7.5, event.Price)
	assert.True(t, event.LastEdit.After(previousEdit))
	assert.Equal(t, created, event.DateCreated)
}

func TestEvent_Apply_InvalidFieldsLeaveEventUntouched(t *testing.T) {
	event, err := NewEvent(validEventFields())
	require.NoError(t, err)
	previousEdit := event.LastEdit

	fields := validEventFields()
	fields.Name = "Quiz night"
	fields.MaxParticipants = -1

	err = event.Apply(fields)
	require.Error(t, err)
	assert.Equal(t, "Board game night", event.Name)
	assert.Equal(t, 10, event.MaxParticipants)
	assert.Equal(t, previousEdit, event.LastEdit)
}

func TestEvent_Persisted(t *testing.T) {
	event, err := NewEvent(validEventFields())
	require.NoError(t, err)
	assert.False(t, event.Persisted())

	event.ID = 1
	assert.True(t, event.Persisted())
}
