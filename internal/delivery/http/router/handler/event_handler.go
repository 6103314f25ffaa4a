// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/delivery/http/response"
	"eventer/internal/domain/entity"
	"eventer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{uc: uc, logger: logger}
}

// GetEvents returns the full event collection.
func (h *EventHandler) GetEvents(c echo.Context) error {
	events, err := h.uc.GetEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Events retrieved successfully")
}

// GetEvent returns one event by id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id must be an integer")
	}

	event, err := h.uc.GetEventByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event retrieved successfully")
}

// AddEvent creates a new event. Any authenticated caller may create one;
// there is no role gate on creation.
func (h *EventHandler) AddEvent(c echo.Context) error {
	var input *usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.AddEvent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// EditEvent replaces an event's fields, gated on the caller's role claim.
func (h *EventHandler) EditEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id must be an integer")
	}

	var input *usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	role, ok := callerRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Role missing from token")
	}

	event, err := h.uc.EditEvent(c.Request().Context(), id, input, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteEvent removes an event, gated on the caller's role claim.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id must be an integer")
	}

	role, ok := callerRole(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Role missing from token")
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id, role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event deleted"}, "Event deleted successfully")
}

type joinEventRequest struct {
	UserName string `json:"userName" validate:"required"`
}

// JoinEvent adds the named user's profile to the event's participants.
func (h *EventHandler) JoinEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id must be an integer")
	}

	var req joinEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.JoinEvent(c.Request().Context(), id, req.UserName); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Joined event"}, "Joined event successfully")
}

// GetEventParticipants returns the membership count of an event.
func (h *EventHandler) GetEventParticipants(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Event id must be an integer")
	}

	count, err := h.uc.GetEventParticipants(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, count, "Participant count retrieved successfully")
}

// GetJoinedEvents returns every event the named user's profile has joined.
func (h *EventHandler) GetJoinedEvents(c echo.Context) error {
	userName := c.Param("userName")

	events, err := h.uc.GetEventsOfParticipant(c.Request().Context(), userName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Joined events retrieved successfully")
}

func eventID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func callerRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(deliverycontext.KeyRole)).(entity.Role)

	return role, ok
}
