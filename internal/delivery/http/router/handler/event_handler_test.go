package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/delivery/http/validator"
	"eventer/internal/domain/entity"
	"eventer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEventUsecase lets each test wire only the operations it expects.
type stubEventUsecase struct {
	addEventFn               func(ctx context.Context, input *usecase.EventInput) (*entity.Event, error)
	getEventsFn              func(ctx context.Context) ([]*entity.Event, error)
	getEventByIDFn           func(ctx context.Context, id int64) (*entity.Event, error)
	editEventFn              func(ctx context.Context, id int64, input *usecase.EventInput, role entity.Role) (*entity.Event, error)
	deleteEventFn            func(ctx context.Context, id int64, role entity.Role) error
	joinEventFn              func(ctx context.Context, eventID int64, userName string) error
	getEventParticipantsFn   func(ctx context.Context, eventID int64) (int64, error)
	getEventsOfParticipantFn func(ctx context.Context, userName string) ([]*entity.Event, error)
}

func (s *stubEventUsecase) AddEvent(ctx context.Context, input *usecase.EventInput) (*entity.Event, error) {
	return s.addEventFn(ctx, input)
}

func (s *stubEventUsecase) GetEvents(ctx context.Context) ([]*entity.Event, error) {
	return s.getEventsFn(ctx)
}

func (s *stubEventUsecase) GetEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	return s.getEventByIDFn(ctx, id)
}

func (s *stubEventUsecase) EditEvent(ctx context.Context, id int64, input *usecase.EventInput, role entity.Role) (*entity.Event, error) {
	return s.editEventFn(ctx, id, input, role)
}

func (s *stubEventUsecase) DeleteEvent(ctx context.Context, id int64, role entity.Role) error {
	return s.deleteEventFn(ctx, id, role)
}

func (s *stubEventUsecase) JoinEvent(ctx context.Context, eventID int64, userName string) error {
	return s.joinEventFn(ctx, eventID, userName)
}

func (s *stubEventUsecase) GetEventParticipants(ctx context.Context, eventID int64) (int64, error) {
	return s.getEventParticipantsFn(ctx, eventID)
}

func (s *stubEventUsecase) GetEventsOfParticipant(ctx context.Context, userName string) ([]*entity.Event, error) {
	return s.getEventsOfParticipantFn(ctx, userName)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestEventHandler_GetEvent_InvalidID(t *testing.T) {
	handler := NewEventHandler(&stubEventUsecase{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/events/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event id must be an integer")
}

func TestEventHandler_DeleteEvent_PassesRoleFromContext(t *testing.T) {
	var gotID int64
	var gotRole entity.Role

	uc := &stubEventUsecase{
		deleteEventFn: func(_ context.Context, id int64, role entity.Role) error {
			gotID = id
			gotRole = role

			return nil
		},
	}
	handler := NewEventHandler(uc, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/events/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set(string(deliverycontext.KeyRole), entity.RoleAdmin)

	require.NoError(t, handler.DeleteEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), gotID)
	assert.Equal(t, entity.RoleAdmin, gotRole)
}

func TestEventHandler_DeleteEvent_MissingRole(t *testing.T) {
	handler := NewEventHandler(&stubEventUsecase{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/events/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, handler.DeleteEvent(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventHandler_JoinEvent(t *testing.T) {
	var gotEventID int64
	var gotUserName string

	uc := &stubEventUsecase{
		joinEventFn: func(_ context.Context, eventID int64, userName string) error {
			gotEventID = eventID
			gotUserName = userName

			return nil
		},
	}
	handler := NewEventHandler(uc, testLogger())

	e := newTestEcho()
	body := strings.NewReader(`{"userName":"Jefke"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/3/join", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, handler.JoinEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotEventID)
	assert.Equal(t, "Jefke", gotUserName)
}

func TestEventHandler_JoinEvent_MissingUserName(t *testing.T) {
	handler := NewEventHandler(&stubEventUsecase{}, testLogger())

	e := newTestEcho()
	body := strings.NewReader(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/events/3/join", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := handler.JoinEvent(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestEventHandler_GetJoinedEvents(t *testing.T) {
	var gotUserName string

	uc := &stubEventUsecase{
		getEventsOfParticipantFn: func(_ context.Context, userName string) ([]*entity.Event, error) {
			gotUserName = userName

			return []*entity.Event{}, nil
		},
	}
	handler := NewEventHandler(uc, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/events/participant/Jefke/joined", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userName")
	c.SetParamValues("Jefke")

	require.NoError(t, handler.GetJoinedEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jefke", gotUserName)
}
