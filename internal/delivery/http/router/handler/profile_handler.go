package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/delivery/http/response"
	"eventer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// CompleteProfile attaches personal details to the authenticated account.
// The owner comes from the verified token, never from the request body.
func (h *ProfileHandler) CompleteProfile(c echo.Context) error {
	userName, ok := c.Get(string(deliverycontext.KeyUserName)).(string)
	if !ok || userName == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Username missing from token")
	}

	var input *usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CompleteProfile(c.Request().Context(), userName, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile completed successfully")
}
