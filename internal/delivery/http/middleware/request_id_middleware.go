package middleware

import (
	"log/slog"

	deliverycontext "eventer/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns each request a tracking ID (honoring an incoming
// X-Request-Id header) and stores a request-scoped logger carrying it, so
// every log line of one request can be correlated.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			requestLogger := logger.With(slog.String("requestID", requestID))

			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, requestLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
