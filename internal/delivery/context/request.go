// Package context carries request-scoped values between the delivery layer
// and the application layer.
package context

import (
	"context"
	"log/slog"

	"eventer/internal/domain/entity"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserName is the key for the authenticated caller's username.
	KeyUserName ContextKey = "user_name"

	// KeyRole is the key for the authenticated caller's role claim.
	KeyRole ContextKey = "role"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestID extracts the request ID from the context, generating a fresh
// UUID when none was set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from the context,
// falling back to the given default.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithCaller returns a new context carrying the verified token claims.
func WithCaller(ctx context.Context, userName string, role entity.Role) context.Context {
	ctx = context.WithValue(ctx, KeyUserName, userName)

	return context.WithValue(ctx, KeyRole, role)
}

// CallerUserName extracts the authenticated username, empty if unauthenticated.
func CallerUserName(ctx context.Context) string {
	if name, ok := ctx.Value(KeyUserName).(string); ok {
		return name
	}

	return ""
}

// CallerRole extracts the authenticated role claim, reporting whether one is present.
func CallerRole(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(KeyRole).(entity.Role)

	return role, ok
}
