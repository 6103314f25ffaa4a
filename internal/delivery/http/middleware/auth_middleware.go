// Package middleware contains the HTTP middlewares of the service.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the verified username
// and role claims on both the echo context and the request context, so
// handlers and usecases can read the caller's identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(string(deliverycontext.KeyUserName), claims.UserName)
		c.Set(string(deliverycontext.KeyRole), claims.Role)

		ctx := deliverycontext.WithCaller(c.Request().Context(), claims.UserName, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
