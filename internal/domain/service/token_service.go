package service

import (
	"time"

	"eventer/internal/domain/entity"
)

// TokenClaims is the verified content of a bearer token: who the caller is
// and what role they carry. The core trusts the role claim as given.
type TokenClaims struct {
	UserName string
	Role     entity.Role
}

// TokenService issues and verifies the bearer tokens used by the HTTP layer.
type TokenService interface {
	// GenerateToken creates a signed token carrying the username and role claims.
	GenerateToken(userName string, role entity.Role) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// AccessTokenDuration returns the configured token time-to-live.
	AccessTokenDuration() time.Duration
}
