package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventer/config"
	"eventer/internal/domain/entity"
	"eventer/internal/domain/service"
)

const defaultAccessTTL = 8 * time.Hour

// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed and carry the caller's username and role claims.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// GenerateToken creates a signed token carrying the username and role claims.
func (s *jwtService) GenerateToken(userName string, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"username": userName,
		"role":     role.String(),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the token's signature and expiry and extracts the
// username and role claims. Unknown role strings are rejected here so the
// core only ever sees the closed Role enum.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userName, ok := claims["username"].(string)
	if !ok || userName == "" {
		return nil, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := entity.RoleFromString(roleStr)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &service.TokenClaims{UserName: userName, Role: role}, nil
}

// AccessTokenDuration returns the configured token time-to-live.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
