package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventer/config"
	deliverycontext "eventer/internal/delivery/context"
	"eventer/internal/domain/entity"
	"eventer/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.GenerateToken("Jefke", entity.RoleMod)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc), token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mw, token := newAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var nextCalled bool
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, "Jefke", c.Get(string(deliverycontext.KeyUserName)))
		assert.Equal(t, entity.RoleMod, c.Get(string(deliverycontext.KeyRole)))

		assert.Equal(t, "Jefke", deliverycontext.CallerUserName(c.Request().Context()))
		role, ok := deliverycontext.CallerRole(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, entity.RoleMod, role)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(echo.Context) error {
		t.Fatal("next handler should not run without a token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw, token := newAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(echo.Context) error {
		t.Fatal("next handler should not run without a bearer token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(echo.Context) error {
		t.Fatal("next handler should not run with a bad token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
