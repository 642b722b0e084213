package http

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/library-service/internal/auth"
	"github.com/spec-kit/library-service/internal/observability"
)

func newGuardedApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := auth.NewTokenManager(key, &key.PublicKey, time.Minute)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	guard := auth.NewMiddleware(tokens)
	app.Get("/protected", guard.Handle, func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"subject": claims.Subject})
	})
	return app, tokens
}

func TestAuthGuard_MissingHeader(t *testing.T) {
	app, _ := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGuard_MalformedToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGuard_ExpiredToken(t *testing.T) {
	app, tokens := newGuardedApp(t)

	signed, _, err := tokens.IssueWithTTL("librarian@example.com", auth.TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGuard_ForeignKeyToken(t *testing.T) {
	app, _ := newGuardedApp(t)

	foreignKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	foreign := auth.NewTokenManager(foreignKey, &foreignKey.PublicKey, time.Minute)
	signed, _, err := foreign.Issue("librarian@example.com", auth.TokenTypeAccess)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGuard_RefreshTokenRejected(t *testing.T) {
	app, tokens := newGuardedApp(t)

	signed, _, err := tokens.Issue("librarian@example.com", auth.TokenTypeRefresh)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthGuard_ValidAccessToken(t *testing.T) {
	app, tokens := newGuardedApp(t)

	signed, _, err := tokens.Issue("librarian@example.com", auth.TokenTypeAccess)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
