package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/pidgeonhole/rookery-api/internal/middleware"
	"github.com/pidgeonhole/rookery-api/pkg/identity"
)

type stubIntrospector struct {
	account identity.Account
	err     error
}

func (s *stubIntrospector) Login(ctx context.Context, userID, password string) (identity.Token, error) {
	return identity.Token{}, identity.ErrUnauthorized
}

func (s *stubIntrospector) Introspect(ctx context.Context, token string) (identity.Account, error) {
	if s.err != nil {
		return identity.Account{}, s.err
	}
	return s.account, nil
}

func signedToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ada"}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

func newGatedApp(client identity.Client, groups ...string) *fiber.App {
	app := fiber.New()

	handlers := []fiber.Handler{middleware.Authenticate(client)}
	if len(groups) > 0 {
		handlers = append(handlers, middleware.RequireGroup(groups...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserFromContext(c))
	})

	app.Get("/guarded", handlers...)
	return app
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	app := newGatedApp(&stubIntrospector{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateRejectsMalformedToken(t *testing.T) {
	app := newGatedApp(&stubIntrospector{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateRejectsTokenTheProviderRefuses(t *testing.T) {
	app := newGatedApp(&stubIntrospector{err: identity.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateStoresAccount(t *testing.T) {
	client := &stubIntrospector{account: identity.Account{Username: "ada", Groups: []string{"students"}}}
	app := newGatedApp(client)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireGroup(t *testing.T) {
	client := &stubIntrospector{account: identity.Account{Username: "grace", Groups: []string{"students"}}}

	forbidden := newGatedApp(client, "instructors")
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	resp, err := forbidden.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	allowed := newGatedApp(client, "students", "instructors")
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	resp, err = allowed.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
