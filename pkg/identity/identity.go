// Package identity is the HTTP client for the external identity provider.
// Rookery never checks passwords or token signatures itself: logins are
// proxied through the provider's password grant, and bearer tokens are
// validated by introspection, which also reports the account's group
// memberships (students, instructors).
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnauthorized is returned when the provider rejects the credentials or
// the token.
var ErrUnauthorized = errors.New("identity provider rejected credentials")

// Token is an access token issued by the provider's password grant.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Account describes the authenticated user as reported by introspection.
type Account struct {
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}

// InGroup reports whether the account belongs to the named group.
func (a Account) InGroup(name string) bool {
	for _, group := range a.Groups {
		if group == name {
			return true
		}
	}
	return false
}

// Client authenticates users and validates tokens against the provider.
type Client interface {
	Login(ctx context.Context, userID, password string) (Token, error)
	Introspect(ctx context.Context, token string) (Account, error)
}

// Option configures the HTTP client.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// HTTPClient talks to the provider's REST surface.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient builds an identity client for the given provider base URL.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "identity_client").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login performs a password grant and returns the issued token.
func (c *HTTPClient) Login(ctx context.Context, userID, password string) (Token, error) {
	payload, err := json.Marshal(map[string]string{
		"grant_type": "password",
		"username":   userID,
		"password":   password,
	})
	if err != nil {
		return Token{}, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token", bytes.NewReader(payload))
	if err != nil {
		return Token{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var token Token
	if err := c.do(req, &token); err != nil {
		return Token{}, err
	}

	return token, nil
}

// Introspect validates a bearer token and returns the account it belongs to.
func (c *HTTPClient) Introspect(ctx context.Context, token string) (Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/accounts/current", nil)
	if err != nil {
		return Account{}, fmt.Errorf("build introspection request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var account Account
	if err := c.do(req, &account); err != nil {
		return Account{}, err
	}

	return account, nil
}

func (c *HTTPClient) do(req *http.Request, target interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read identity response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= http.StatusBadRequest:
		c.logger.Warn().Int("status", resp.StatusCode).Msg("identity provider returned an error")
		return fmt.Errorf("identity provider: status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode identity response: %w", err)
	}

	return nil
}
