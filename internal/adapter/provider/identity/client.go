// Package identity is an HTTP client for the hosted, GoTrue-compatible
// identity provider. Passwords and e-mail confirmation live there; this
// service never stores credentials.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/creatorhub-backend/internal/config"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const (
	authPath   = "/auth/v1"
	retryDelay = 500 * time.Millisecond
)

// Client talks to the provider's auth REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
	now        func() time.Time
}

// NewClient creates a Client for the configured provider project.
func NewClient(cfg config.AuthConfig, logger *slog.Logger) *Client {
	return NewClientWithURL(strings.TrimSuffix(cfg.ProviderURL, "/")+authPath, cfg.AnonKey, cfg.ProviderTimeout, logger)
}

// NewClientWithURL creates a Client with a custom auth base URL (for testing).
func NewClientWithURL(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "identity"),
		retryDelay: retryDelay,
		now:        time.Now,
	}
}

// SignUp registers a new user. When the provider requires e-mail
// confirmation the returned session has an empty AccessToken.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (*domain.Session, error) {
	query := url.Values{}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}

	var out apiSession
	err := c.call(ctx, http.MethodPost, "/signup", query, "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}

	sess, ok := out.session(c.now())
	if !ok {
		return nil, fmt.Errorf("identity: signup: malformed user in response")
	}
	return sess, nil
}

// SignIn exchanges e-mail and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var out apiSession
	err := c.call(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"password"}}, "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}

	sess, ok := out.session(c.now())
	if !ok || sess.AccessToken == "" {
		return nil, fmt.Errorf("identity: token: malformed session in response")
	}
	return sess, nil
}

// Recover sends a password-reset e-mail that links back to redirectTo.
func (c *Client) Recover(ctx context.Context, email, redirectTo string) error {
	query := url.Values{}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}
	return c.call(ctx, http.MethodPost, "/recover", query, "", map[string]string{"email": email}, nil)
}

// UpdatePassword sets a new password for the user owning accessToken.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, password string) error {
	return c.call(ctx, http.MethodPut, "/user", nil, accessToken, map[string]string{"password": password}, nil)
}

// User returns the identity behind accessToken.
func (c *Client) User(ctx context.Context, accessToken string) (domain.Identity, error) {
	var out apiUser
	if err := c.call(ctx, http.MethodGet, "/user", nil, accessToken, nil, &out); err != nil {
		return domain.Identity{}, err
	}
	ident, ok := out.identity()
	if !ok {
		return domain.Identity{}, fmt.Errorf("identity: user: malformed id %q", out.ID)
	}
	return ident, nil
}

// Logout revokes the refresh tokens of the session behind accessToken.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	return c.call(ctx, http.MethodPost, "/logout", nil, accessToken, nil, nil)
}

// call performs one API request and decodes a 2xx body into out (if non-nil).
func (c *Client) call(ctx context.Context, method, path string, query url.Values, bearer string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("identity: encode %s: %w", path, err)
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	newReq := func() (*http.Request, error) {
		var rd io.Reader
		if payload != nil {
			rd = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		return req, nil
	}

	c.log.DebugContext(ctx, "identity request", slog.String("method", method), slog.String("path", path))

	resp, err := c.doWithRetry(ctx, newReq, path)
	if err != nil {
		c.log.ErrorContext(ctx, "identity request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("identity: %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("identity: read %s body: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(path, resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("identity: decode %s: %w", path, err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, newReq func() (*http.Request, error), path string) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "identity retry", slog.String("path", path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// Message fragments the provider uses for specific failures.
var messageErrors = []struct {
	fragment string
	err      error
}{
	{"invalid login credentials", domain.ErrUnauthorized},
	{"invalid_credentials", domain.ErrUnauthorized},
	{"email not confirmed", domain.ErrForbidden},
	{"email_not_confirmed", domain.ErrForbidden},
	{"user already registered", domain.ErrAlreadyExists},
	{"user_already_exists", domain.ErrAlreadyExists},
	{"user not found", domain.ErrNotFound},
	{"too many requests", domain.ErrRateLimited},
	{"rate limit", domain.ErrRateLimited},
}

// mapError converts a non-2xx provider response into a domain error.
// The provider message is kept in the error text.
func mapError(path string, status int, body []byte) error {
	var apiErr apiError
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.text()
	if msg == "" {
		msg = http.StatusText(status)
	}

	lower := strings.ToLower(msg + " " + apiErr.ErrorCode)
	for _, m := range messageErrors {
		if strings.Contains(lower, m.fragment) {
			return &Error{Status: status, Message: msg, err: m.err}
		}
	}

	var sentinel error
	switch {
	case status == http.StatusTooManyRequests:
		sentinel = domain.ErrRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = domain.ErrUnauthorized
	case status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case status >= 400 && status < 500:
		sentinel = domain.ErrValidation
	default:
		sentinel = fmt.Errorf("identity: %s: unexpected status %d", path, status)
	}
	return &Error{Status: status, Message: msg, err: sentinel}
}

// Error is a provider failure. It unwraps to the matching domain sentinel.
type Error struct {
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity provider: %s (status %d)", e.Message, e.Status)
}

func (e *Error) Unwrap() error { return e.err }

// ProviderMessage extracts the provider's message from err, if any.
func ProviderMessage(err error) (string, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message, true
	}
	return "", false
}
