package identity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const testUserID = "7f1c2d3e-4a5b-4c6d-8e9f-0a1b2c3d4e5f"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewClientWithURL(srv.URL, "anon-key", time.Second, newTestLogger())
	c.retryDelay = time.Millisecond
	c.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestClient_SignIn_Success(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/token" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("apikey = %q", got)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ada@example.com" || body["password"] != "Secret1" {
			t.Errorf("body = %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "at", "refresh_token": "rt", "expires_in": 3600,
			"user": {"id": "` + testUserID + `", "email": "Ada@Example.com", "role": "authenticated"}
		}`))
	})

	sess, err := c.SignIn(context.Background(), "ada@example.com", "Secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.AccessToken != "at" || sess.RefreshToken != "rt" {
		t.Errorf("tokens = %q/%q", sess.AccessToken, sess.RefreshToken)
	}
	if sess.Identity.UserID.String() != testUserID {
		t.Errorf("UserID = %s", sess.Identity.UserID)
	}
	if sess.Identity.Email != "ada@example.com" {
		t.Errorf("Email = %q, want lower-cased", sess.Identity.Email)
	}
	want := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	if !sess.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", sess.ExpiresAt, want)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"invalid credentials", 400, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, domain.ErrUnauthorized},
		{"email not confirmed", 400, `{"code":400,"error_code":"email_not_confirmed","msg":"Email not confirmed"}`, domain.ErrForbidden},
		{"already registered", 422, `{"code":422,"msg":"User already registered"}`, domain.ErrAlreadyExists},
		{"user not found", 400, `{"msg":"User not found"}`, domain.ErrNotFound},
		{"rate limited by status", 429, `{"msg":"slow down"}`, domain.ErrRateLimited},
		{"rate limited by message", 400, `{"msg":"Too many requests"}`, domain.ErrRateLimited},
		{"weak password", 422, `{"msg":"Password should be at least 6 characters"}`, domain.ErrValidation},
		{"bad jwt", 401, `{"msg":"invalid JWT"}`, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.SignIn(context.Background(), "a@b.co", "x")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if _, ok := ProviderMessage(err); !ok {
				t.Errorf("ProviderMessage not available for %v", err)
			}
		})
	}
}

func TestClient_SignUp_Unconfirmed(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("redirect_to"); got != "http://localhost:3000/dashboard" {
			t.Errorf("redirect_to = %q", got)
		}
		w.Write([]byte(`{"id":"` + testUserID + `","email":"new@example.com"}`))
	})

	sess, err := c.SignUp(context.Background(), "new@example.com", "Secret1", "http://localhost:3000/dashboard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.AccessToken != "" {
		t.Errorf("AccessToken = %q, want empty until confirmed", sess.AccessToken)
	}
	if sess.Identity.Role != domain.UserRoleAuthenticated {
		t.Errorf("Role = %q", sess.Identity.Role)
	}
}

func TestClient_User_SendsBearer(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"id":"` + testUserID + `","email":"a@b.co","role":"authenticated"}`))
	})

	ident, err := c.User(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.Email != "a@b.co" {
		t.Errorf("Email = %q", ident.Email)
	}
}

func TestClient_UpdatePassword_And_Logout(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.UpdatePassword(context.Background(), "tok", "NewSecret1"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if err := c.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(paths) != 2 || paths[0] != "PUT /user" || paths[1] != "POST /logout" {
		t.Errorf("paths = %v", paths)
	}
}

func TestClient_RetryOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"email":"a@b.co"}` {
			t.Errorf("attempt %d body = %q", n, body)
		}
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	})

	if err := c.Recover(context.Background(), "a@b.co", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestClient_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.Recover(context.Background(), "a@b.co", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestClient_PersistentServerError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.Logout(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrUnauthorized, domain.ErrNotFound} {
		if errors.Is(err, sentinel) {
			t.Errorf("5xx must not map to %v", sentinel)
		}
	}
}
