// Package auth implements the account flows. Credentials and sessions
// live with the hosted identity provider; this service validates input,
// forwards to the provider and verifies the tokens it issues.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// identityProvider is the hosted auth provider client.
type identityProvider interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	Recover(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
	Logout(ctx context.Context, accessToken string) error
}

// tokenVerifier validates provider-issued access tokens locally.
type tokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Options configures the auth flows.
type Options struct {
	// ResetRedirectURL is where the password-reset e-mail links to.
	ResetRedirectURL string
	// SignUpRedirectURL is where the confirmation e-mail links to.
	SignUpRedirectURL string
	MinPasswordLength int
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	provider identityProvider
	verifier tokenVerifier
	opts     Options
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, provider identityProvider, verifier tokenVerifier, opts Options) *Service {
	if opts.MinPasswordLength <= 0 {
		opts.MinPasswordLength = defaultMinPasswordLength
	}
	return &Service{
		log:      logger.With("service", "auth"),
		provider: provider,
		verifier: verifier,
		opts:     opts,
	}
}
