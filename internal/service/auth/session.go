package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

// Logout ends the provider session of the current token. A missing or
// already expired session is not an error.
func (s *Service) Logout(ctx context.Context) error {
	token, ok := ctxutil.AccessTokenFromCtx(ctx)
	if !ok {
		return nil
	}

	err := s.provider.Logout(ctx, token)
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// Session returns the identity behind the current token.
func (s *Service) Session(ctx context.Context) (domain.Identity, error) {
	token, ok := ctxutil.AccessTokenFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return s.ValidateToken(ctx, token)
}

// ValidateToken validates an access token and returns its identity.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Identity, error) {
	ident, err := s.verifier.Verify(token)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			err = fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
		}
		return domain.Identity{}, err
	}
	return ident, nil
}
