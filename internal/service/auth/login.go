package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// Login exchanges e-mail and password for a provider session.
// Returns ErrUnauthorized for wrong credentials and ErrForbidden while
// the e-mail is unconfirmed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.provider.SignIn(ctx, normalizeEmail(input.Email), input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", sess.Identity.UserID.String()))

	return sess, nil
}
