package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

// RequestPasswordReset asks the provider to e-mail a reset link. Unknown
// addresses are reported as success so the endpoint does not reveal
// which e-mails have accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, input ForgotPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.provider.Recover(ctx, normalizeEmail(input.Email), s.opts.ResetRedirectURL)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.InfoContext(ctx, "password reset for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("auth.RequestPasswordReset: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested")
	return nil
}

// ResetPassword sets a new password using the recovery session the reset
// link signed the user into.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	token, ok := ctxutil.AccessTokenFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(s.opts.MinPasswordLength); err != nil {
		return err
	}

	if err := s.provider.UpdatePassword(ctx, token, input.Password); err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "password reset", slog.String("user_id", userID.String()))
	return nil
}
