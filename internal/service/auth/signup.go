package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// SignUp registers a new account with the identity provider.
// Returns ErrAlreadyExists if the e-mail is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	if err := input.Validate(s.opts.MinPasswordLength); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)

	sess, err := s.provider.SignUp(ctx, email, input.Password, s.opts.SignUpRedirectURL)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	result := &SignUpResult{ConfirmationRequired: sess.AccessToken == ""}
	if !result.ConfirmationRequired {
		result.Session = sess
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", sess.Identity.UserID.String()),
		slog.Bool("confirmation_required", result.ConfirmationRequired))

	return result, nil
}
