package auth

import "github.com/heartmarshall/creatorhub-backend/internal/domain"

// SignUpResult is returned by SignUp. Session is nil while the provider
// waits for the user to confirm their e-mail.
type SignUpResult struct {
	Session              *domain.Session
	ConfirmationRequired bool
}
