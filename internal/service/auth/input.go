package auth

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const (
	defaultMinPasswordLength = 6
	maxPasswordLength        = 72
	maxEmailLength           = 254
)

// SignUpInput holds parameters for account registration.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = checkEmail(errs, i.Email)
	errs = checkPassword(errs, "password", i.Password, minPassword)
	if i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for e-mail + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = checkEmail(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ForgotPasswordInput holds the e-mail a reset link is sent to.
type ForgotPasswordInput struct {
	Email string
}

// Validate validates the forgot-password input.
func (i ForgotPasswordInput) Validate() error {
	if errs := checkEmail(nil, i.Email); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds the new password chosen on the reset screen.
type ResetPasswordInput struct {
	Password        string
	ConfirmPassword string
}

// Validate validates the reset-password input.
func (i ResetPasswordInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = checkPassword(errs, "password", i.Password, minPassword)
	if i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkEmail(errs []domain.FieldError, email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

// checkPassword requires the minimum length plus at least one lowercase
// letter, one uppercase letter and one digit.
func checkPassword(errs []domain.FieldError, field, password string, minLength int) []domain.FieldError {
	if password == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len([]rune(password)) < minLength {
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	}
	if len(password) > maxPasswordLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return append(errs, domain.FieldError{Field: field, Message: "must contain a lowercase letter, an uppercase letter and a digit"})
	}
	return errs
}
