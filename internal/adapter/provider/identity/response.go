package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// apiUser is the user object returned by /user, /signup and /token.
type apiUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// apiSession is the /token response. /signup returns the same shape when
// the project auto-confirms e-mails, or a bare user otherwise.
type apiSession struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	ExpiresAt    int64    `json:"expires_at"`
	User         *apiUser `json:"user"`

	// Bare-user fields of an unconfirmed sign-up.
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// apiError covers both error body formats the provider has used.
type apiError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error, e.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (u apiUser) identity() (domain.Identity, bool) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return domain.Identity{}, false
	}
	role := domain.UserRole(u.Role)
	if role == "" {
		role = domain.UserRoleAuthenticated
	}
	return domain.Identity{UserID: id, Email: strings.ToLower(u.Email), Role: role}, true
}

func (s apiSession) user() apiUser {
	if s.User != nil {
		return *s.User
	}
	return apiUser{ID: s.ID, Email: s.Email, Role: s.Role}
}

func (s apiSession) session(now time.Time) (*domain.Session, bool) {
	ident, ok := s.user().identity()
	if !ok {
		return nil, false
	}

	out := &domain.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		Identity:     ident,
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		out.ExpiresAt = now.Add(time.Duration(s.ExpiresIn) * time.Second).UTC()
	}
	return out, true
}
