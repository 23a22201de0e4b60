package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}

// DisplayName derives a default profile name from the e-mail local part.
func (i Identity) DisplayName() string {
	local, _, _ := strings.Cut(i.Email, "@")
	if local == "" {
		return "Creator"
	}
	return local
}

// Session is a provider session returned after sign-in.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     Identity
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
