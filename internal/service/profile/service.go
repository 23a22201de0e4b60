// Package profile implements the creator's own profile screens: view,
// edit (which publishes the profile) and avatar upload.
package profile

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Creator, error)
	Create(ctx context.Context, c domain.Creator) (domain.Creator, error)
	Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (domain.Creator, error)
	SetProfileImage(ctx context.Context, id uuid.UUID, url string) (domain.Creator, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type snapshotInvalidator interface {
	Invalidate(ctx context.Context, resource domain.ResourceType) error
}

type avatarStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
}

// Options configures avatar handling.
type Options struct {
	AvatarPrefix   string
	MaxAvatarBytes int64
}

// Service provides the caller's profile operations.
type Service struct {
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	listings snapshotInvalidator
	avatars  avatarStore
	opts     Options
	log      *slog.Logger
}

// NewService creates a new profile service. avatars may be nil when
// object storage is not configured; uploads are then rejected.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
	listings snapshotInvalidator,
	avatars avatarStore,
	opts Options,
) *Service {
	return &Service{
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		listings: listings,
		avatars:  avatars,
		opts:     opts,
		log:      log.With("service", "profile"),
	}
}

// invalidateCreators drops the cached directory. Failures only delay
// visibility until the snapshot TTL, so they are logged.
func (s *Service) invalidateCreators(ctx context.Context) {
	if err := s.listings.Invalidate(ctx, domain.ResourceCreators); err != nil {
		s.log.WarnContext(ctx, "invalidate creators snapshot failed", slog.String("error", err.Error()))
	}
}
