// Package workflow implements the creator's own workflow screens. Every
// operation is scoped to the caller's profile; workflows of other
// profiles are reported as not found.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/pkg/ctxutil"
)

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Creator, error)
}

type workflowRepo interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Workflow, error)
	Create(ctx context.Context, w domain.Workflow) (domain.Workflow, error)
	Update(ctx context.Context, id uuid.UUID, ch domain.WorkflowChanges) (domain.Workflow, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

// Service provides the caller's workflow operations.
type Service struct {
	profiles  profileRepo
	workflows workflowRepo
	audit     auditLogger
	tx        txManager
	listings  snapshotInvalidator
	log       *slog.Logger
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	workflows workflowRepo,
	audit auditLogger,
	tx txManager,
	listings snapshotInvalidator,
) *Service {
	return &Service{
		profiles:  profiles,
		workflows: workflows,
		audit:     audit,
		tx:        tx,
		listings:  listings,
		log:       log.With("service", "workflow"),
	}
}

// callerProfile resolves the caller's profile. ok is false when the
// caller has not created one yet.
func (s *Service) callerProfile(ctx context.Context) (p domain.Creator, userID uuid.UUID, ok bool, err error) {
	userID, authed := ctxutil.UserIDFromCtx(ctx)
	if !authed {
		return domain.Creator{}, uuid.Nil, false, domain.ErrUnauthorized
	}

	p, err = s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Creator{}, userID, false, nil
	}
	if err != nil {
		return domain.Creator{}, userID, false, fmt.Errorf("get profile: %w", err)
	}
	return p, userID, true, nil
}

// owned loads a workflow and checks it belongs to profileID.
func (s *Service) owned(ctx context.Context, profileID, workflowID uuid.UUID) (domain.Workflow, error) {
	w, err := s.workflows.GetByID(ctx, workflowID)
	if err != nil {
		return domain.Workflow{}, fmt.Errorf("get workflow: %w", err)
	}
	if w.ProfileID != profileID {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", workflowID, domain.ErrNotFound)
	}
	return w, nil
}

func (s *Service) invalidateWorkflows(ctx context.Context) {
	if err := s.listings.Invalidate(ctx, domain.ResourceWorkflows); err != nil {
		s.log.WarnContext(ctx, "invalidate workflows snapshot failed", slog.String("error", err.Error()))
	}
}
