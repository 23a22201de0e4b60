// Package moderation changes the review status of creator profiles and
// workflows. It backs the operator CLI; there is no HTTP surface.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

type creatorRepo interface {
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) (domain.Creator, error)
}

type workflowRepo interface {
	SetStatus(ctx context.Context, id uuid.UUID, status domain.WorkflowStatus) (domain.Workflow, error)
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

// Service applies moderation decisions.
type Service struct {
	creators  creatorRepo
	workflows workflowRepo
	audit     auditLogger
	tx        txManager
	listings  snapshotInvalidator
	log       *slog.Logger
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	creators creatorRepo,
	workflows workflowRepo,
	audit auditLogger,
	tx txManager,
	listings snapshotInvalidator,
) *Service {
	return &Service{
		creators:  creators,
		workflows: workflows,
		audit:     audit,
		tx:        tx,
		listings:  listings,
		log:       log.With("service", "moderation"),
	}
}

// SetCreatorStatus moves a profile to status.
func (s *Service) SetCreatorStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus) (domain.Creator, error) {
	if !status.IsValid() {
		return domain.Creator{}, domain.NewValidationError("status", "unknown profile status")
	}

	var updated domain.Creator
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.creators.SetStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("set profile status: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     updated.UserID,
			EntityType: domain.EntityTypeProfile,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionStatus,
			Changes:    map[string]any{"status": map[string]any{"new": string(status)}},
		})
	})
	if err != nil {
		return domain.Creator{}, err
	}

	s.invalidate(ctx, domain.ResourceCreators)

	s.log.InfoContext(ctx, "profile status changed",
		slog.String("profile_id", id.String()),
		slog.String("status", string(status)),
	)
	return updated, nil
}

// SetWorkflowStatus moves a workflow to status.
func (s *Service) SetWorkflowStatus(ctx context.Context, id uuid.UUID, status domain.WorkflowStatus) (domain.Workflow, error) {
	if !status.IsValid() {
		return domain.Workflow{}, domain.NewValidationError("status", "unknown workflow status")
	}

	var updated domain.Workflow
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.workflows.SetStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("set workflow status: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			EntityType: domain.EntityTypeWorkflow,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionStatus,
			Changes:    map[string]any{"status": map[string]any{"new": string(status)}},
		})
	})
	if err != nil {
		return domain.Workflow{}, err
	}

	s.invalidate(ctx, domain.ResourceWorkflows)

	s.log.InfoContext(ctx, "workflow status changed",
		slog.String("workflow_id", id.String()),
		slog.String("status", string(status)),
	)
	return updated, nil
}

func (s *Service) invalidate(ctx context.Context, resources ...domain.ResourceType) {
	for _, r := range resources {
		if err := s.listings.Invalidate(ctx, r); err != nil {
			s.log.WarnContext(ctx, "invalidate snapshot failed",
				slog.String("resource", string(r)),
				slog.String("error", err.Error()),
			)
		}
	}
}
