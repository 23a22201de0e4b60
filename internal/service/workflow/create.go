package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// Create submits a new workflow for moderation.
func (s *Service) Create(ctx context.Context, input CreateWorkflowInput) (domain.Workflow, error) {
	if err := input.Validate(); err != nil {
		return domain.Workflow{}, err
	}

	p, userID, ok, err := s.callerProfile(ctx)
	if err != nil {
		return domain.Workflow{}, err
	}
	if !ok {
		return domain.Workflow{}, domain.NewValidationError("profile", "create your profile before submitting workflows")
	}

	var created domain.Workflow
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.workflows.Create(ctx, input.toWorkflow(p.ID))
		if err != nil {
			return fmt.Errorf("create workflow: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWorkflow,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":  map[string]any{"new": created.Title},
				"status": map[string]any{"new": created.Status},
			},
		})
	})
	if err != nil {
		return domain.Workflow{}, err
	}

	s.invalidateWorkflows(ctx)

	s.log.InfoContext(ctx, "workflow submitted",
		slog.String("user_id", userID.String()),
		slog.String("workflow_id", created.ID.String()),
	)

	return created, nil
}
