package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// Delete removes one of the caller's workflows.
func (s *Service) Delete(ctx context.Context, input DeleteWorkflowInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, userID, ok, err := s.callerProfile(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("workflow %s: %w", input.ID, domain.ErrNotFound)
	}

	current, err := s.owned(ctx, p.ID, input.ID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.workflows.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("delete workflow: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWorkflow,
			EntityID:   &current.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": current.Title},
			},
		})
	})
	if err != nil {
		return err
	}

	// Only approved workflows are in the public snapshot.
	if current.IsPublic() {
		s.invalidateWorkflows(ctx)
	}

	s.log.InfoContext(ctx, "workflow deleted",
		slog.String("user_id", userID.String()),
		slog.String("workflow_id", current.ID.String()),
	)

	return nil
}
