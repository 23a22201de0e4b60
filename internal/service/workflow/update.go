package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// Update edits one of the caller's workflows. The moderation status is
// kept as is.
func (s *Service) Update(ctx context.Context, input UpdateWorkflowInput) (domain.Workflow, error) {
	if err := input.Validate(); err != nil {
		return domain.Workflow{}, err
	}

	p, userID, ok, err := s.callerProfile(ctx)
	if err != nil {
		return domain.Workflow{}, err
	}
	if !ok {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", input.ID, domain.ErrNotFound)
	}

	current, err := s.owned(ctx, p.ID, input.ID)
	if err != nil {
		return domain.Workflow{}, err
	}
	if input.IsEmpty() {
		return current, nil
	}

	var updated domain.Workflow
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.workflows.Update(ctx, current.ID, input.toChanges())
		if err != nil {
			return fmt.Errorf("update workflow: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWorkflow,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    workflowChanges(current, updated),
		})
	})
	if err != nil {
		return domain.Workflow{}, err
	}

	s.invalidateWorkflows(ctx)

	s.log.InfoContext(ctx, "workflow updated",
		slog.String("user_id", userID.String()),
		slog.String("workflow_id", updated.ID.String()),
	)

	return updated, nil
}

func workflowChanges(old, cur domain.Workflow) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, a, b any, equal bool) {
		if !equal {
			changes[field] = map[string]any{"old": a, "new": b}
		}
	}

	diff("title", old.Title, cur.Title, old.Title == cur.Title)
	diff("description", deref(old.Description), deref(cur.Description), deref(old.Description) == deref(cur.Description))
	diff("tags", old.Tags, cur.Tags, slices.Equal(old.Tags, cur.Tags))
	diff("category", deref(old.Category), deref(cur.Category), deref(old.Category) == deref(cur.Category))
	diff("screenshot_url", deref(old.ScreenshotURL), deref(cur.ScreenshotURL), deref(old.ScreenshotURL) == deref(cur.ScreenshotURL))
	diff("video_url", deref(old.VideoURL), deref(cur.VideoURL), deref(old.VideoURL) == deref(cur.VideoURL))
	diff("complexity", deref(old.Complexity), deref(cur.Complexity), deref(old.Complexity) == deref(cur.Complexity))
	diff("json_n8n", deref(old.JSONN8N) != "", deref(cur.JSONN8N) != "", deref(old.JSONN8N) == deref(cur.JSONN8N))

	return changes
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
