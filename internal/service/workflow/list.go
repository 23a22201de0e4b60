package workflow

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// ListMine returns the caller's workflows in every status, newest first.
// A caller without a profile has no workflows.
func (s *Service) ListMine(ctx context.Context) ([]domain.Workflow, error) {
	p, _, ok, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Workflow{}, nil
	}

	items, err := s.workflows.ListByProfile(ctx, p.ID, false)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	slices.SortStableFunc(items, func(a, b domain.Workflow) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items, nil
}

// GetMine returns one of the caller's workflows.
func (s *Service) GetMine(ctx context.Context, id uuid.UUID) (domain.Workflow, error) {
	if id == uuid.Nil {
		return domain.Workflow{}, domain.NewValidationError("id", "required")
	}

	p, _, ok, err := s.callerProfile(ctx)
	if err != nil {
		return domain.Workflow{}, err
	}
	if !ok {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	return s.owned(ctx, p.ID, id)
}
