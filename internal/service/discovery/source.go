package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// approvedCreators is the creator Record Source: approved profiles,
// newest first.
func (s *Service) approvedCreators(ctx context.Context) ([]domain.Creator, error) {
	return fetchApproved(ctx, s, domain.ResourceCreators, func(ctx context.Context) ([]domain.Creator, error) {
		return s.creators.ListApproved(ctx, s.opts.FetchLimit)
	})
}

// approvedWorkflows is the workflow Record Source: approved workflows of
// approved creators, newest first, without authors.
func (s *Service) approvedWorkflows(ctx context.Context) ([]domain.Workflow, error) {
	return fetchApproved(ctx, s, domain.ResourceWorkflows, func(ctx context.Context) ([]domain.Workflow, error) {
		return s.workflows.ListApproved(ctx, s.opts.FetchLimit)
	})
}

// fetchApproved serves a snapshot from the cache, falling back to load.
// Concurrent misses for the same resource share one load. Cache failures
// are logged and never fail the request.
func fetchApproved[T any](ctx context.Context, s *Service, resource domain.ResourceType, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	found, err := s.cache.Load(ctx, resource, &cached)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "snapshot cache read failed",
			slog.String("resource", resource.String()),
			slog.String("error", err.Error()),
		)
	case found:
		return cached, nil
	}

	v, err, shared := s.group.Do(resource.String(), func() (any, error) {
		// The load outlives any single caller that joined it.
		loadCtx := context.WithoutCancel(ctx)

		recs, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if recs == nil {
			recs = []T{}
		}
		if err := s.cache.Store(loadCtx, resource, recs); err != nil {
			s.log.WarnContext(ctx, "snapshot cache write failed",
				slog.String("resource", resource.String()),
				slog.String("error", err.Error()),
			)
		}
		return recs, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch approved %s: %w", resource, err)
	}

	recs := v.([]T)
	s.log.DebugContext(ctx, "approved records loaded",
		slog.String("resource", resource.String()),
		slog.Int("count", len(recs)),
		slog.Bool("shared", shared),
	)
	return recs, nil
}

// Invalidate drops the cached snapshot for resource so the next listing
// reads the database.
func (s *Service) Invalidate(ctx context.Context, resource domain.ResourceType) error {
	s.group.Forget(resource.String())
	if err := s.cache.Invalidate(ctx, resource); err != nil {
		return fmt.Errorf("invalidate %s snapshot: %w", resource, err)
	}
	return nil
}
