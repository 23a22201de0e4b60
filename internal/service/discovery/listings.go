package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
)

// HomeFeed is the landing page content.
type HomeFeed struct {
	Creators  []domain.Creator
	Workflows []domain.Workflow
}

// CreatorDetail is a public creator page.
type CreatorDetail struct {
	Creator   domain.Creator
	Workflows []domain.Workflow
}

// ListCreators renders one page of the creator directory.
func (s *Service) ListCreators(ctx context.Context, input ListInput) (listing.Result[domain.Creator], error) {
	if err := input.Validate(); err != nil {
		return listing.Result[domain.Creator]{}, err
	}

	recs, err := s.approvedCreators(ctx)
	if err != nil {
		return listing.Result[domain.Creator]{}, err
	}

	res := s.creatorEngine.Run(recs, input.query())

	s.log.DebugContext(ctx, "creators listed",
		slog.String("search", input.Search),
		slog.Int("page", res.CurrentPage),
		slog.Int("total", res.TotalCount),
	)
	return res, nil
}

// ListWorkflows renders one page of the workflow gallery with authors.
func (s *Service) ListWorkflows(ctx context.Context, input ListInput) (listing.Result[domain.Workflow], error) {
	if err := input.Validate(); err != nil {
		return listing.Result[domain.Workflow]{}, err
	}

	recs, err := s.approvedWorkflows(ctx)
	if err != nil {
		return listing.Result[domain.Workflow]{}, err
	}

	res := s.workflowEngine.Run(recs, input.query())
	if err := s.attachAuthors(ctx, res.Items); err != nil {
		return listing.Result[domain.Workflow]{}, err
	}

	s.log.DebugContext(ctx, "workflows listed",
		slog.String("search", input.Search),
		slog.Int("page", res.CurrentPage),
		slog.Int("total", res.TotalCount),
	)
	return res, nil
}

// FeaturedCreators returns the newest approved creators.
func (s *Service) FeaturedCreators(ctx context.Context) ([]domain.Creator, error) {
	recs, err := s.approvedCreators(ctx)
	if err != nil {
		return nil, err
	}
	return newest(s.creatorEngine, recs, s.opts.FeaturedCreators), nil
}

// FeaturedWorkflows returns the newest approved workflows with authors.
func (s *Service) FeaturedWorkflows(ctx context.Context) ([]domain.Workflow, error) {
	recs, err := s.approvedWorkflows(ctx)
	if err != nil {
		return nil, err
	}
	items := newest(s.workflowEngine, recs, s.opts.FeaturedWorkflows)
	if err := s.attachAuthors(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Home fetches the featured creators and workflows concurrently.
func (s *Service) Home(ctx context.Context) (HomeFeed, error) {
	var feed HomeFeed

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		creators, err := s.FeaturedCreators(gctx)
		if err != nil {
			return fmt.Errorf("featured creators: %w", err)
		}
		feed.Creators = creators
		return nil
	})
	g.Go(func() error {
		workflows, err := s.FeaturedWorkflows(gctx)
		if err != nil {
			return fmt.Errorf("featured workflows: %w", err)
		}
		feed.Workflows = workflows
		return nil
	})

	if err := g.Wait(); err != nil {
		return HomeFeed{}, err
	}
	return feed, nil
}

// GetCreator returns an approved creator and their approved workflows.
// Unknown and unapproved creators are ErrNotFound.
func (s *Service) GetCreator(ctx context.Context, id uuid.UUID) (CreatorDetail, error) {
	if id == uuid.Nil {
		return CreatorDetail{}, domain.NewValidationError("id", "required")
	}

	creator, err := s.creators.GetApprovedByID(ctx, id)
	if err != nil {
		return CreatorDetail{}, fmt.Errorf("get creator: %w", err)
	}

	workflows, err := s.workflows.ListByProfile(ctx, id, true)
	if err != nil {
		return CreatorDetail{}, fmt.Errorf("list creator workflows: %w", err)
	}

	workflows = listing.SortByRecency(s.workflowEngine.Descriptor(), workflows)
	author := creator.Summary()
	for i := range workflows {
		workflows[i].Author = &author
	}

	return CreatorDetail{Creator: creator, Workflows: workflows}, nil
}

// newest returns at most n records in listing order.
func newest[T any](e *listing.Engine[T], recs []T, n int) []T {
	visible := e.Visible(recs, listing.Query{})
	if n >= 0 && len(visible) > n {
		visible = visible[:n]
	}
	return visible
}
