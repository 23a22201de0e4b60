// Package discovery serves the public creator directory and workflow
// gallery. Approved records are fetched whole and handed to the listing
// engine, which searches, filters, orders and pages them in memory.
package discovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
)

type creatorRepo interface {
	ListApproved(ctx context.Context, limit int) ([]domain.Creator, error)
	GetApprovedByID(ctx context.Context, id uuid.UUID) (domain.Creator, error)
	GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorSummary, error)
}

type workflowRepo interface {
	ListApproved(ctx context.Context, limit int) ([]domain.Workflow, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error)
}

type snapshotCache interface {
	Load(ctx context.Context, resource domain.ResourceType, dst any) (bool, error)
	Store(ctx context.Context, resource domain.ResourceType, v any) error
	Invalidate(ctx context.Context, resource domain.ResourceType) error
}

// Options sizes the public listings.
type Options struct {
	CreatorsPageSize  int
	WorkflowsPageSize int
	FeaturedCreators  int
	FeaturedWorkflows int
	// FetchLimit caps how many approved records are read per collection.
	FetchLimit int
}

// Service provides the public listing operations.
type Service struct {
	creators  creatorRepo
	workflows workflowRepo
	cache     snapshotCache
	log       *slog.Logger
	opts      Options

	creatorEngine  *listing.Engine[domain.Creator]
	workflowEngine *listing.Engine[domain.Workflow]

	group singleflight.Group
}

// NewService creates a new discovery service.
func NewService(
	log *slog.Logger,
	creators creatorRepo,
	workflows workflowRepo,
	cache snapshotCache,
	opts Options,
) *Service {
	return &Service{
		creators:       creators,
		workflows:      workflows,
		cache:          cache,
		log:            log.With("service", "discovery"),
		opts:           opts,
		creatorEngine:  listing.NewEngine(CreatorDescriptor(opts.CreatorsPageSize)),
		workflowEngine: listing.NewEngine(WorkflowDescriptor(opts.WorkflowsPageSize)),
	}
}

// CreatorEngine returns the engine used for the creator directory.
func (s *Service) CreatorEngine() *listing.Engine[domain.Creator] { return s.creatorEngine }

// WorkflowEngine returns the engine used for the workflow gallery.
func (s *Service) WorkflowEngine() *listing.Engine[domain.Workflow] { return s.workflowEngine }
