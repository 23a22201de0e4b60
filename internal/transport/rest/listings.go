package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
	"github.com/heartmarshall/creatorhub-backend/internal/service/discovery"
)

// discoveryService defines the public read side used by ListingHandler.
type discoveryService interface {
	ListCreators(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Creator], error)
	ListWorkflows(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Workflow], error)
	FeaturedCreators(ctx context.Context) ([]domain.Creator, error)
	FeaturedWorkflows(ctx context.Context) ([]domain.Workflow, error)
	Home(ctx context.Context) (discovery.HomeFeed, error)
	GetCreator(ctx context.Context, id uuid.UUID) (discovery.CreatorDetail, error)
}

var (
	creatorFilters  = []string{domain.FilterExperienceLevel, domain.FilterAvailability, domain.FilterLocation}
	workflowFilters = []string{domain.FilterCategory, domain.FilterComplexity}
)

// ListingHandler serves the public directory, workflow gallery and home page.
type ListingHandler struct {
	svc discoveryService
	log *slog.Logger
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(svc discoveryService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{svc: svc, log: logger.With("handler", "listing")}
}

// ListCreators handles GET /api/creators.
func (h *ListingHandler) ListCreators(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListCreators(r.Context(), listInput(r, creatorFilters))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(res, toCreators))
}

// FeaturedCreators handles GET /api/creators/featured.
func (h *ListingHandler) FeaturedCreators(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FeaturedCreators(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": toCreators(items)})
}

// GetCreator handles GET /api/creators/{id}.
func (h *ListingHandler) GetCreator(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.GetCreator(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"creator":   toCreator(detail.Creator, false),
		"workflows": toWorkflows(detail.Workflows, false),
	})
}

// ListWorkflows handles GET /api/workflows.
func (h *ListingHandler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListWorkflows(r.Context(), listInput(r, workflowFilters))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(res, publicWorkflows))
}

// FeaturedWorkflows handles GET /api/workflows/featured.
func (h *ListingHandler) FeaturedWorkflows(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.FeaturedWorkflows(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": publicWorkflows(items)})
}

// Home handles GET /api/home.
func (h *ListingHandler) Home(w http.ResponseWriter, r *http.Request) {
	feed, err := h.svc.Home(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"creators":  toCreators(feed.Creators),
		"workflows": publicWorkflows(feed.Workflows),
	})
}

// listInput reads search, page and the allowed filters. Unknown query
// parameters are ignored; absent filters mean "all".
func listInput(r *http.Request, filters []string) discovery.ListInput {
	q := r.URL.Query()
	in := discovery.ListInput{
		Search:  q.Get("search"),
		Filters: make(map[string]string, len(filters)),
		Page:    queryPage(r),
	}
	for _, name := range filters {
		if v := q.Get(name); v != "" {
			in.Filters[name] = v
		}
	}
	return in
}

func publicWorkflows(items []domain.Workflow) []workflowResponse {
	return toWorkflows(items, false)
}
