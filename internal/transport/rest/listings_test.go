package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
	"github.com/heartmarshall/creatorhub-backend/internal/service/discovery"
)

func TestListingHandler_ListCreators_ParsesQuery(t *testing.T) {
	t.Parallel()

	var got discovery.ListInput
	svc := &mockDiscovery{
		ListCreatorsFunc: func(_ context.Context, in discovery.ListInput) (listing.Result[domain.Creator], error) {
			got = in
			return listing.Result[domain.Creator]{
				Items:       []domain.Creator{{ID: uuid.New(), Name: "Ada", CreatedAt: time.Now()}},
				CurrentPage: 1,
				TotalPages:  1,
				TotalCount:  1,
				PageSize:    9,
				Pages:       []int{1},
			}, nil
		},
	}
	h := NewListingHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/creators?search=go&experience_level=Expert&availability=all&category=ignored&page=abc", nil)
	rec := httptest.NewRecorder()
	h.ListCreators(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "go", got.Search)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, map[string]string{"experience_level": "Expert", "availability": "all"}, got.Filters)

	var resp pageResponse[creatorResponse]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.TotalCount)
	assert.False(t, resp.Empty)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Ada", resp.Items[0].Name)
	assert.NotNil(t, resp.Items[0].Skills)
	assert.Empty(t, resp.Items[0].Status)
}

func TestListingHandler_ListWorkflows_EmptyAndValidation(t *testing.T) {
	t.Parallel()

	svc := &mockDiscovery{
		ListWorkflowsFunc: func(_ context.Context, in discovery.ListInput) (listing.Result[domain.Workflow], error) {
			if err := in.Validate(); err != nil {
				return listing.Result[domain.Workflow]{}, err
			}
			return listing.Result[domain.Workflow]{CurrentPage: 1, TotalPages: 1, PageSize: 9}, nil
		},
	}
	h := NewListingHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.ListWorkflows(rec, httptest.NewRequest(http.MethodGet, "/api/workflows?category=Finance", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"page":1,"total_pages":1,"total_count":0,"page_size":9,"pages":[],"empty":true}`, rec.Body.String())

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	rec = httptest.NewRecorder()
	h.ListWorkflows(rec, httptest.NewRequest(http.MethodGet, "/api/workflows?search="+string(long), nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "search", resp.Fields[0].Field)
}

func TestListingHandler_GetCreator(t *testing.T) {
	t.Parallel()

	known := uuid.New()
	svc := &mockDiscovery{
		GetCreatorFunc: func(_ context.Context, id uuid.UUID) (discovery.CreatorDetail, error) {
			if id != known {
				return discovery.CreatorDetail{}, domain.ErrNotFound
			}
			export := `{"nodes":[]}`
			return discovery.CreatorDetail{
				Creator:   domain.Creator{ID: known, Name: "Ada"},
				Workflows: []domain.Workflow{{ID: uuid.New(), ProfileID: known, Title: "Sync", JSONN8N: &export}},
			}, nil
		},
	}
	h := NewListingHandler(svc, discardLogger())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"found", known.String(), http.StatusOK},
		{"unknown", uuid.NewString(), http.StatusNotFound},
		{"malformed", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/creators/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.GetCreator(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"title":"Sync"`)
				assert.NotContains(t, rec.Body.String(), "json_n8n")
			}
		})
	}
}

func TestListingHandler_Home(t *testing.T) {
	t.Parallel()

	svc := &mockDiscovery{
		featured:          []domain.Creator{{ID: uuid.New(), Name: "Ada"}},
		featuredWorkflows: []domain.Workflow{{ID: uuid.New(), Title: "Sync", Author: &domain.CreatorSummary{ID: uuid.New(), Name: "Ada"}}},
	}
	h := NewListingHandler(svc, discardLogger())

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Creators  []creatorResponse  `json:"creators"`
		Workflows []workflowResponse `json:"workflows"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Workflows, 1)
	require.NotNil(t, resp.Workflows[0].Author)
	assert.Equal(t, "Ada", resp.Workflows[0].Author.Name)
	assert.Len(t, resp.Creators, 1)
}
