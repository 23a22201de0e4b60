package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockProfileRepo struct {
	profiles map[uuid.UUID]domain.Creator
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (domain.Creator, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return domain.Creator{}, fmt.Errorf("profile of user %s: %w", userID, domain.ErrNotFound)
	}
	return p, nil
}

// memoryWorkflowRepo keeps workflows in a map and applies changes the way
// the postgres repo does.
type memoryWorkflowRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]domain.Workflow
	createErr error
	deleted   []uuid.UUID
	changes   []domain.WorkflowChanges
}

func newMemoryWorkflowRepo(items ...domain.Workflow) *memoryWorkflowRepo {
	m := &memoryWorkflowRepo{items: make(map[uuid.UUID]domain.Workflow)}
	for _, w := range items {
		m.items[w.ID] = w
	}
	return m
}

func (m *memoryWorkflowRepo) ListByProfile(_ context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Workflow
	for _, w := range m.items {
		if w.ProfileID != profileID {
			continue
		}
		if approvedOnly && !w.IsPublic() {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *memoryWorkflowRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.items[id]
	if !ok {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	return w, nil
}

func (m *memoryWorkflowRepo) Create(_ context.Context, w domain.Workflow) (domain.Workflow, error) {
	if m.createErr != nil {
		return domain.Workflow{}, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w.ID = uuid.New()
	m.items[w.ID] = w
	return w, nil
}

func (m *memoryWorkflowRepo) Update(_ context.Context, id uuid.UUID, ch domain.WorkflowChanges) (domain.Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.items[id]
	if !ok {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	m.changes = append(m.changes, ch)

	if ch.Title != nil {
		w.Title = *ch.Title
	}
	apply := func(dst **string, v *string) {
		if v == nil {
			return
		}
		*dst = domain.NilIfEmpty(*v)
	}
	apply(&w.Description, ch.Description)
	apply(&w.ScreenshotURL, ch.ScreenshotURL)
	apply(&w.VideoURL, ch.VideoURL)
	apply(&w.Complexity, ch.Complexity)
	apply(&w.JSONN8N, ch.JSONN8N)
	if ch.Tags != nil {
		w.Tags = ch.Tags
	}
	if ch.Category != nil {
		if *ch.Category == "" {
			w.Category = nil
		} else {
			c := *ch.Category
			w.Category = &c
		}
	}
	m.items[id] = w
	return w, nil
}

func (m *memoryWorkflowRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockAuditLogger struct {
	mu      sync.Mutex
	records []domain.AuditRecord
	err     error
}

func (m *mockAuditLogger) Log(_ context.Context, record domain.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return m.err
}

type mockTxManager struct{}

func (mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockInvalidator struct {
	mu       sync.Mutex
	resource []domain.ResourceType
	err      error
}

func (m *mockInvalidator) Invalidate(_ context.Context, resource domain.ResourceType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resource = append(m.resource, resource)
	return m.err
}
