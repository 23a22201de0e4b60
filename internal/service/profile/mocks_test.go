package profile

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockProfileRepo struct {
	GetByUserIDFunc     func(ctx context.Context, userID uuid.UUID) (domain.Creator, error)
	CreateFunc          func(ctx context.Context, c domain.Creator) (domain.Creator, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (domain.Creator, error)
	SetProfileImageFunc func(ctx context.Context, id uuid.UUID, url string) (domain.Creator, error)

	mu      sync.Mutex
	creates int
	updates []domain.ProfileUpdate
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Creator, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *mockProfileRepo) Create(ctx context.Context, c domain.Creator) (domain.Creator, error) {
	m.mu.Lock()
	m.creates++
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *mockProfileRepo) Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (domain.Creator, error) {
	m.mu.Lock()
	m.updates = append(m.updates, u)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, u)
}

func (m *mockProfileRepo) SetProfileImage(ctx context.Context, id uuid.UUID, url string) (domain.Creator, error) {
	return m.SetProfileImageFunc(ctx, id, url)
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

type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
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

type mockAvatarStore struct {
	key         string
	contentType string
	body        string
	putErr      error
	baseURL     string
}

func (m *mockAvatarStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	m.key = key
	m.contentType = contentType
	b, _ := io.ReadAll(r)
	m.body = string(b)
	return m.putErr
}

func (m *mockAvatarStore) URL(_ context.Context, key string) (string, error) {
	return m.baseURL + "/" + key, nil
}
