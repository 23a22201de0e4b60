package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

type mockCreators struct {
	items map[uuid.UUID]domain.Creator
}

func (m *mockCreators) SetStatus(_ context.Context, id uuid.UUID, status domain.ProfileStatus) (domain.Creator, error) {
	c, ok := m.items[id]
	if !ok {
		return domain.Creator{}, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	c.Status = status
	m.items[id] = c
	return c, nil
}

type mockWorkflows struct {
	items map[uuid.UUID]domain.Workflow
}

func (m *mockWorkflows) SetStatus(_ context.Context, id uuid.UUID, status domain.WorkflowStatus) (domain.Workflow, error) {
	w, ok := m.items[id]
	if !ok {
		return domain.Workflow{}, fmt.Errorf("workflow %s: %w", id, domain.ErrNotFound)
	}
	w.Status = status
	m.items[id] = w
	return w, nil
}

type mockAudit struct {
	records []domain.AuditRecord
	err     error
}

func (m *mockAudit) Log(_ context.Context, r domain.AuditRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, r)
	return nil
}

type mockTx struct{}

func (mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type mockInvalidator struct {
	resources []domain.ResourceType
	err       error
}

func (m *mockInvalidator) Invalidate(_ context.Context, r domain.ResourceType) error {
	m.resources = append(m.resources, r)
	return m.err
}

func TestSetCreatorStatus(t *testing.T) {
	t.Parallel()

	c := domain.Creator{ID: uuid.New(), UserID: uuid.New(), Status: domain.ProfileStatusPending}
	audit := &mockAudit{}
	listings := &mockInvalidator{err: errors.New("redis down")}
	svc := NewService(slog.Default(), &mockCreators{items: map[uuid.UUID]domain.Creator{c.ID: c}}, &mockWorkflows{}, audit, mockTx{}, listings)

	got, err := svc.SetCreatorStatus(context.Background(), c.ID, domain.ProfileStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileStatusApproved, got.Status)

	require.Len(t, audit.records, 1)
	assert.Equal(t, domain.AuditActionStatus, audit.records[0].Action)
	assert.Equal(t, c.UserID, audit.records[0].UserID)
	assert.Equal(t, []domain.ResourceType{domain.ResourceCreators}, listings.resources)
}

func TestSetCreatorStatus_Errors(t *testing.T) {
	t.Parallel()

	c := domain.Creator{ID: uuid.New()}

	tests := []struct {
		name    string
		id      uuid.UUID
		status  domain.ProfileStatus
		audit   error
		wantErr error
	}{
		{"unknown status", c.ID, domain.ProfileStatus("published"), nil, domain.ErrValidation},
		{"missing profile", uuid.New(), domain.ProfileStatusApproved, nil, domain.ErrNotFound},
		{"audit failure", c.ID, domain.ProfileStatusRejected, domain.ErrConflict, domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			listings := &mockInvalidator{}
			svc := NewService(slog.Default(),
				&mockCreators{items: map[uuid.UUID]domain.Creator{c.ID: c}},
				&mockWorkflows{}, &mockAudit{err: tt.audit}, mockTx{}, listings)

			_, err := svc.SetCreatorStatus(context.Background(), tt.id, tt.status)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, listings.resources)
		})
	}
}

func TestSetWorkflowStatus(t *testing.T) {
	t.Parallel()

	w := domain.Workflow{ID: uuid.New(), Status: domain.WorkflowStatusPending}
	audit := &mockAudit{}
	listings := &mockInvalidator{}
	svc := NewService(slog.Default(), &mockCreators{}, &mockWorkflows{items: map[uuid.UUID]domain.Workflow{w.ID: w}}, audit, mockTx{}, listings)

	got, err := svc.SetWorkflowStatus(context.Background(), w.ID, domain.WorkflowStatusApproved)
	require.NoError(t, err)
	assert.True(t, got.IsPublic())
	assert.Equal(t, []domain.ResourceType{domain.ResourceWorkflows}, listings.resources)
	require.Len(t, audit.records, 1)
	assert.Equal(t, domain.EntityTypeWorkflow, audit.records[0].EntityType)

	_, err = svc.SetWorkflowStatus(context.Background(), w.ID, domain.WorkflowStatus("live"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
