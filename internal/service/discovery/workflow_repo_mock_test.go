package discovery

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

var _ workflowRepo = &workflowRepoMock{}

type workflowRepoMock struct {
	ListApprovedFunc  func(ctx context.Context, limit int) ([]domain.Workflow, error)
	ListByProfileFunc func(ctx context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error)

	calls struct {
		ListApproved []struct {
			Limit int
		}
		ListByProfile []struct {
			ProfileID    uuid.UUID
			ApprovedOnly bool
		}
	}
	lockListApproved  sync.RWMutex
	lockListByProfile sync.RWMutex
}

func (mock *workflowRepoMock) ListApproved(ctx context.Context, limit int) ([]domain.Workflow, error) {
	if mock.ListApprovedFunc == nil {
		panic("workflowRepoMock.ListApprovedFunc: method is nil but workflowRepo.ListApproved was just called")
	}
	mock.lockListApproved.Lock()
	mock.calls.ListApproved = append(mock.calls.ListApproved, struct{ Limit int }{Limit: limit})
	mock.lockListApproved.Unlock()
	return mock.ListApprovedFunc(ctx, limit)
}

func (mock *workflowRepoMock) ListApprovedCalls() []struct{ Limit int } {
	mock.lockListApproved.RLock()
	defer mock.lockListApproved.RUnlock()
	return mock.calls.ListApproved
}

func (mock *workflowRepoMock) ListByProfile(ctx context.Context, profileID uuid.UUID, approvedOnly bool) ([]domain.Workflow, error) {
	if mock.ListByProfileFunc == nil {
		panic("workflowRepoMock.ListByProfileFunc: method is nil but workflowRepo.ListByProfile was just called")
	}
	callInfo := struct {
		ProfileID    uuid.UUID
		ApprovedOnly bool
	}{ProfileID: profileID, ApprovedOnly: approvedOnly}
	mock.lockListByProfile.Lock()
	mock.calls.ListByProfile = append(mock.calls.ListByProfile, callInfo)
	mock.lockListByProfile.Unlock()
	return mock.ListByProfileFunc(ctx, profileID, approvedOnly)
}

func (mock *workflowRepoMock) ListByProfileCalls() []struct {
	ProfileID    uuid.UUID
	ApprovedOnly bool
} {
	mock.lockListByProfile.RLock()
	defer mock.lockListByProfile.RUnlock()
	return mock.calls.ListByProfile
}
