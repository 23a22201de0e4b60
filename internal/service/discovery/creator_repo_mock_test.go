package discovery

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

var _ creatorRepo = &creatorRepoMock{}

type creatorRepoMock struct {
	ListApprovedFunc      func(ctx context.Context, limit int) ([]domain.Creator, error)
	GetApprovedByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.Creator, error)
	GetSummariesByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorSummary, error)

	calls struct {
		ListApproved []struct {
			Limit int
		}
		GetApprovedByID []struct {
			ID uuid.UUID
		}
		GetSummariesByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockListApproved      sync.RWMutex
	lockGetApprovedByID   sync.RWMutex
	lockGetSummariesByIDs sync.RWMutex
}

func (mock *creatorRepoMock) ListApproved(ctx context.Context, limit int) ([]domain.Creator, error) {
	if mock.ListApprovedFunc == nil {
		panic("creatorRepoMock.ListApprovedFunc: method is nil but creatorRepo.ListApproved was just called")
	}
	mock.lockListApproved.Lock()
	mock.calls.ListApproved = append(mock.calls.ListApproved, struct{ Limit int }{Limit: limit})
	mock.lockListApproved.Unlock()
	return mock.ListApprovedFunc(ctx, limit)
}

func (mock *creatorRepoMock) ListApprovedCalls() []struct{ Limit int } {
	mock.lockListApproved.RLock()
	defer mock.lockListApproved.RUnlock()
	return mock.calls.ListApproved
}

func (mock *creatorRepoMock) GetApprovedByID(ctx context.Context, id uuid.UUID) (domain.Creator, error) {
	if mock.GetApprovedByIDFunc == nil {
		panic("creatorRepoMock.GetApprovedByIDFunc: method is nil but creatorRepo.GetApprovedByID was just called")
	}
	mock.lockGetApprovedByID.Lock()
	mock.calls.GetApprovedByID = append(mock.calls.GetApprovedByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetApprovedByID.Unlock()
	return mock.GetApprovedByIDFunc(ctx, id)
}

func (mock *creatorRepoMock) GetApprovedByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetApprovedByID.RLock()
	defer mock.lockGetApprovedByID.RUnlock()
	return mock.calls.GetApprovedByID
}

func (mock *creatorRepoMock) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CreatorSummary, error) {
	if mock.GetSummariesByIDsFunc == nil {
		panic("creatorRepoMock.GetSummariesByIDsFunc: method is nil but creatorRepo.GetSummariesByIDs was just called")
	}
	mock.lockGetSummariesByIDs.Lock()
	mock.calls.GetSummariesByIDs = append(mock.calls.GetSummariesByIDs, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lockGetSummariesByIDs.Unlock()
	return mock.GetSummariesByIDsFunc(ctx, ids)
}

func (mock *creatorRepoMock) GetSummariesByIDsCalls() []struct{ IDs []uuid.UUID } {
	mock.lockGetSummariesByIDs.RLock()
	defer mock.lockGetSummariesByIDs.RUnlock()
	return mock.calls.GetSummariesByIDs
}
