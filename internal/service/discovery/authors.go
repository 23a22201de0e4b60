package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

const (
	maxAuthorBatch = 100
	authorWait     = time.Millisecond
)

// newAuthorLoader batches author lookups for one listing page into a
// single query. Create one per call.
func newAuthorLoader(repo creatorRepo) *dataloader.Loader[uuid.UUID, *domain.CreatorSummary] {
	batchFn := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.CreatorSummary] {
		summaries, err := repo.GetSummariesByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.CreatorSummary], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.CreatorSummary]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.CreatorSummary, len(summaries))
		for i := range summaries {
			byID[summaries[i].ID] = &summaries[i]
		}

		results := make([]*dataloader.Result[*domain.CreatorSummary], len(keys))
		for i, key := range keys {
			// Missing authors stay nil.
			results[i] = &dataloader.Result[*domain.CreatorSummary]{Data: byID[key]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, *domain.CreatorSummary](authorWait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.CreatorSummary](maxAuthorBatch),
	)
}

// attachAuthors fills Author on every workflow of a page in place.
func (s *Service) attachAuthors(ctx context.Context, items []domain.Workflow) error {
	if len(items) == 0 {
		return nil
	}

	loader := newAuthorLoader(s.creators)
	thunks := make([]dataloader.Thunk[*domain.CreatorSummary], len(items))
	for i := range items {
		thunks[i] = loader.Load(ctx, items[i].ProfileID)
	}
	for i, thunk := range thunks {
		author, err := thunk()
		if err != nil {
			return fmt.Errorf("load author %s: %w", items[i].ProfileID, err)
		}
		items[i].Author = author
	}
	return nil
}
