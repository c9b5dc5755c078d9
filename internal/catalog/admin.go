package catalog

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

// CreateIndexes creates the store indexes. Per-collection failures are
// logged and do not stop the remaining collections.
func (s *Service) CreateIndexes(ctx context.Context) error {
	store, ok := s.store.Store(ctx)
	if !ok {
		s.logger.WarnContext(ctx, "store not available, skipping index creation")
		return domain.ErrStoreUnavailable
	}

	if err := store.CreateIndexes(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create some indexes", "error", err)
		return nil
	}

	s.logger.InfoContext(ctx, "created indexes")

	return nil
}

func (s *Service) CollectionStats(ctx context.Context) (map[string]domain.CollectionStats, error) {
	store, ok := s.store.Store(ctx)
	if !ok {
		return nil, domain.ErrStoreUnavailable
	}

	return store.CollectionStats(ctx), nil
}
