package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

// MockStore is a domain.Store assembled from the per-repository mocks.
type MockStore struct {
	*MockMovieRepo
	*MockCommentRepo
	*MockTheaterRepo
	*MockUserRepo
	*MockWatchlistRepo
	*MockAdminRepo
}

func NewMockStore() *MockStore {
	return &MockStore{
		MockMovieRepo:     &MockMovieRepo{},
		MockCommentRepo:   &MockCommentRepo{},
		MockTheaterRepo:   &MockTheaterRepo{},
		MockUserRepo:      &MockUserRepo{},
		MockWatchlistRepo: &MockWatchlistRepo{},
		MockAdminRepo:     &MockAdminRepo{},
	}
}

type MockStoreProvider struct {
	StoreFunc func(ctx context.Context) (domain.Store, bool)
}

func (m *MockStoreProvider) Store(ctx context.Context) (domain.Store, bool) {
	return m.StoreFunc(ctx)
}

// Available returns a provider that always hands out store.
func Available(store domain.Store) *MockStoreProvider {
	return &MockStoreProvider{
		StoreFunc: func(context.Context) (domain.Store, bool) { return store, true },
	}
}

// Unavailable returns a provider whose store is never reachable.
func Unavailable() *MockStoreProvider {
	return &MockStoreProvider{
		StoreFunc: func(context.Context) (domain.Store, bool) { return nil, false },
	}
}
