package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockWatchlistRepo struct {
	domain.WatchlistRepository
	WatchlistItemFunc       func(ctx context.Context, userID, movieID string) (*domain.WatchlistItem, error)
	UpsertWatchlistItemFunc func(ctx context.Context, userID, movieID string, status domain.WatchlistStatus, addedAt time.Time) (*domain.WatchlistItem, error)
	DeleteWatchlistItemFunc func(ctx context.Context, userID, movieID string) (bool, error)
	UpdateWatchlistItemFunc func(ctx context.Context, userID, movieID string, u domain.WatchlistUpdate) (bool, error)
	UserWatchlistFunc       func(ctx context.Context, userID string, status *domain.WatchlistStatus) ([]domain.WatchlistItem, error)
}

func (m *MockWatchlistRepo) WatchlistItem(ctx context.Context, userID, movieID string) (*domain.WatchlistItem, error) {
	return m.WatchlistItemFunc(ctx, userID, movieID)
}

func (m *MockWatchlistRepo) UpsertWatchlistItem(
	ctx context.Context,
	userID, movieID string,
	status domain.WatchlistStatus,
	addedAt time.Time,
) (*domain.WatchlistItem, error) {
	return m.UpsertWatchlistItemFunc(ctx, userID, movieID, status, addedAt)
}

func (m *MockWatchlistRepo) DeleteWatchlistItem(ctx context.Context, userID, movieID string) (bool, error) {
	return m.DeleteWatchlistItemFunc(ctx, userID, movieID)
}

func (m *MockWatchlistRepo) UpdateWatchlistItem(ctx context.Context, userID, movieID string, u domain.WatchlistUpdate) (bool, error) {
	return m.UpdateWatchlistItemFunc(ctx, userID, movieID, u)
}

func (m *MockWatchlistRepo) UserWatchlist(ctx context.Context, userID string, status *domain.WatchlistStatus) ([]domain.WatchlistItem, error) {
	return m.UserWatchlistFunc(ctx, userID, status)
}
