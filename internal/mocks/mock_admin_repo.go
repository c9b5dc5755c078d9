package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockAdminRepo struct {
	domain.AdminRepository
	CreateIndexesFunc   func(ctx context.Context) error
	CollectionStatsFunc func(ctx context.Context) map[string]domain.CollectionStats
	RecountCommentsFunc func(ctx context.Context, movieID string) error
}

func (m *MockAdminRepo) CreateIndexes(ctx context.Context) error {
	return m.CreateIndexesFunc(ctx)
}

func (m *MockAdminRepo) CollectionStats(ctx context.Context) map[string]domain.CollectionStats {
	return m.CollectionStatsFunc(ctx)
}

func (m *MockAdminRepo) RecountComments(ctx context.Context, movieID string) error {
	return m.RecountCommentsFunc(ctx, movieID)
}
