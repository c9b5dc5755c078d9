package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	TheatersFunc func(ctx context.Context) ([]domain.Theater, error)
}

func (m *MockTheaterRepo) Theaters(ctx context.Context) ([]domain.Theater, error) {
	return m.TheatersFunc(ctx)
}
