package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	ListMoviesFunc    func(ctx context.Context, limit, offset int) ([]domain.Movie, error)
	GetMovieFunc      func(ctx context.Context, id string) (*domain.Movie, error)
	MoviesByGenreFunc func(ctx context.Context, genre string, limit int) ([]domain.Movie, error)
	SearchMoviesFunc  func(ctx context.Context, query string, limit int) ([]domain.Movie, error)
}

func (m *MockMovieRepo) ListMovies(ctx context.Context, limit, offset int) ([]domain.Movie, error) {
	return m.ListMoviesFunc(ctx, limit, offset)
}

func (m *MockMovieRepo) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetMovieFunc(ctx, id)
}

func (m *MockMovieRepo) MoviesByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error) {
	return m.MoviesByGenreFunc(ctx, genre, limit)
}

func (m *MockMovieRepo) SearchMovies(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	return m.SearchMoviesFunc(ctx, query, limit)
}
