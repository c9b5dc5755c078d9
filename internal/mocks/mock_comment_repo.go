package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockCommentRepo struct {
	domain.CommentRepository
	CommentsByMovieFunc func(ctx context.Context, movieID string) ([]domain.Comment, error)
	InsertCommentFunc   func(ctx context.Context, c *domain.Comment) error
}

func (m *MockCommentRepo) CommentsByMovie(ctx context.Context, movieID string) ([]domain.Comment, error) {
	return m.CommentsByMovieFunc(ctx, movieID)
}

func (m *MockCommentRepo) InsertComment(ctx context.Context, c *domain.Comment) error {
	return m.InsertCommentFunc(ctx, c)
}
