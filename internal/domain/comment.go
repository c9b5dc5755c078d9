package domain

import (
	"context"
	"time"
)

type Comment struct {
	ID      string
	Name    string
	Email   string
	MovieID string
	Text    string
	Date    time.Time
}

type CommentRepository interface {
	CommentsByMovie(ctx context.Context, movieID string) ([]Comment, error)
	// InsertComment stores c and sets its ID.
	InsertComment(ctx context.Context, c *Comment) error
}
