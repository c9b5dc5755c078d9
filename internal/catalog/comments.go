package catalog

import (
	"context"
	"fmt"

	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/metrics"
)

// CommentsByMovie returns a movie's comments, newest first. Anonymous
// viewers always get an empty list.
func (s *Service) CommentsByMovie(ctx context.Context, movieID string, viewer Viewer) []domain.Comment {
	if !viewer.Authenticated {
		return []domain.Comment{}
	}

	comments, _ := read(ctx, s, "comments_by_movie", func(src domain.CatalogSource, primary bool) ([]domain.Comment, error) {
		return src.CommentsByMovie(ctx, movieID)
	})

	return nonNil(comments)
}

// AddComment stores c with the current time as its date. When the store
// is unavailable or rejects the insert, the comment is kept in memory for
// the life of the process and still returned.
func (s *Service) AddComment(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.add_comment")
	defer span.End()

	c.ID = ""
	c.Date = s.now()

	if store, ok := s.store.Store(ctx); ok {
		stored := c

		err := store.InsertComment(ctx, &stored)
		if err == nil {
			if err := store.RecountComments(ctx, stored.MovieID); err != nil {
				s.logger.WarnContext(ctx, "failed to update comment count", "movieId", stored.MovieID, "error", err)
			}

			return &stored, nil
		}

		s.logger.WarnContext(ctx, "store insert failed, keeping comment in memory", "movieId", c.MovieID, "error", err)
		metrics.CatalogFallbacks.WithLabelValues("add_comment", metrics.ReasonError).Inc()
	} else {
		metrics.CatalogFallbacks.WithLabelValues("add_comment", metrics.ReasonUnavailable).Inc()
	}

	if err := s.fallback.InsertComment(ctx, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCommentWrite, err)
	}

	return &c, nil
}
