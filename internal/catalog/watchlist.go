package catalog

import (
	"context"
	"fmt"

	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// AddToWatchlist adds the movie to the user's watchlist, or refreshes the
// status and added date of an existing entry. Without a store the item is
// returned but not kept, and the watchlist reads back empty.
func (s *Service) AddToWatchlist(ctx context.Context, userID, movieID string, status domain.WatchlistStatus) (*domain.WatchlistItem, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.add_to_watchlist")
	defer span.End()

	if status == "" {
		status = domain.WantToWatch
	}

	src, _ := s.writeSource(ctx)

	item, err := src.UpsertWatchlistItem(ctx, userID, movieID, status, s.now())
	if err != nil {
		metrics.CatalogWriteFailures.WithLabelValues("add_to_watchlist").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrWatchlistWrite, err)
	}

	return item, nil
}

// RemoveFromWatchlist reports whether an entry was deleted.
func (s *Service) RemoveFromWatchlist(ctx context.Context, userID, movieID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.remove_from_watchlist")
	defer span.End()

	src, _ := s.writeSource(ctx)

	deleted, err := src.DeleteWatchlistItem(ctx, userID, movieID)
	if err != nil {
		metrics.CatalogWriteFailures.WithLabelValues("remove_from_watchlist").Inc()
		return false, fmt.Errorf("%w: %w", domain.ErrWatchlistWrite, err)
	}

	return deleted, nil
}

// UpdateWatchlistItem reports whether the entry was modified.
func (s *Service) UpdateWatchlistItem(ctx context.Context, userID, movieID string, u domain.WatchlistUpdate) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.update_watchlist_item")
	defer span.End()

	src, _ := s.writeSource(ctx)

	modified, err := src.UpdateWatchlistItem(ctx, userID, movieID, u)
	if err != nil {
		metrics.CatalogWriteFailures.WithLabelValues("update_watchlist_item").Inc()
		return false, fmt.Errorf("%w: %w", domain.ErrWatchlistWrite, err)
	}

	return modified, nil
}

// UserWatchlist returns the user's watchlist movies, most recently added
// first. Entries whose movie no longer resolves are dropped.
func (s *Service) UserWatchlist(ctx context.Context, userID string, status *domain.WatchlistStatus) []domain.MovieWithWatchlist {
	movies, _ := read(ctx, s, "user_watchlist", func(src domain.CatalogSource, primary bool) ([]domain.MovieWithWatchlist, error) {
		items, err := src.UserWatchlist(ctx, userID, status)
		if err != nil {
			return nil, err
		}

		return s.resolveWatchlist(ctx, src, items), nil
	})

	return nonNil(movies)
}

func (s *Service) resolveWatchlist(ctx context.Context, src domain.MovieRepository, items []domain.WatchlistItem) []domain.MovieWithWatchlist {
	resolved := make([]*domain.MovieWithWatchlist, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)

	for i, item := range items {
		g.Go(func() error {
			movie, err := src.GetMovie(gctx, item.MovieID)
			if err != nil {
				s.logger.DebugContext(ctx, "dropping unresolved watchlist entry", "movieId", item.MovieID, "error", err)
				return nil
			}

			itemStatus := item.Status
			resolved[i] = &domain.MovieWithWatchlist{
				Movie:           *movie,
				IsInWatchlist:   true,
				WatchlistStatus: &itemStatus,
				UserRating:      item.Rating,
			}

			return nil
		})
	}

	_ = g.Wait()

	out := make([]domain.MovieWithWatchlist, 0, len(items))
	for _, m := range resolved {
		if m != nil {
			out = append(out, *m)
		}
	}

	return out
}
