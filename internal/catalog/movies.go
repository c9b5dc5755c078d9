package catalog

import (
	"context"
	"errors"

	"github.com/metinatakli/movieflix/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ListMovies returns a page of the catalog. A non-positive limit means
// DefaultListLimit and a negative offset means the first page.
func (s *Service) ListMovies(ctx context.Context, limit, offset int, viewer Viewer) []domain.MovieWithWatchlist {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset = max(offset, 0)

	movies, _ := read(ctx, s, "list_movies", func(src domain.CatalogSource, primary bool) ([]domain.MovieWithWatchlist, error) {
		n := limit
		if primary && !viewer.Authenticated {
			n = min(limit, AnonymousListLimit)
		}

		movies, err := src.ListMovies(ctx, n, offset)
		if err != nil {
			return nil, err
		}

		return s.withWatchlist(ctx, src, movies, viewer), nil
	})

	return nonNil(movies)
}

func (s *Service) GetMovie(ctx context.Context, id string, viewer Viewer) (*domain.MovieWithWatchlist, bool) {
	movie, err := read(ctx, s, "get_movie", func(src domain.CatalogSource, primary bool) (*domain.MovieWithWatchlist, error) {
		movie, err := src.GetMovie(ctx, id)
		if err != nil {
			return nil, err
		}

		joined := s.withWatchlist(ctx, src, []domain.Movie{*movie}, viewer)

		return &joined[0], nil
	})
	if err != nil {
		return nil, false
	}

	return movie, true
}

func (s *Service) MoviesByGenre(ctx context.Context, genre string, viewer Viewer) []domain.MovieWithWatchlist {
	limit := AnonymousGenreLimit
	if viewer.Authenticated {
		limit = AuthenticatedGenreLimit
	}

	movies, _ := read(ctx, s, "movies_by_genre", func(src domain.CatalogSource, primary bool) ([]domain.MovieWithWatchlist, error) {
		movies, err := src.MoviesByGenre(ctx, genre, limit)
		if err != nil {
			return nil, err
		}

		return s.withWatchlist(ctx, src, movies, viewer), nil
	})

	return nonNil(movies)
}

// SearchMovies is only available to authenticated viewers; anonymous
// viewers always get an empty result.
func (s *Service) SearchMovies(ctx context.Context, query string, viewer Viewer) []domain.MovieWithWatchlist {
	if !viewer.Authenticated {
		return []domain.MovieWithWatchlist{}
	}

	movies, _ := read(ctx, s, "search_movies", func(src domain.CatalogSource, primary bool) ([]domain.MovieWithWatchlist, error) {
		movies, err := src.SearchMovies(ctx, query, SearchLimit)
		if err != nil {
			return nil, err
		}

		return s.withWatchlist(ctx, src, movies, viewer), nil
	})

	return nonNil(movies)
}

// withWatchlist shapes movies for the viewer and, for an authenticated
// viewer with a user id, attaches their watchlist entry to each one. The
// lookups run concurrently; the result keeps the order of movies.
func (s *Service) withWatchlist(
	ctx context.Context,
	src domain.WatchlistRepository,
	movies []domain.Movie,
	viewer Viewer,
) []domain.MovieWithWatchlist {
	out := make([]domain.MovieWithWatchlist, len(movies))
	for i, m := range movies {
		out[i] = domain.MovieWithWatchlist{Movie: domain.ShapeMovie(m, viewer.Authenticated)}
	}

	if !viewer.Authenticated || viewer.UserID == "" {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)

	for i := range out {
		g.Go(func() error {
			item, err := src.WatchlistItem(gctx, viewer.UserID, out[i].ID)
			if err != nil {
				if !errors.Is(err, domain.ErrRecordNotFound) {
					s.logger.DebugContext(ctx, "watchlist lookup failed", "movieId", out[i].ID, "error", err)
				}
				return nil
			}

			status := item.Status
			out[i].IsInWatchlist = true
			out[i].WatchlistStatus = &status
			out[i].UserRating = item.Rating

			return nil
		})
	}

	_ = g.Wait()

	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
