package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/fallback"
)

// MemoryCatalog serves the fallback dataset. Comment and user inserts are
// kept for the life of the process. Watchlist writes are accepted but not
// tracked, so watchlist reads are always empty.
type MemoryCatalog struct {
	mu       sync.RWMutex
	movies   []domain.Movie
	comments []domain.Comment
	theaters []domain.Theater
	users    []domain.User
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		movies:   fallback.Movies(),
		comments: fallback.Comments(),
		theaters: fallback.Theaters(),
		users:    fallback.Users(),
	}
}

func (m *MemoryCatalog) ListMovies(ctx context.Context, limit, offset int) ([]domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := min(max(offset, 0), len(m.movies))
	end := min(start+max(limit, 0), len(m.movies))

	return slices.Clone(m.movies[start:end]), nil
}

func (m *MemoryCatalog) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, movie := range m.movies {
		if movie.ID == id {
			return &movie, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (m *MemoryCatalog) MoviesByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movies := []domain.Movie{}
	for _, movie := range m.movies {
		if len(movies) == limit {
			break
		}
		if slices.Contains(movie.Genres, genre) {
			movies = append(movies, movie)
		}
	}

	return movies, nil
}

// SearchMovies matches query against the title and plot only.
func (m *MemoryCatalog) SearchMovies(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)

	movies := []domain.Movie{}
	for _, movie := range m.movies {
		if len(movies) == limit {
			break
		}
		if strings.Contains(strings.ToLower(movie.Title), q) || strings.Contains(strings.ToLower(movie.Plot), q) {
			movies = append(movies, movie)
		}
	}

	return movies, nil
}

func (m *MemoryCatalog) CommentsByMovie(ctx context.Context, movieID string) ([]domain.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comments := []domain.Comment{}
	for _, c := range m.comments {
		if c.MovieID == movieID {
			comments = append(comments, c)
		}
	}

	slices.SortStableFunc(comments, func(a, b domain.Comment) int {
		return b.Date.Compare(a.Date)
	})

	return comments, nil
}

func (m *MemoryCatalog) InsertComment(ctx context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = uuid.NewString()
	m.comments = append(m.comments, *c)

	return nil
}

func (m *MemoryCatalog) Theaters(ctx context.Context) ([]domain.Theater, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.theaters), nil
}

func (m *MemoryCatalog) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (m *MemoryCatalog) InsertUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrUserAlreadyExists
		}
	}

	u.ID = uuid.NewString()
	m.users = append(m.users, *u)

	return nil
}

func (m *MemoryCatalog) WatchlistItem(ctx context.Context, userID, movieID string) (*domain.WatchlistItem, error) {
	return nil, domain.ErrRecordNotFound
}

// UpsertWatchlistItem returns a synthetic item that is not stored.
func (m *MemoryCatalog) UpsertWatchlistItem(
	ctx context.Context,
	userID, movieID string,
	status domain.WatchlistStatus,
	addedAt time.Time,
) (*domain.WatchlistItem, error) {
	return &domain.WatchlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		MovieID:   movieID,
		AddedDate: addedAt,
		Status:    status,
	}, nil
}

func (m *MemoryCatalog) DeleteWatchlistItem(ctx context.Context, userID, movieID string) (bool, error) {
	return true, nil
}

func (m *MemoryCatalog) UpdateWatchlistItem(ctx context.Context, userID, movieID string, u domain.WatchlistUpdate) (bool, error) {
	return true, nil
}

func (m *MemoryCatalog) UserWatchlist(ctx context.Context, userID string, status *domain.WatchlistStatus) ([]domain.WatchlistItem, error) {
	return []domain.WatchlistItem{}, nil
}
