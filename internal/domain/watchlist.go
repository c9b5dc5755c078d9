package domain

import (
	"context"
	"time"
)

type WatchlistStatus string

const (
	WantToWatch WatchlistStatus = "want_to_watch"
	Watching    WatchlistStatus = "watching"
	Watched     WatchlistStatus = "watched"
)

func (s WatchlistStatus) Valid() bool {
	switch s {
	case WantToWatch, Watching, Watched:
		return true
	}

	return false
}

type WatchlistItem struct {
	ID        string
	UserID    string
	MovieID   string
	AddedDate time.Time
	Status    WatchlistStatus
	Rating    *float64
	Notes     *string
}

// WatchlistUpdate is a partial update. Nil fields are left untouched.
type WatchlistUpdate struct {
	Status *WatchlistStatus
	Rating *float64
	Notes  *string
}

func (u WatchlistUpdate) Empty() bool {
	return u.Status == nil && u.Rating == nil && u.Notes == nil
}

type WatchlistRepository interface {
	WatchlistItem(ctx context.Context, userID, movieID string) (*WatchlistItem, error)
	// UpsertWatchlistItem inserts or refreshes the (user, movie) entry and
	// returns the stored item, carrying any rating and notes it already had.
	UpsertWatchlistItem(ctx context.Context, userID, movieID string, status WatchlistStatus, addedAt time.Time) (*WatchlistItem, error)
	DeleteWatchlistItem(ctx context.Context, userID, movieID string) (bool, error)
	UpdateWatchlistItem(ctx context.Context, userID, movieID string, u WatchlistUpdate) (bool, error)
	// UserWatchlist lists a user's entries, most recently added first.
	UserWatchlist(ctx context.Context, userID string, status *WatchlistStatus) ([]WatchlistItem, error)
}
