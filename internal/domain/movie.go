package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          string
	Title       string
	Plot        string
	FullPlot    string
	Genres      []string
	Runtime     int
	Cast        []string
	Poster      string
	Year        int
	Rated       string
	IMDb        IMDb
	Countries   []string
	Languages   []string
	Directors   []string
	NumComments int
	Released    *time.Time
	Awards      *Awards
	Tomatoes    *Tomatoes
}

type IMDb struct {
	Rating float64
	Votes  int
	ID     int
}

type Awards struct {
	Wins        int
	Nominations int
	Text        string
}

type Tomatoes struct {
	Viewer      *TomatoesScore
	Critic      *TomatoesScore
	Fresh       int
	Rotten      int
	LastUpdated *time.Time
}

type TomatoesScore struct {
	Rating     float64
	NumReviews int
	Meter      int
}

// MovieWithWatchlist is a Movie joined at read time with the caller's
// watchlist entry for it. The watchlist fields are never stored.
type MovieWithWatchlist struct {
	Movie
	IsInWatchlist   bool
	WatchlistStatus *WatchlistStatus
	UserRating      *float64
}

type MovieRepository interface {
	ListMovies(ctx context.Context, limit, offset int) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (*Movie, error)
	MoviesByGenre(ctx context.Context, genre string, limit int) ([]Movie, error)
	SearchMovies(ctx context.Context, query string, limit int) ([]Movie, error)
}
