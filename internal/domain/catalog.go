package domain

import "context"

// CatalogSource is everything the catalog needs from a backing store.
// The document store and the in-memory fallback both implement it.
type CatalogSource interface {
	MovieRepository
	CommentRepository
	TheaterRepository
	UserRepository
	WatchlistRepository
}

type IndexInfo struct {
	Name string
	Keys map[string]any
}

type CollectionStats struct {
	DocumentCount int64
	IndexCount    int
	Indexes       []IndexInfo
	Error         string
}

type AdminRepository interface {
	CreateIndexes(ctx context.Context) error
	CollectionStats(ctx context.Context) map[string]CollectionStats
	// RecountComments sets a movie's comment count from its stored comments.
	RecountComments(ctx context.Context, movieID string) error
}

// Store is a live primary store: a CatalogSource with administrative access.
type Store interface {
	CatalogSource
	AdminRepository
}
