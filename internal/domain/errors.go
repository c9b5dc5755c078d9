package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidID         = errors.New("invalid identifier")
	ErrStoreUnavailable  = errors.New("store not available")
	ErrWatchlistWrite    = errors.New("failed to write watchlist")
	ErrCommentWrite      = errors.New("failed to add comment")
	ErrUserWrite         = errors.New("failed to create user")
)
