// Package api holds the JSON request and response shapes of the HTTP API.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type WatchlistStatus string

const (
	WANTTOWATCH WatchlistStatus = "want_to_watch"
	WATCHING    WatchlistStatus = "watching"
	WATCHED     WatchlistStatus = "watched"
)

type IMDb struct {
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
	Id     int     `json:"id"`
}

type Awards struct {
	Wins        int    `json:"wins"`
	Nominations int    `json:"nominations"`
	Text        string `json:"text"`
}

type TomatoesScore struct {
	Rating     float64 `json:"rating"`
	NumReviews int     `json:"numReviews"`
	Meter      int     `json:"meter"`
}

type Tomatoes struct {
	Viewer      *TomatoesScore `json:"viewer,omitempty"`
	Critic      *TomatoesScore `json:"critic,omitempty"`
	Fresh       int            `json:"fresh,omitempty"`
	Rotten      int            `json:"rotten,omitempty"`
	LastUpdated *time.Time     `json:"lastUpdated,omitempty"`
}

type Movie struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Plot        string     `json:"plot"`
	FullPlot    string     `json:"fullPlot,omitempty"`
	Genres      []string   `json:"genres"`
	Runtime     int        `json:"runtime"`
	Cast        []string   `json:"cast"`
	Poster      string     `json:"poster,omitempty"`
	Year        int        `json:"year"`
	Rated       string     `json:"rated,omitempty"`
	IMDb        IMDb       `json:"imdb"`
	Countries   []string   `json:"countries"`
	Languages   []string   `json:"languages"`
	Directors   []string   `json:"directors"`
	NumComments int        `json:"numComments"`
	Released    *time.Time `json:"released,omitempty"`
	Awards      *Awards    `json:"awards,omitempty"`
	Tomatoes    *Tomatoes  `json:"tomatoes,omitempty"`
}

type MovieWithWatchlist struct {
	Movie
	IsInWatchlist   bool             `json:"isInWatchlist"`
	WatchlistStatus *WatchlistStatus `json:"watchlistStatus,omitempty"`
	UserRating      *float64         `json:"userRating,omitempty"`
}

type MovieListResponse struct {
	Movies []MovieWithWatchlist `json:"movies"`
}

type GetMoviesParams struct {
	Limit  *int `validate:"omitempty,min=1,max=100"`
	Offset *int `validate:"omitempty,min=0"`
}

type Comment struct {
	Id      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	MovieId string    `json:"movieId"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}

type AddCommentRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	MovieId string `json:"movieId" validate:"required"`
	Text    string `json:"text" validate:"required,max=2000"`
}

// CommentActionResult is the outcome of the comment form action. Failures
// are reported in the body, not through the status code.
type CommentActionResult struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Comment *Comment `json:"comment,omitempty"`
}

type Address struct {
	Street1 string `json:"street1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Location struct {
	Address Address  `json:"address"`
	Geo     GeoPoint `json:"geo"`
}

type Theater struct {
	Id        string   `json:"id"`
	TheaterId int      `json:"theaterId"`
	Location  Location `json:"location"`
}

type TheaterListResponse struct {
	Theaters []Theater `json:"theaters"`
}

type WatchlistItem struct {
	Id        string          `json:"id"`
	UserId    string          `json:"userId"`
	MovieId   string          `json:"movieId"`
	AddedDate time.Time       `json:"addedDate"`
	Status    WatchlistStatus `json:"status"`
	Rating    *float64        `json:"rating,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

type WatchlistResponse struct {
	Watchlist []MovieWithWatchlist `json:"watchlist"`
}

type AddToWatchlistRequest struct {
	MovieId string           `json:"movieId"`
	Status  *WatchlistStatus `json:"status" validate:"omitempty,watchlist_status"`
}

type AddToWatchlistResponse struct {
	Success       bool          `json:"success"`
	WatchlistItem WatchlistItem `json:"watchlistItem"`
	Message       string        `json:"message"`
}

type UpdateWatchlistRequest struct {
	Status *WatchlistStatus `json:"status" validate:"omitempty,watchlist_status"`
	Rating *float64         `json:"rating" validate:"omitempty,min=0,max=10"`
	Notes  *string          `json:"notes" validate:"omitempty,max=1000"`
}

type IndexInfo struct {
	Name string         `json:"name"`
	Keys map[string]any `json:"keys"`
}

type CollectionStats struct {
	DocumentCount int64       `json:"documentCount"`
	IndexCount    int         `json:"indexCount"`
	Indexes       []IndexInfo `json:"indexes"`
	Error         string      `json:"error,omitempty"`
}

type DatabaseStatsResponse struct {
	Success bool                       `json:"success"`
	Stats   map[string]CollectionStats `json:"stats"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User UserResponse `json:"user"`
}

type HealthDatabase struct {
	Status          string   `json:"status"`
	Collections     int      `json:"collections"`
	CollectionNames []string `json:"collectionNames"`
	Error           string   `json:"error,omitempty"`
}

type HealthEnvironment struct {
	Env      string `json:"env"`
	MongoUri string `json:"mongoUri"`
	DbName   string `json:"dbName"`
}

type HealthcheckResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Database    HealthDatabase    `json:"database"`
	Environment HealthEnvironment `json:"environment"`
	Version     string            `json:"version"`
}

type MongoUriCheck struct {
	Present           bool   `json:"present"`
	Length            int    `json:"length"`
	StartsWithMongodb bool   `json:"startsWithMongodb"`
	Preview           string `json:"preview,omitempty"`
}

type SecretCheck struct {
	Present bool `json:"present"`
	Length  int  `json:"length"`
}

type EnvCheckResponse struct {
	Env             string        `json:"env"`
	MongoUri        MongoUriCheck `json:"mongoUri"`
	DbName          string        `json:"dbName"`
	JwtSecret       SecretCheck   `json:"jwtSecret"`
	Recommendations []string      `json:"recommendations"`
}
