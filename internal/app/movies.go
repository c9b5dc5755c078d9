package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movieflix/api"
)

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	var (
		params api.GetMoviesParams
		err    error
	)

	params.Limit, err = app.readInt(qs, "limit")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.Offset, err = app.readInt(qs, "offset")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	limit, offset := DefaultLimit, DefaultOffset
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	movies := app.catalog.ListMovies(r.Context(), limit, offset, app.viewer(r))

	resp := api.MovieListResponse{
		Movies: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	movie, ok := app.catalog.GetMovie(r.Context(), movieId, app.viewer(r))
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	err := app.writeJSON(w, http.StatusOK, toApiMovieWithWatchlist(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")

	movies := app.catalog.MoviesByGenre(r.Context(), genre, app.viewer(r))

	resp := api.MovieListResponse{
		Movies: toApiMovies(movies),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SearchMovies answers anonymous callers with an empty list rather than a
// 401, so the search page renders the same for everyone.
func (app *Application) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	resp := api.MovieListResponse{
		Movies: []api.MovieWithWatchlist{},
	}

	if query != "" {
		resp.Movies = toApiMovies(app.catalog.SearchMovies(r.Context(), query, app.viewer(r)))
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters := app.catalog.Theaters(r.Context())

	resp := api.TheaterListResponse{
		Theaters: toApiTheaters(theaters),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
