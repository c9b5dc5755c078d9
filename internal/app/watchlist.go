package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/domain"
)

var errMovieIDRequired = errors.New("Movie ID is required")

func (app *Application) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	identity := app.mustGetIdentity(r)

	var status *domain.WatchlistStatus
	if s := r.URL.Query().Get("status"); s != "" {
		ws := domain.WatchlistStatus(s)
		if !ws.Valid() {
			app.badRequestResponse(w, r, errors.New("Invalid status"))
			return
		}
		status = &ws
	}

	movies := app.catalog.UserWatchlist(r.Context(), identity.UserID, status)

	resp := api.WatchlistResponse{
		Watchlist: toApiMovies(movies),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	identity := app.mustGetIdentity(r)

	var input api.AddToWatchlistRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.MovieId == "" {
		app.badRequestResponse(w, r, errMovieIDRequired)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var status domain.WatchlistStatus
	if input.Status != nil {
		status = domain.WatchlistStatus(*input.Status)
	}

	item, err := app.catalog.AddToWatchlist(r.Context(), identity.UserID, input.MovieId, status)
	if err != nil {
		logger.Error("failed to add to watchlist", "movieId", input.MovieId, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Failed to add to watchlist")
		return
	}

	resp := api.AddToWatchlistResponse{
		Success:       true,
		WatchlistItem: toApiWatchlistItem(*item),
		Message:       "Added to watchlist successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	identity := app.mustGetIdentity(r)

	movieId := r.URL.Query().Get("movieId")
	if movieId == "" {
		app.badRequestResponse(w, r, errMovieIDRequired)
		return
	}

	removed, err := app.catalog.RemoveFromWatchlist(r.Context(), identity.UserID, movieId)
	if err != nil {
		logger.Error("failed to remove from watchlist", "movieId", movieId, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Failed to remove from watchlist")
		return
	}

	if !removed {
		app.errorResponse(w, r, http.StatusBadRequest, "Failed to remove from watchlist")
		return
	}

	resp := api.ActionResponse{
		Success: true,
		Message: "Removed from watchlist successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	identity := app.mustGetIdentity(r)

	movieId := chi.URLParam(r, "movieId")

	var input api.UpdateWatchlistRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	update := domain.WatchlistUpdate{
		Rating: input.Rating,
		Notes:  input.Notes,
	}
	if input.Status != nil {
		status := domain.WatchlistStatus(*input.Status)
		update.Status = &status
	}

	updated, err := app.catalog.UpdateWatchlistItem(r.Context(), identity.UserID, movieId, update)
	if err != nil {
		logger.Error("failed to update watchlist item", "movieId", movieId, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Failed to update watchlist item")
		return
	}

	if !updated {
		app.errorResponse(w, r, http.StatusBadRequest, "Failed to update watchlist item")
		return
	}

	resp := api.ActionResponse{
		Success: true,
		Message: "Watchlist item updated successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
