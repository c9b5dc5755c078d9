package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/domain"
)

func (app *Application) AdminDatabase(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "stats":
		app.databaseStats(w, r)
	case "indexes":
		app.createIndexes(w, r)
	default:
		app.badRequestResponse(w, r, errors.New("Invalid action"))
	}
}

func (app *Application) databaseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.catalog.CollectionStats(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			app.storeUnavailableResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DatabaseStatsResponse{
		Success: true,
		Stats:   toApiCollectionStats(stats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) createIndexes(w http.ResponseWriter, r *http.Request) {
	err := app.catalog.CreateIndexes(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			app.storeUnavailableResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActionResponse{
		Success: true,
		Message: "Indexes created successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
