package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
)

var defaultCORSOrigins = []string{"http://localhost:3000"}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	origins := app.config.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}

	r.Use(otelchi.Middleware("movieflix-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(app.authenticate)

	r.Get("/health", app.GetHealth)
	r.Get("/env-check", app.GetEnvCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}", app.GetMovie)
	r.Get("/movies/{movieId}/comments", app.GetMovieComments)
	r.Post("/movies/{movieId}/comments", app.CreateMovieComment)
	r.Get("/genres/{genre}/movies", app.GetMoviesByGenre)
	r.Get("/search", app.SearchMovies)
	r.Get("/theaters", app.GetTheaters)

	// form action; outcome is reported in the body
	r.Post("/comments", app.AddComment)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", app.Signup)
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.Get("/me", app.GetMe)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/watchlist", app.GetWatchlist)
		r.Post("/watchlist", app.AddToWatchlist)
		r.Delete("/watchlist", app.RemoveFromWatchlist)
		r.Patch("/watchlist/{movieId}", app.UpdateWatchlistItem)

		r.Get("/admin/database", app.AdminDatabase)
	})

	return r
}
