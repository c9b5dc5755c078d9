package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/database"
)

const (
	healthy   = "healthy"
	unhealthy = "unhealthy"

	dbConnected     = "connected"
	dbNotConfigured = "not configured"
	dbError         = "error"

	configured    = "configured"
	notConfigured = "not configured"

	minSecretLength  = 32
	uriPreviewLength = 20
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status:    healthy,
		Timestamp: time.Now(),
		Database: api.HealthDatabase{
			Status:          dbNotConfigured,
			CollectionNames: []string{},
		},
		Environment: api.HealthEnvironment{
			Env:      app.config.Env,
			MongoUri: notConfigured,
			DbName:   app.store.Name(),
		},
		Version: version,
	}

	status := http.StatusOK

	if app.store.Configured() {
		resp.Environment.MongoUri = configured

		names, err := app.store.Collections(r.Context())
		if err != nil {
			app.contextGetLogger(r).Warn("health probe failed", "error", err)

			resp.Status = unhealthy
			resp.Database.Status = dbError
			resp.Database.Error = database.Diagnose(err)
			status = http.StatusInternalServerError
		} else {
			resp.Database.Status = dbConnected
			resp.Database.Collections = len(names)
			resp.Database.CollectionNames = nonNil(names)
		}
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetEnvCheck reports which settings are present, never their values. The
// only echoed value is a short prefix of the masked connection string.
func (app *Application) GetEnvCheck(w http.ResponseWriter, r *http.Request) {
	uri := app.config.Mongo.URI
	secret := app.config.JWT.Secret

	resp := api.EnvCheckResponse{
		Env: app.config.Env,
		MongoUri: api.MongoUriCheck{
			Present:           uri != "",
			Length:            len(uri),
			StartsWithMongodb: strings.HasPrefix(uri, "mongodb"),
		},
		DbName: app.store.Name(),
		JwtSecret: api.SecretCheck{
			Present: secret != "",
			Length:  len(secret),
		},
		Recommendations: []string{},
	}

	if uri != "" {
		preview := []rune(database.MaskURI(uri))
		if len(preview) > uriPreviewLength {
			preview = preview[:uriPreviewLength]
		}
		resp.MongoUri.Preview = string(preview) + "..."
	}

	switch {
	case uri == "":
		resp.Recommendations = append(resp.Recommendations, "Set MONGODB_URI to connect to MongoDB; sample data is served until then")
	case !resp.MongoUri.StartsWithMongodb:
		resp.Recommendations = append(resp.Recommendations, "MONGODB_URI should start with mongodb:// or mongodb+srv://")
	}

	switch {
	case secret == "":
		resp.Recommendations = append(resp.Recommendations, "Set JWT_SECRET to enable sign in")
	case len(secret) < minSecretLength:
		resp.Recommendations = append(resp.Recommendations, "JWT_SECRET should be at least 32 characters long")
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
