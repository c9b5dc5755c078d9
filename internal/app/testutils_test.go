package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/auth"
	"github.com/metinatakli/movieflix/internal/catalog"
	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/mocks"
	"github.com/metinatakli/movieflix/internal/repository"
	"github.com/metinatakli/movieflix/internal/validator"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

var testIdentity = domain.Identity{
	UserID: "59b99db6cfa9a34dcd7885bb",
	Name:   "Daenerys Targaryen",
	Email:  "emilia_clarke@gameofthron.es",
}

type fakeStoreStatus struct {
	configured bool
	name       string
	names      []string
	err        error
}

func (f *fakeStoreStatus) Configured() bool {
	return f.configured
}

func (f *fakeStoreStatus) Name() string {
	return f.name
}

func (f *fakeStoreStatus) Collections(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func newTestApplication(opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config: Config{
			Env: "test",
			JWT: JWTConfig{Secret: testSecret, SessionTTL: time.Hour},
		},
		logger:     logger,
		validator:  validator.NewValidator(),
		tokens:     auth.NewTokenManager(testSecret, time.Hour),
		store:      &fakeStoreStatus{name: "movieflix"},
		catalog:    catalog.NewService(mocks.Unavailable(), repository.NewMemoryCatalog(), logger),
		closeStore: func(context.Context) error { return nil },
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// withStore makes store the reachable primary store of the application.
func withStore(store domain.Store) func(*Application) {
	return func(app *Application) {
		app.catalog = catalog.NewService(mocks.Available(store), repository.NewMemoryCatalog(), app.logger)
	}
}

func withSession(t *testing.T, app *Application, r *http.Request, identity domain.Identity) *http.Request {
	token, err := app.tokens.Issue(identity)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	return r
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
