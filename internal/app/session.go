package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movieflix/internal/auth"
	"github.com/metinatakli/movieflix/internal/catalog"
	"github.com/metinatakli/movieflix/internal/domain"
)

type contextKey string

const (
	ContextKeyIdentity = contextKey("identity")
)

func (c contextKey) String() string {
	return string(c)
}

func (app *Application) contextSetIdentity(r *http.Request, identity *domain.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
	return r.WithContext(ctx)
}

// contextGetIdentity returns the verified caller, or nil for an anonymous
// request.
func (app *Application) contextGetIdentity(r *http.Request) *domain.Identity {
	identity, _ := r.Context().Value(ContextKeyIdentity).(*domain.Identity)
	return identity
}

func (app *Application) mustGetIdentity(r *http.Request) *domain.Identity {
	identity := app.contextGetIdentity(r)
	if identity == nil {
		panic("missing identity from context")
	}

	return identity
}

func (app *Application) viewer(r *http.Request) catalog.Viewer {
	return catalog.ViewerOf(app.contextGetIdentity(r))
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With("requestId", middleware.GetReqID(r.Context()))

	if identity := app.contextGetIdentity(r); identity != nil {
		logger = logger.With("userId", identity.UserID)
	}

	return logger
}

// sessionToken reads the session token from the auth cookie, or from a
// bearer Authorization header when there is no cookie.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

func (app *Application) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(app.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   app.config.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *Application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.config.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
}
