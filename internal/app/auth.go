package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/domain"
)

func (app *Application) Signup(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SignupRequest

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

	user := domain.User{
		Name:  input.Name,
		Email: input.Email,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.catalog.CreateUser(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("signup attempt for existing email")
			app.conflictResponse(w, r, "A user with this email address already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	identity := domain.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}

	if !app.startSession(w, r, identity) {
		return
	}

	logger.Info("user signed up", "userId", user.ID)

	err = app.writeJSON(w, http.StatusCreated, api.AuthResponse{User: toApiUser(identity)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, ok := app.catalog.UserByEmail(r.Context(), input.Email)
	if !ok {
		logger.Warn("login attempt for non-existent user")
		app.invalidCredentialsResponse(w, r)
		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("login attempt with wrong password", "userId", user.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	identity := domain.Identity{UserID: user.ID, Name: user.Name, Email: user.Email}

	if !app.startSession(w, r, identity) {
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.AuthResponse{User: toApiUser(identity)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)

	resp := api.ActionResponse{
		Success: true,
		Message: "Logged out successfully",
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMe(w http.ResponseWriter, r *http.Request) {
	if sessionToken(r) == "" {
		app.errorResponse(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	identity := app.contextGetIdentity(r)
	if identity == nil {
		app.errorResponse(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	err := app.writeJSON(w, http.StatusOK, api.AuthResponse{User: toApiUser(*identity)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// startSession issues a session token for identity and sets it as a
// cookie. It writes the error response itself and reports whether the
// caller may continue.
func (app *Application) startSession(w http.ResponseWriter, r *http.Request, identity domain.Identity) bool {
	token, err := app.tokens.Issue(identity)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return false
	}

	app.setSessionCookie(w, token)

	return true
}
