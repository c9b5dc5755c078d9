package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movieflix/api"
	"github.com/metinatakli/movieflix/internal/domain"
)

const (
	msgCommentFieldsRequired = "All fields are required"
	msgCommentFailed         = "Failed to add comment. Please try again."
)

func (app *Application) GetMovieComments(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	comments := app.catalog.CommentsByMovie(r.Context(), movieId, app.viewer(r))

	resp := api.CommentListResponse{
		Comments: toApiComments(comments),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovieComment(w http.ResponseWriter, r *http.Request) {
	var input api.AddCommentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.MovieId = chi.URLParam(r, "movieId")

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	comment, err := app.catalog.AddComment(r.Context(), toDomainComment(input))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiComment(*comment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AddComment is the comment form action. It accepts a form post or a JSON
// body and always answers 200 with an api.CommentActionResult.
func (app *Application) AddComment(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	input, err := app.readCommentForm(w, r)
	if err != nil {
		app.commentResult(w, r, api.CommentActionResult{Error: err.Error()})
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.commentResult(w, r, api.CommentActionResult{Error: commentValidationMessage(err)})
		return
	}

	comment, err := app.catalog.AddComment(r.Context(), toDomainComment(input))
	if err != nil {
		logger.Error("failed to add comment", "movieId", input.MovieId, "error", err)
		app.commentResult(w, r, api.CommentActionResult{Error: msgCommentFailed})
		return
	}

	c := toApiComment(*comment)
	app.commentResult(w, r, api.CommentActionResult{Success: true, Comment: &c})
}

func (app *Application) readCommentForm(w http.ResponseWriter, r *http.Request) (api.AddCommentRequest, error) {
	var input api.AddCommentRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := app.readJSON(w, r, &input)
		return input, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	err := r.ParseForm()
	if err != nil {
		return input, err
	}

	input = api.AddCommentRequest{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		MovieId: strings.TrimSpace(r.PostForm.Get("movieId")),
		Text:    strings.TrimSpace(r.PostForm.Get("text")),
	}

	return input, nil
}

func (app *Application) commentResult(w http.ResponseWriter, r *http.Request, result api.CommentActionResult) {
	err := app.writeJSON(w, http.StatusOK, result, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func commentValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return msgCommentFailed
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return msgCommentFieldsRequired
		}
	}

	switch validationErrors[0].Tag() {
	case "email":
		return "Please enter a valid email address"
	default:
		return "Comment is too long"
	}
}

func toDomainComment(input api.AddCommentRequest) domain.Comment {
	return domain.Comment{
		Name:    input.Name,
		Email:   input.Email,
		MovieID: input.MovieId,
		Text:    input.Text,
	}
}
