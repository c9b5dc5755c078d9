package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movieflix/api"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidationMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantIssue string
	}{
		{
			name:      "missing comment text",
			input:     api.AddCommentRequest{Name: "A", Email: "a@b.com", MovieId: "m1"},
			wantField: "Text",
			wantIssue: ErrRequired,
		},
		{
			name:      "bad signup email",
			input:     api.SignupRequest{Name: "Ned", Email: "ned", Password: "Winter1s!"},
			wantField: "Email",
			wantIssue: ErrInvalidEmail,
		},
		{
			name:      "short signup name",
			input:     api.SignupRequest{Name: "N", Email: "ned@stark.com", Password: "Winter1s!"},
			wantField: "Name",
			wantIssue: fmt.Sprintf(ErrMinLength, "2"),
		},
		{
			name:      "weak password",
			input:     api.SignupRequest{Name: "Ned", Email: "ned@stark.com", Password: "winteriscoming"},
			wantField: "Password",
			wantIssue: ErrInvalidPassword,
		},
		{
			name:      "unknown watchlist status",
			input:     api.AddToWatchlistRequest{MovieId: "m1", Status: ptr(api.WatchlistStatus("abandoned"))},
			wantField: "Status",
			wantIssue: ErrWatchlistStatus,
		},
		{
			name:      "rating above range",
			input:     api.UpdateWatchlistRequest{Rating: ptr(11.0)},
			wantField: "Rating",
			wantIssue: fmt.Sprintf(ErrMaxValue, "10"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			var errs validator.ValidationErrors
			if !errors.As(err, &errs) || len(errs) == 0 {
				t.Fatalf("Struct() error = %v, want validation errors", err)
			}

			if errs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field(), tt.wantField)
			}

			if got := ValidationMessage(errs[0]); got != tt.wantIssue {
				t.Errorf("ValidationMessage() = %q, want %q", got, tt.wantIssue)
			}
		})
	}
}

func TestValidInputs(t *testing.T) {
	v := NewValidator()

	inputs := []any{
		api.AddCommentRequest{Name: "A", Email: "a@b.com", MovieId: "m1", Text: "hi"},
		api.SignupRequest{Name: "Ned", Email: "ned@stark.com", Password: "Winter1s!"},
		api.AddToWatchlistRequest{MovieId: "m1"},
		api.AddToWatchlistRequest{MovieId: "m1", Status: ptr(api.WATCHED)},
		api.UpdateWatchlistRequest{Status: ptr(api.WATCHING), Rating: ptr(7.5), Notes: ptr("again")},
		api.GetMoviesParams{Limit: ptr(20), Offset: ptr(0)},
	}

	for _, input := range inputs {
		if err := v.Struct(input); err != nil {
			t.Errorf("Struct(%+v) error = %v", input, err)
		}
	}
}
