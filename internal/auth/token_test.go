package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movieflix/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testIdentity = domain.Identity{
	UserID: "59b99db6cfa9a34dcd7885bb",
	Name:   "Daenerys Targaryen",
	Email:  "emilia_clarke@gameofthron.es",
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got, ok := m.Verify(token)
	if !ok {
		t.Fatalf("Verify() ok = false, want true")
	}

	if diff := cmp.Diff(&testIdentity, got); diff != "" {
		t.Errorf("Verify() mismatch (-want +got):\n%s", diff)
	}

	if !m.IsAuthenticated(token) {
		t.Errorf("IsAuthenticated() = false, want true")
	}
}

func TestVerifyRejects(t *testing.T) {
	valid := NewTokenManager(testSecret, time.Hour)
	goodToken, err := valid.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expired := NewTokenManager(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherKey := NewTokenManager("another-secret-another-secret-xx", time.Hour)
	otherToken, err := otherKey.Issue(testIdentity)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: testIdentity.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	tests := []struct {
		name    string
		manager *TokenManager
		token   string
	}{
		{name: "empty token", manager: valid, token: ""},
		{name: "malformed token", manager: valid, token: "not.a.token"},
		{name: "expired token", manager: valid, token: expiredToken},
		{name: "signed with another key", manager: valid, token: otherToken},
		{name: "unsigned token", manager: valid, token: noneToken},
		{name: "missing secret", manager: NewTokenManager("", time.Hour), token: goodToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.manager.Verify(tt.token)
			if ok || got != nil {
				t.Errorf("Verify() = %v, %v, want nil, false", got, ok)
			}
		})
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	m := NewTokenManager("", time.Hour)

	if _, err := m.Issue(testIdentity); err != ErrNoSecret {
		t.Errorf("Issue() error = %v, want %v", err, ErrNoSecret)
	}
}
