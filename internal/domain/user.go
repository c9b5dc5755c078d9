package domain

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Password password
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// Identity is what a verified session token says about its bearer.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

type UserRepository interface {
	UserByEmail(ctx context.Context, email string) (*User, error)
	// InsertUser stores u and sets its ID. It returns ErrUserAlreadyExists
	// when the email is taken.
	InsertUser(ctx context.Context, u *User) error
}
