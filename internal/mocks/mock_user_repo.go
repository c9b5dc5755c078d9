package mocks

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	UserByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	InsertUserFunc  func(ctx context.Context, u *domain.User) error
}

func (m *MockUserRepo) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.UserByEmailFunc(ctx, email)
}

func (m *MockUserRepo) InsertUser(ctx context.Context, u *domain.User) error {
	return m.InsertUserFunc(ctx, u)
}
