package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/movieflix/internal/domain"
)

func (s *Service) Theaters(ctx context.Context) []domain.Theater {
	theaters, _ := read(ctx, s, "theaters", func(src domain.CatalogSource, primary bool) ([]domain.Theater, error) {
		return src.Theaters(ctx)
	})

	return nonNil(theaters)
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*domain.User, bool) {
	user, err := read(ctx, s, "user_by_email", func(src domain.CatalogSource, primary bool) (*domain.User, error) {
		return src.UserByEmail(ctx, email)
	})
	if err != nil {
		return nil, false
	}

	return user, true
}

// CreateUser stores u and sets its ID. Without a store the user is kept in
// memory for the life of the process. A taken email yields
// ErrUserAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, u *domain.User) error {
	ctx, span := s.tracer.Start(ctx, "catalog.create_user")
	defer span.End()

	src, _ := s.writeSource(ctx)

	err := src.InsertUser(ctx, u)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return err
		}

		return fmt.Errorf("%w: %w", domain.ErrUserWrite, err)
	}

	return nil
}
