package repository

import (
	"context"

	"github.com/martijn/inkwell/internal/core/domain"
)

type UserRepository interface {
	// Create inserts the user and fills in its assigned ID. Returns
	// ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
