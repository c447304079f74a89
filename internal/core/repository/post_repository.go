package repository

import (
	"context"

	"github.com/martijn/inkwell/internal/core/domain"
)

type PostRepository interface {
	// Create inserts the post and fills in its assigned ID.
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// Update overwrites every column except id and date.
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	// List returns all posts in insertion (id) order.
	List(ctx context.Context) ([]*domain.Post, error)
	Count(ctx context.Context) (int, error)
}
