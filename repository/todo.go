package repository

import (
	"context"

	"github.com/todolite/backend/domain"
)

// TodoRepository is the storage contract for todos. Every operation is a
// single round trip to the backing store.
type TodoRepository interface {
	List(ctx context.Context) ([]domain.Todo, error)
	GetByID(ctx context.Context, id int64) (*domain.Todo, error)
	Create(ctx context.Context, body string) (*domain.Todo, error)
	Update(ctx context.Context, id int64, body string, completed bool) (*domain.Todo, error)
	// Delete is idempotent: removing an id that does not exist is not an error.
	Delete(ctx context.Context, id int64) error
}
