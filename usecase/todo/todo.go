package todo

import (
	"context"

	"go.uber.org/zap"

	"github.com/todolite/backend/domain"
	"github.com/todolite/backend/repository"
)

// UseCase is the application service for todos. It is transport-agnostic;
// failures propagate unchanged to whoever maps them onto a status code.
type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
	}
}

func (uc *UseCase) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return uc.todos.List(ctx)
}

func (uc *UseCase) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	return uc.todos.GetByID(ctx, id)
}

func (uc *UseCase) CreateTodo(ctx context.Context, body string) (*domain.Todo, error) {
	created, err := uc.todos.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("todo created", zap.Int64("id", created.ID))
	return created, nil
}

func (uc *UseCase) UpdateTodo(ctx context.Context, id int64, body string, completed bool) (*domain.Todo, error) {
	updated, err := uc.todos.Update(ctx, id, body, completed)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("todo updated", zap.Int64("id", id), zap.Bool("completed", completed))
	return updated, nil
}

func (uc *UseCase) DeleteTodo(ctx context.Context, id int64) error {
	if err := uc.todos.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("todo deleted", zap.Int64("id", id))
	return nil
}
