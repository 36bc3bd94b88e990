package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/todolite/backend/domain"
	"github.com/todolite/backend/repository"
)

// Queries are written with ? placeholders and rebound per driver, so the
// same statements run against sqlite and postgres. INSERT and UPDATE use
// RETURNING so the response row comes out of the mutating statement.
const (
	listQuery = `SELECT id, body, completed, created_at, updated_at FROM todos`

	getQuery = `SELECT id, body, completed, created_at, updated_at FROM todos WHERE id = ?`

	createQuery = `INSERT INTO todos (body) VALUES (?)
	RETURNING id, body, completed, created_at, updated_at`

	updateQuery = `UPDATE todos SET body = ?, completed = ?, updated_at = CURRENT_TIMESTAMP
	WHERE id = ?
	RETURNING id, body, completed, created_at, updated_at`

	deleteQuery = `DELETE FROM todos WHERE id = ?`
)

type todoRepository struct {
	db *sqlx.DB
}

// NewTodoRepository returns a SQL-backed implementation of TodoRepository.
func NewTodoRepository(db *sqlx.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	todos := []domain.Todo{}
	if err := r.db.SelectContext(ctx, &todos, r.db.Rebind(listQuery)); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.GetContext(ctx, &todo, r.db.Rebind(getQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Create(ctx context.Context, body string) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.GetContext(ctx, &todo, r.db.Rebind(createQuery), body); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Update(ctx context.Context, id int64, body string, completed bool) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.GetContext(ctx, &todo, r.db.Rebind(updateQuery), body, completed, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	// Zero rows affected is deliberately not an error.
	_, err := r.db.ExecContext(ctx, r.db.Rebind(deleteQuery), id)
	return err
}
