package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/todolite/backend/domain"
	todoUC "github.com/todolite/backend/usecase/todo"
)

// stubRepo is a minimal in-memory TodoRepository for handler tests.
type stubRepo struct {
	todos map[int64]domain.Todo
	seq   int64
	err   error
}

func newStubRepo() *stubRepo {
	return &stubRepo{todos: map[int64]domain.Todo{}}
}

func (s *stubRepo) List(ctx context.Context) ([]domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.Todo{}
	for _, t := range s.todos {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	return &t, nil
}

func (s *stubRepo) Create(ctx context.Context, body string) (*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.seq++
	now := time.Now().UTC()
	t := domain.Todo{ID: s.seq, Body: body, CreatedAt: now, UpdatedAt: now}
	s.todos[t.ID] = t
	return &t, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, body string, completed bool) (*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	t.Body = body
	t.Completed = completed
	t.UpdatedAt = t.UpdatedAt.Add(time.Second)
	s.todos[id] = t
	return &t, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.todos, id)
	return nil
}

func newTestHandler(repo *stubRepo) *TodoHandler {
	return NewTodoHandler(todoUC.New(repo, nil), nil, nil)
}

func newRequestCtx(method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

func decodeTodo(t *testing.T, ctx *fasthttp.RequestCtx) domain.Todo {
	t.Helper()
	var todo domain.Todo
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &todo))
	return todo
}

func TestCreateTodo(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodPost, "/v1/todos", `{"body":"buy milk"}`)
	h.CreateTodo(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	todo := decodeTodo(t, ctx)
	assert.Equal(t, int64(1), todo.ID)
	assert.Equal(t, "buy milk", todo.Body)
	assert.False(t, todo.Completed)
	assert.True(t, todo.CreatedAt.Equal(todo.UpdatedAt))
}

func TestCreateTodo_MalformedJSON(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodPost, "/v1/todos", `{"body":`)
	h.CreateTodo(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCreateTodo_MissingBodyField(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodPost, "/v1/todos", `{}`)
	h.CreateTodo(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "body")
}

func TestGetTodo(t *testing.T) {
	repo := newStubRepo()
	created, err := repo.Create(context.Background(), "buy milk")
	require.NoError(t, err)

	h := newTestHandler(repo)
	ctx := newRequestCtx(http.MethodGet, "/v1/todos/1", "")
	ctx.SetUserValue("id", "1")
	h.GetTodo(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	todo := decodeTodo(t, ctx)
	assert.Equal(t, created.ID, todo.ID)
	assert.Equal(t, created.Body, todo.Body)
	assert.Equal(t, created.Completed, todo.Completed)
}

func TestGetTodo_NotFound(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodGet, "/v1/todos/42", "")
	ctx.SetUserValue("id", "42")
	h.GetTodo(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestGetTodo_NonIntegerID(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodGet, "/v1/todos/abc", "")
	ctx.SetUserValue("id", "abc")
	h.GetTodo(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestUpdateTodo(t *testing.T) {
	repo := newStubRepo()
	created, err := repo.Create(context.Background(), "buy milk")
	require.NoError(t, err)

	h := newTestHandler(repo)
	ctx := newRequestCtx(http.MethodPut, "/v1/todos/1", `{"body":"buy milk","completed":true}`)
	ctx.SetUserValue("id", "1")
	h.UpdateTodo(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	todo := decodeTodo(t, ctx)
	assert.Equal(t, created.ID, todo.ID)
	assert.True(t, todo.Completed)
	assert.True(t, todo.UpdatedAt.After(created.UpdatedAt))
	assert.False(t, todo.UpdatedAt.Before(todo.CreatedAt))
}

func TestUpdateTodo_MissingCompletedField(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodPut, "/v1/todos/1", `{"body":"buy milk"}`)
	ctx.SetUserValue("id", "1")
	h.UpdateTodo(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "completed")
}

func TestUpdateTodo_NotFound(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodPut, "/v1/todos/42", `{"body":"x","completed":false}`)
	ctx.SetUserValue("id", "42")
	h.UpdateTodo(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestDeleteTodo(t *testing.T) {
	repo := newStubRepo()
	_, err := repo.Create(context.Background(), "buy milk")
	require.NoError(t, err)

	h := newTestHandler(repo)
	ctx := newRequestCtx(http.MethodDelete, "/v1/todos/1", "")
	ctx.SetUserValue("id", "1")
	h.DeleteTodo(ctx)

	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
	assert.Empty(t, ctx.Response.Body())
}

func TestDeleteTodo_MissingIDSucceeds(t *testing.T) {
	h := newTestHandler(newStubRepo())

	ctx := newRequestCtx(http.MethodDelete, "/v1/todos/42", "")
	ctx.SetUserValue("id", "42")
	h.DeleteTodo(ctx)

	// Deleting an absent id is explicitly success, not 404.
	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
}

func TestListTodos(t *testing.T) {
	repo := newStubRepo()
	for _, body := range []string{"one", "two", "three"} {
		_, err := repo.Create(context.Background(), body)
		require.NoError(t, err)
	}

	h := newTestHandler(repo)
	ctx := newRequestCtx(http.MethodGet, "/v1/todos", "")
	h.ListTodos(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var todos []domain.Todo
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &todos))
	require.Len(t, todos, 3)

	bodies := map[string]bool{}
	for _, todo := range todos {
		bodies[todo.Body] = true
	}
	assert.True(t, bodies["one"] && bodies["two"] && bodies["three"])
}

func TestStoreFailureMapsTo500(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("connection refused")

	h := newTestHandler(repo)
	ctx := newRequestCtx(http.MethodGet, "/v1/todos", "")
	h.ListTodos(ctx)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), string(domain.ErrCodeInternal))
}
