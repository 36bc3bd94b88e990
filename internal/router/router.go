package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/todolite/backend/api/handler"
)

type Handlers struct {
	Todo   *apiHandler.TodoHandler
	Health *apiHandler.HealthHandler
}

// Middleware wraps a request handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, middlewares ...Middleware) *router.Router {
	r := router.New()

	wrap := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	r.GET("/health", wrap(handlers.Health.Check))

	r.GET("/v1/todos", wrap(handlers.Todo.ListTodos))
	r.POST("/v1/todos", wrap(handlers.Todo.CreateTodo))
	r.GET("/v1/todos/{id}", wrap(handlers.Todo.GetTodo))
	r.PUT("/v1/todos/{id}", wrap(handlers.Todo.UpdateTodo))
	r.DELETE("/v1/todos/{id}", wrap(handlers.Todo.DeleteTodo))

	return r
}
