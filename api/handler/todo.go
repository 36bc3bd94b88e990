package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todolite/backend/api/transport"
	"github.com/todolite/backend/domain"
	"github.com/todolite/backend/pkg/httpcontext"
	todoUC "github.com/todolite/backend/usecase/todo"
)

type TodoHandler struct {
	baseHandler
	uc *todoUC.UseCase
}

func NewTodoHandler(uc *todoUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List todos
// @Tags todos
// @Router /v1/todos [get]
func (h *TodoHandler) ListTodos(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	todos, err := h.uc.ListTodos(stdCtx)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, todos)
}

// @Summary Read todo
// @Tags todos
// @Router /v1/todos/{id} [get]
func (h *TodoHandler) GetTodo(ctx *fasthttp.RequestCtx) {
	id, ok := h.todoID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	todo, err := h.uc.GetTodo(stdCtx, id)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, todo)
}

// @Summary Create todo
// @Tags todos
// @Router /v1/todos [post]
func (h *TodoHandler) CreateTodo(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTodoRequest
	if !h.parseBody(ctx, &req, req.Validate) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTodo(stdCtx, *req.Body)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary Update todo
// @Tags todos
// @Router /v1/todos/{id} [put]
func (h *TodoHandler) UpdateTodo(ctx *fasthttp.RequestCtx) {
	id, ok := h.todoID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateTodoRequest
	if !h.parseBody(ctx, &req, req.Validate) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTodo(stdCtx, id, *req.Body, *req.Completed)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, updated)
}

// @Summary Delete todo
// @Tags todos
// @Router /v1/todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(ctx *fasthttp.RequestCtx) {
	id, ok := h.todoID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTodo(stdCtx, id); err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusNoContent, nil)
}

func (h *TodoHandler) todoID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid todo id"))
		return 0, false
	}
	return id, true
}

func (h *TodoHandler) parseBody(ctx *fasthttp.RequestCtx, req interface{}, validate func() error) bool {
	if err := json.Unmarshal(ctx.PostBody(), req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return false
	}
	if err := validate(); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), err.Error()))
		return false
	}
	return true
}
