package transport

import "github.com/todolite/backend/domain"

// Request payloads use pointer fields so a missing key is distinguishable
// from a zero value; a missing required field is a client error, not a
// silent default.

type CreateTodoRequest struct {
	Body *string `json:"body"`
}

func (r *CreateTodoRequest) Validate() error {
	if r.Body == nil {
		return domain.NewError(domain.ErrCodeInvalid, "missing field: body")
	}
	return nil
}

type UpdateTodoRequest struct {
	Body      *string `json:"body"`
	Completed *bool   `json:"completed"`
}

func (r *UpdateTodoRequest) Validate() error {
	if r.Body == nil {
		return domain.NewError(domain.ErrCodeInvalid, "missing field: body")
	}
	if r.Completed == nil {
		return domain.NewError(domain.ErrCodeInvalid, "missing field: completed")
	}
	return nil
}
