package transport

import "encoding/json"

// Success responses are the bare entity JSON; only failures get a wrapper.

// ErrorResponse is the minimal error payload returned on failures.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// NewError builds an error payload.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Error: message}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e ErrorResponse) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
