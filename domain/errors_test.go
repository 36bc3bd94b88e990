package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrTodoNotFound, ErrCodeNotFound))
	assert.False(t, IsDomainError(ErrTodoNotFound, ErrCodeInternal))
	assert.False(t, IsDomainError(errors.New("plain"), ErrCodeNotFound))
	assert.False(t, IsDomainError(nil, ErrCodeNotFound))
}

func TestIsDomainError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("get todo: %w", ErrTodoNotFound)
	assert.True(t, IsDomainError(wrapped, ErrCodeNotFound))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(ErrCodeInternal, "insert failed", cause)

	assert.Equal(t, "insert failed: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsDomainError(err, ErrCodeInternal))
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalid, "missing field: body")
	assert.Equal(t, "missing field: body", err.Error())
	assert.Nil(t, err.Unwrap())
}
