package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	withCause := &AppError{Code: ErrCodeInternal, Message: "save failed", Cause: errors.New("disk full")}
	assert.Equal(t, "save failed: disk full", withCause.Error())

	withoutCause := &AppError{Code: ErrCodeValidation, Message: "title is required"}
	assert.Equal(t, "title is required", withoutCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, ErrCodeTransport, "request failed")

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, ErrCodeTransport, appErr.Code)
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"transport", Transport("no response"), IsTransport},
		{"unauthorized", Unauthorized("expired"), IsUnauthorized},
		{"forbidden", Forbidden("admins only"), IsForbidden},
		{"not_found", NotFound("missing"), IsNotFound},
		{"validation", Validation("bad input"), IsValidation},
		{"conflict", Conflict("duplicate"), IsConflict},
		{"business", Business("event full"), IsBusiness},
		{"internal", Internal("boom"), IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(errors.New("plain")))
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeBusiness, GetCode(Business("event full")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Event is full", UserMessage(Business("Event is full")))
	assert.Equal(t, "An unexpected error occurred. Please try again.", UserMessage(errors.New("dial tcp: timeout")))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    ErrorCode
		message string
	}{
		{"unauthorized", 401, `{"detail": "Could not validate credentials"}`, ErrCodeUnauthorized, "Could not validate credentials"},
		{"forbidden default", 403, ``, ErrCodeForbidden, "You do not have permission to perform this action."},
		{"not found", 404, `{"detail": "Event not found"}`, ErrCodeNotFound, "Event not found"},
		{"conflict", 409, `{"detail": "Already registered"}`, ErrCodeConflict, "Already registered"},
		{"validation list", 422, `{"detail": [{"msg": "field required", "loc": ["body", "title"]}]}`, ErrCodeValidation, "field required"},
		{"business rule", 400, `{"detail": "Event is full"}`, ErrCodeBusiness, "Event is full"},
		{"server error", 500, `not json`, ErrCodeInternal, "An unexpected error occurred. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestMapTransportError(t *testing.T) {
	err := MapTransportError(errors.New("connection refused"))
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeTransport, err.Code)
	assert.Equal(t, "An unexpected error occurred. Please try again.", err.Message)

	assert.Nil(t, MapTransportError(nil))
}
