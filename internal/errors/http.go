package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// serverError is the backend's error envelope. Validation failures may carry
// a list of field errors instead of a plain string under the same key.
type serverError struct {
	Detail json.RawMessage `json:"detail"`
}

// MapHTTPError maps a non-2xx backend response to an AppError.
// The status code selects the category; a server-provided detail message is
// passed through verbatim so the UI can surface it unchanged.
func MapHTTPError(statusCode int, body []byte) *AppError {
	detail := extractDetail(body)

	switch {
	case statusCode == http.StatusUnauthorized:
		return &AppError{Code: ErrCodeUnauthorized, Message: fallback(detail, "Your session has expired. Please sign in again.")}
	case statusCode == http.StatusForbidden:
		return &AppError{Code: ErrCodeForbidden, Message: fallback(detail, "You do not have permission to perform this action.")}
	case statusCode == http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: fallback(detail, "Resource not found")}
	case statusCode == http.StatusConflict:
		return &AppError{Code: ErrCodeConflict, Message: fallback(detail, "The request conflicts with existing data.")}
	case statusCode == http.StatusUnprocessableEntity:
		return &AppError{Code: ErrCodeValidation, Message: fallback(detail, "The submitted data is invalid.")}
	case statusCode >= 400 && statusCode < 500:
		// Remaining 4xx responses are server-enforced business rules
		// (capacity reached, event not open for registration, ...).
		return &AppError{Code: ErrCodeBusiness, Message: fallback(detail, "The request was rejected.")}
	default:
		return &AppError{Code: ErrCodeInternal, Message: fallback(detail, "An unexpected error occurred. Please try again.")}
	}
}

// MapTransportError maps a request error (no response received) to an AppError.
func MapTransportError(err error) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTransport, Message: "The request timed out. Please try again.", Cause: err}
	}
	return &AppError{Code: ErrCodeTransport, Message: "An unexpected error occurred. Please try again.", Cause: err}
}

// extractDetail pulls a human-readable message out of the error envelope.
// Returns "" when the body carries nothing usable.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope serverError
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	// Field-error list: surface the first message.
	var fields []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		return strings.TrimSpace(fields[0].Msg)
	}

	return ""
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
