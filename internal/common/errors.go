// Package common defines shared constants and sentinel errors used across
// the identity and movie-categories services. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"net/http"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Token errors. All of them surface to clients as the same 401.
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidIssuer    = errors.New("invalid token issuer")
	ErrInvalidAudience  = errors.New("invalid token audience")

	// ErrSigningKeyMissing is fatal: tokens are never issued unsigned.
	ErrSigningKeyMissing = errors.New("signing key is not configured")
)

// StatusError is an error with a client-safe message and the HTTP status it
// maps to. Details are only exposed to clients in development.
type StatusError struct {
	Code    int
	Message string
	Details string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StatusError) Unwrap() error { return e.Err }

// NewStatusError builds a StatusError wrapping err.
func NewStatusError(code int, message string, err error) *StatusError {
	se := &StatusError{Code: code, Message: message, Err: err}
	if err != nil {
		se.Details = err.Error()
	}
	return se
}

func Unauthorized(message string) *StatusError {
	return NewStatusError(http.StatusUnauthorized, message, ErrorUnauthorized)
}

func Conflict(message string) *StatusError {
	return NewStatusError(http.StatusConflict, message, ErrorAlreadyExists)
}

func NotFound(message string) *StatusError {
	return NewStatusError(http.StatusNotFound, message, ErrorNotFound)
}

func BadRequest(message string, err error) *StatusError {
	if err == nil {
		err = ErrorValidation
	}
	return NewStatusError(http.StatusBadRequest, message, err)
}
