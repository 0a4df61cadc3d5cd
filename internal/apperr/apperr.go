// Package apperr classifies failures in the quiz pipeline and maps them to HTTP statuses.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrConfiguration  = errors.New("configuration error")
	ErrUpstream       = errors.New("upstream error")
	ErrExtraction     = errors.New("extraction error")
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidShape   = errors.New("invalid shape")
	ErrTooLarge       = errors.New("payload too large")
)

// Error carries a client-facing message, its kind and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind error, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrMalformedInput), errors.Is(err, ErrInvalidShape):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
