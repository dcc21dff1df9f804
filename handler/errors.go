package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler: nil response")
	// ErrNilError indicates Error was called with a nil error.
	ErrNilError = errors.New("handler: nil error")
)
