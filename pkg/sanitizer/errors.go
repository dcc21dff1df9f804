package sanitizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest matches every *InvalidRequestError via errors.Is.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoFields is returned when Sanitize is called without specs.
	ErrNoFields = errors.New("sanitizer: no fields to sanitize")

	// ErrTypeMismatch is the panic payload of As on a wrongly typed unwrap.
	ErrTypeMismatch = errors.New("sanitizer: value type mismatch")
)

// FieldError describes why one field was rejected.
type FieldError struct {
	Field  string // logical name, not the output key
	Origin Origin
	Code   string
	Args   []any
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s (%s): %s", e.Field, e.Origin, e.Code)
}

// InvalidRequestError aggregates every field failure of one Sanitize call,
// in the order the fields were supplied.
type InvalidRequestError struct {
	Errors []FieldError
}

func (e *InvalidRequestError) Error() string {
	if len(e.Errors) == 0 {
		return ErrInvalidRequest.Error()
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.String()
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Has reports whether field failed.
func (e *InvalidRequestError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Codes returns the message codes in field order.
func (e *InvalidRequestError) Codes() []string {
	codes := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		codes[i] = fe.Code
	}
	return codes
}

// ExtractFieldErrors returns the field errors carried by err, or nil.
func ExtractFieldErrors(err error) []FieldError {
	var invalid *InvalidRequestError
	if errors.As(err, &invalid) {
		return invalid.Errors
	}
	return nil
}

// IsInvalidRequest reports whether err is an aggregated validation error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
