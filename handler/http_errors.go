package handler

import (
	"errors"
	"net/http"
)

// HTTPError is an expected failure with a status code and a translation key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // translation key, e.g. "not_found"
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// NewHTTPError builds a custom HTTPError.
//
//	var ErrEmailTaken = handler.NewHTTPError(http.StatusConflict, "email_taken")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func statusOf(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return ErrInternalServerError.Code, ErrInternalServerError.Key
}
