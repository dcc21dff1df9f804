package auth

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/taskapi/handler"
)

var (
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrEmailTaken is a 409 with the "email_taken" message.
	ErrEmailTaken = handler.NewHTTPError(http.StatusConflict, "email_taken")
	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password.
	ErrInvalidCredentials = handler.NewHTTPError(http.StatusBadRequest, "invalid_credentials")
)
