package jwt

import (
	"errors"
	"net/http"
)

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrInvalidTTL        = errors.New("jwt: token ttl must be positive")

	ErrInvalidToken   = errors.New("jwt: invalid token")
	ErrExpiredToken   = errors.New("jwt: token is expired")
	ErrTamperedToken  = errors.New("jwt: token signature or issuer mismatch")
	ErrMissingSubject = errors.New("jwt: token has no resolvable subject")
	ErrMissingToken   = errors.New("jwt: token is missing")
	ErrUnknownUser    = errors.New("jwt: token subject does not exist")
)

// Error codes reported to clients. Each token failure kind has its own code.
const (
	CodeExpired        = "token_expired"
	CodeTampered       = "token_tampered"
	CodeUnknownSubject = "token_unknown_subject"
	CodeInvalid        = "invalid_token"
	CodeMissing        = "token_missing"
	CodeUnknownUser    = "user_not_found"
)

// Code returns the client-facing code for a token error, or "" when err is not one.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExpiredToken):
		return CodeExpired
	case errors.Is(err, ErrTamperedToken):
		return CodeTampered
	case errors.Is(err, ErrMissingSubject):
		return CodeUnknownSubject
	case errors.Is(err, ErrMissingToken):
		return CodeMissing
	case errors.Is(err, ErrUnknownUser):
		return CodeUnknownUser
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalid
	default:
		return ""
	}
}

// IsTokenError reports whether err is one of the verification failures above.
func IsTokenError(err error) bool {
	return Code(err) != ""
}

// HTTPStatus returns the response status for a token error: 403 when no usable
// identity was presented, 400 when the presented token is bad.
func HTTPStatus(err error) int {
	switch Code(err) {
	case "":
		return http.StatusInternalServerError
	case CodeMissing, CodeUnknownUser:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
