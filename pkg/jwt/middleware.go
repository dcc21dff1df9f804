package jwt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenExtractorFunc extracts a token from an HTTP request.
// It returns ErrMissingToken when the request carries none.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc determines whether to skip token validation for a request.
type SkipFunc func(r *http.Request) bool

// UserExistsFunc reports whether the user behind a verified token still exists.
type UserExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures the bearer middleware.
type MiddlewareConfig struct {
	Service      *Service           // verifies access tokens
	Extractor    TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip         SkipFunc           // optional request filter to bypass validation
	UserExists   UserExistsFunc     // optional; a missing user yields ErrUnknownUser
	ErrorHandler ErrorHandlerFunc   // defaults to a JSON body with the token code
}

// Middleware protects routes with bearer access tokens.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig creates the middleware with custom configuration.
// Verified requests carry the raw token and the user id in their context.
func MiddlewareWithConfig(cfg MiddlewareConfig) func(next http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("jwt: middleware requires a service")
	}
	if cfg.Extractor == nil {
		cfg.Extractor = BearerTokenExtractor
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = DefaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := cfg.Extractor(r)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			userID, err := cfg.Service.Verify(token)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			if cfg.UserExists != nil {
				ok, err := cfg.UserExists(r.Context(), userID)
				if err != nil {
					cfg.ErrorHandler(w, r, fmt.Errorf("jwt: user lookup: %w", err))
					return
				}
				if !ok {
					cfg.ErrorHandler(w, r, ErrUnknownUser)
					return
				}
			}

			ctx := WithToken(r.Context(), token)
			ctx = WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor reads "Authorization: Bearer <token>".
// A missing header is ErrMissingToken; any other shape is ErrInvalidToken.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" || strings.EqualFold(authHeader, "Bearer") {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := strings.TrimSpace(r.Header.Get(headerName))
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// DefaultErrorHandler writes {"error": code} with the status of HTTPStatus.
// Errors that are not token failures become a bare 500.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	code := Code(err)
	if code == "" {
		code = "internal_server_error"
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
