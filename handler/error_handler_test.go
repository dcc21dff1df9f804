package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskapi/handler"
	"github.com/dmitrymomot/taskapi/locales"
	"github.com/dmitrymomot/taskapi/pkg/binder"
	"github.com/dmitrymomot/taskapi/pkg/i18n"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."))
	require.NoError(t, err)
	return tr
}

func renderError(t *testing.T, h func(http.ResponseWriter, *http.Request, error), lang string, err error) (int, handler.ErrorBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	req = req.WithContext(i18n.WithLocale(req.Context(), lang))
	rec := httptest.NewRecorder()
	h(rec, req, err)

	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body handler.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	t.Parallel()

	h := handler.NewHTTPErrorHandler(logger.Discard(), newTranslator(t))
	_, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Body("title", sanitizer.Ptr("   "), validator.NotEmpty).Required(),
		sanitizer.Body("description", sanitizer.Ptr("ok"), validator.String),
		sanitizer.Body("project_id", sanitizer.Ptr("nope"), validator.UUID),
		sanitizer.Body("priority", nil, validator.String).Required(),
	)
	require.Error(t, err)

	status, body := renderError(t, h, "en", err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []handler.ErrorItem{
		{Field: "title", Type: validator.CodeEmpty, Message: "must not be empty"},
		{Field: "project_id", Type: validator.CodeUUID, Message: "'nope' is not a valid UUID"},
		{Field: "priority", Type: validator.CodeRequired, Message: "is required"},
	}, body.Errors)
}

func TestErrorHandler_LocalizedMessages(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	h := handler.NewHTTPErrorHandler(logger.Discard(), tr)
	err := &sanitizer.InvalidRequestError{Errors: []sanitizer.FieldError{
		{Field: "title", Origin: sanitizer.OriginBody, Code: validator.CodeEmpty},
	}}

	_, en := renderError(t, h, "en", err)
	_, es := renderError(t, h, "es", err)

	require.Len(t, en.Errors, 1)
	require.Len(t, es.Errors, 1)
	assert.Equal(t, en.Errors[0].Type, es.Errors[0].Type)
	assert.Equal(t, tr.Translate("es", validator.CodeEmpty), es.Errors[0].Message)
	assert.NotEqual(t, en.Errors[0].Message, es.Errors[0].Message)
}

func TestErrorHandler_Classification(t *testing.T) {
	t.Parallel()

	h := handler.NewHTTPErrorHandler(logger.Discard(), newTranslator(t))

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"expired token", jwt.ErrExpiredToken, http.StatusBadRequest, jwt.CodeExpired},
		{"tampered token", errors.Join(jwt.ErrTamperedToken, errors.New("signature")), http.StatusBadRequest, jwt.CodeTampered},
		{"missing token", jwt.ErrMissingToken, http.StatusForbidden, jwt.CodeMissing},
		{"unknown user", jwt.ErrUnknownUser, http.StatusForbidden, jwt.CodeUnknownUser},
		{"broken json", errors.Join(binder.ErrFailedToParseJSON, errors.New("eof")), http.StatusBadRequest, "invalid_json"},
		{"wrong media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"missing media type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"too large", binder.ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "request_too_large"},
		{"http error", handler.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped http error", fmt.Errorf("tasks: %w", handler.NewHTTPError(http.StatusConflict, "email_taken")), http.StatusConflict, "email_taken"},
		{"fault", errors.New("pg: connection reset"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, body := renderError(t, h, "en", tt.err)
			assert.Equal(t, tt.status, status)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.code, body.Errors[0].Type)
			assert.Empty(t, body.Errors[0].Field)
			assert.NotEmpty(t, body.Errors[0].Message)
			assert.NotContains(t, body.Errors[0].Message, "pg:")
		})
	}
}

func TestErrorHandler_WithoutTranslator(t *testing.T) {
	t.Parallel()

	h := handler.NewHTTPErrorHandler(nil, nil)
	status, body := renderError(t, h, "en", handler.ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []handler.ErrorItem{{Type: "bad_request", Message: "bad_request"}}, body.Errors)
}

func TestClassify_LogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "WARN", handler.Classify(handler.ErrNotFound, nil, "en").LogLevel.String())
	assert.Equal(t, "ERROR", handler.Classify(errors.New("boom"), nil, "en").LogLevel.String())
}

func TestNewErrorHandler_WithWrap(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(handler.Context) handler.Response { return handler.Error(jwt.ErrExpiredToken) },
		handler.WithErrorHandler(handler.NewErrorHandler(logger.Discard(), newTranslator(t))),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"type":"token_expired","message":"the token has expired"}]}`, rec.Body.String())
}
