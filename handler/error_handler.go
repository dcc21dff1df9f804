package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/taskapi/pkg/binder"
	"github.com/dmitrymomot/taskapi/pkg/i18n"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
)

// Translator renders a message code with positional arguments.
// *i18n.Translator satisfies it.
type Translator interface {
	Translate(lang, code string, args ...any) string
}

// ErrorItem is one entry of an error response. Type is the stable message
// code; Message is its translation in the request locale.
type ErrorItem struct {
	Field   string `json:"field,omitempty"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// ErrorInfo is the classification of an error for the response and the log.
type ErrorInfo struct {
	StatusCode int
	Items      []ErrorItem
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

var (
	errInvalidJSON          = NewHTTPError(http.StatusBadRequest, "invalid_json")
	errUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	errRequestTooLarge      = NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large")
)

type failure struct {
	item ErrorItem
	args []any
}

// classify maps err onto a status and untranslated failures. Messages are
// filled in afterwards so translation happens once, at serialization time.
func classify(err error) (int, []failure) {
	var invalid *sanitizer.InvalidRequestError
	if errors.As(err, &invalid) {
		out := make([]failure, len(invalid.Errors))
		for i, fe := range invalid.Errors {
			out[i] = failure{item: ErrorItem{Field: fe.Field, Type: fe.Code}, args: fe.Args}
		}
		return http.StatusBadRequest, out
	}

	if code := jwt.Code(err); code != "" {
		return jwt.HTTPStatus(err), []failure{{item: ErrorItem{Type: code}}}
	}

	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		err = errRequestTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		err = errUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON):
		err = errInvalidJSON
	}

	status, key := statusOf(err)
	return status, []failure{{item: ErrorItem{Type: key}}}
}

// Classify returns the ErrorInfo of err with messages translated to lang.
// Without a translator the message is the code itself.
func Classify(err error, tr Translator, lang string) ErrorInfo {
	status, failures := classify(err)
	items := make([]ErrorItem, len(failures))
	for i, f := range failures {
		items[i] = f.item
		if tr != nil {
			items[i].Message = tr.Translate(lang, f.item.Type, f.args...)
		} else {
			items[i].Message = f.item.Type
		}
	}
	return ErrorInfo{
		StatusCode: status,
		Items:      items,
		LogLevel:   determineLogLevel(status),
	}
}

// NewHTTPErrorHandler returns the JSON error boundary for plain net/http
// code: middlewares, router fallbacks and the bearer middleware.
// Each error is logged once, at warn level for 4xx and error level for 5xx.
func NewHTTPErrorHandler(log *slog.Logger, tr Translator) func(w http.ResponseWriter, r *http.Request, err error) {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		lang := i18n.LocaleFromContext(r.Context())
		info := Classify(err, tr, lang)
		logError(log, r, err, info, lang)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(info.StatusCode)
		if encErr := json.NewEncoder(w).Encode(ErrorBody{Errors: info.Items}); encErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Component("error_handler"),
				logger.Error(encErr),
			)
		}
	}
}

// NewErrorHandler adapts NewHTTPErrorHandler to Wrap.
func NewErrorHandler(log *slog.Logger, tr Translator) ErrorHandler[Context] {
	h := NewHTTPErrorHandler(log, tr)
	return func(ctx Context, err error) {
		h(ctx.ResponseWriter(), ctx.Request(), err)
	}
}

func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo, lang string) {
	codes := make([]string, len(info.Items))
	for i, item := range info.Items {
		codes[i] = item.Type
	}

	attrs := []slog.Attr{
		logger.Component("error_handler"),
		logger.Status(info.StatusCode),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Locale(lang),
		logger.Codes(codes...),
	}
	if info.LogLevel >= slog.LevelError {
		attrs = append(attrs, logger.Error(err))
	}
	if id, ok := jwt.UserID(r.Context()); ok {
		attrs = append(attrs, logger.UserID(id))
	}

	log.LogAttrs(r.Context(), info.LogLevel, "request failed", attrs...)
}
