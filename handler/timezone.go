package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/taskapi/pkg/binder"
	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// TimezoneHeader selects the offset used to render timestamps in responses.
const TimezoneHeader = "X-Timezone-Offset"

type locationContextKey struct{}

// WithLocation stores the rendering location in the context.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locationContextKey{}, loc)
}

// LocationFromContext returns the stored location, or UTC.
func LocationFromContext(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(locationContextKey{}).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.UTC
}

// TimezoneMiddleware resolves the X-Timezone-Offset header once per request.
// The header is optional; a malformed value is rejected through onError with
// a field error for the header.
func TimezoneMiddleware(onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, err := sanitizer.One(r.Context(),
				sanitizer.Header(TimezoneHeader, binder.Header(r, TimezoneHeader), validator.TimezoneOffset),
			)
			if err != nil {
				onError(w, r, err)
				return
			}
			if loc == nil {
				loc = time.UTC
			}
			next.ServeHTTP(w, r.WithContext(WithLocation(r.Context(), loc)))
		})
	}
}
