package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/taskapi/pkg/i18n"
)

// Context wraps the request and response writer and embeds the request's
// context.Context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Locale is the language negotiated once per request by i18n.Middleware.
	Locale() string
	// Location is the rendering offset resolved once per request by TimezoneMiddleware.
	Location() *time.Location
}

// NewContext creates the default Context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) Locale() string                      { return i18n.LocaleFromContext(c.r.Context()) }
func (c *httpContext) Location() *time.Location            { return LocationFromContext(c.r.Context()) }

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *httpContext) Err() error                  { return c.r.Context().Err() }
func (c *httpContext) Value(key any) any           { return c.r.Context().Value(key) }
