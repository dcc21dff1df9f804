package binder

import (
	"net/http"
	"net/textproto"
	"strings"

	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// Header returns the first value of the named header, nil when the header is
// not sent. Multiple values are not merged.
func Header(r *http.Request, name string) *string {
	values, ok := r.Header[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(values) == 0 {
		return nil
	}
	return sanitizer.Ptr(values[0])
}

// Query returns the named query parameter, nil when it is not in the URL.
// Repeated parameters (?tag=a&tag=b) are joined with validator.ListSeparator.
func Query(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return sanitizer.Ptr(strings.Join(values, validator.ListSeparator))
}

// PathExtractor reads a route parameter; chi.URLParam satisfies it.
type PathExtractor func(r *http.Request, name string) string

// Path returns the named route parameter, nil when the router has none.
func Path(r *http.Request, extract PathExtractor, name string) *string {
	if extract == nil {
		return nil
	}
	v := extract(r, name)
	if v == "" {
		return nil
	}
	return &v
}
