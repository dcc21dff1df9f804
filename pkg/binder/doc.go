// Package binder extracts raw, untyped inputs from HTTP requests for the
// sanitizer.
//
// Binders never convert or validate. They only answer "what string did the
// client send for this name, if any", preserving the difference between an
// absent input (nil) and an empty one (""):
//
//	fields, err := binder.JSONFields(r)
//	if err != nil {
//	    return err // malformed body, wrong content type or too large
//	}
//
//	c, err := sanitizer.Sanitize(ctx,
//	    sanitizer.Body("title", fields.Get("title"), titleRule).Required(),
//	    sanitizer.Header("X-Timezone-Offset", binder.Header(r, "X-Timezone-Offset"), validator.TimezoneOffset),
//	    sanitizer.Query("limit", binder.Query(r, "limit"), limitRule),
//	    sanitizer.Path("id", binder.Path(r, chi.URLParam, "id"), validator.UUID),
//	)
//
// JSON bodies must be objects of at most DefaultMaxJSONSize bytes sent with an
// application/json content type.
package binder
