// Package sanitizer turns raw, untyped request inputs (JSON body fields,
// headers, query and path parameters) into typed, validated values in a single
// pass, collecting every field error instead of stopping at the first one.
//
// # Building fields
//
// Each input is described by a Field built with Body, Header, Query or Path.
// Fields are optional unless Required is called; As renames the output key:
//
//	c, err := sanitizer.Sanitize(ctx,
//	    sanitizer.Body("title", in.Get("title"), titleRule).Required(),
//	    sanitizer.Body("due_at", in.Get("due_at"), dueRule),
//	    sanitizer.Body("tag_ids", in.Get("tag_ids"), tagsRule).As("tags"),
//	)
//
// A nil raw value means the input was absent. For a required field that is a
// "validation.is_required" failure; for an optional one it yields an absent
// Value. In both cases the rule is never called. A rule that returns a typed
// nil (a nil pointer, slice or map) also yields an absent Value; an empty but
// non-nil slice stays present.
//
// # Results
//
// On success Sanitize returns a Collection with exactly one entry per field.
// Values are unwrapped with the generic helpers Get, GetOr, As, OrDefault and
// IfPresent. Unwrapping a present value as the wrong type panics with
// ErrTypeMismatch since it is a programming error.
//
// # Errors
//
// If any field fails, Sanitize returns an *InvalidRequestError holding one
// FieldError per failed field, in input order, and no Collection. Errors that
// are not validator failures propagate immediately, wrapped.
//
// # String cleaners
//
// Trim, TrimToLower, SingleLine, RemoveControlChars and NormalizeEmail are
// small helpers meant to run before a rule (see validator.Pre). Apply and
// Compose chain them.
//
// The package holds no state; a single call may be issued from any number of
// goroutines concurrently.
package sanitizer
