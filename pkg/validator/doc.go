// Package validator is the rule catalog used by the request sanitizer.
//
// A Rule converts one raw input string into a typed value:
//
//	type Rule[T any] func(ctx context.Context, raw string) (T, error)
//
// Rules are pure with respect to request data. On bad input they return a
// *Failure carrying a stable message code (e.g. "validation.is_uuid") and the
// offending raw value(s) as interpolation arguments; localisation happens at
// the HTTP boundary, never here. Any other returned error is treated as an
// unexpected fault and aborts the whole sanitize call.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `uuid_rules.go`, `date_rules.go`, `lookup_rules.go`, ...). Post-conversion
// constraints are expressed as Check values and attached with Chain; Map turns
// a converted value into another type, which is how id lists become entities:
//
//	tags := validator.Map(validator.UUIDList, validator.ResolveAll(repo.FindAllByID, tagID))
//	due := validator.Chain(validator.DateTime, validator.PresentOrFuture(time.Now))
//	limit := validator.Chain(validator.Int, validator.Positive[int64])
//
// URL and Email are backed by github.com/go-playground/validator/v10 tag
// expressions; Tag exposes the same adapter for other tags.
//
// # Error Handling
//
// Use AsFailure to extract the code and arguments, or errors.Is with
// ErrValidationFailed to detect the category.
//
// There is no hidden mutable state; all rules are safe for concurrent use.
package validator
