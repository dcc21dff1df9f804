package sanitizer

import (
	"context"
	"fmt"
)

// Sanitize validates every spec in order and returns all results, or a single
// *InvalidRequestError listing every failed field. Fields are independent: a
// failure never prevents later fields from being evaluated.
//
// Rule errors that are not validation failures (a lookup collaborator being
// unreachable, for instance) abort the call and are returned wrapped with the
// field name; they are faults, not user errors.
//
// Output keys must be unique within one call; a duplicate key silently
// overwrites the earlier entry.
func Sanitize(ctx context.Context, specs ...Spec) (Collection, error) {
	if len(specs) == 0 {
		return Collection{}, ErrNoFields
	}

	out := newCollection(len(specs))
	var failures []FieldError

	for _, spec := range specs {
		v, failure, err := spec.resolve(ctx)
		if err != nil {
			return Collection{}, fmt.Errorf("sanitizer: field %q: %w", spec.Name(), err)
		}
		if failure != nil {
			failures = append(failures, FieldError{
				Field:  spec.Name(),
				Origin: spec.Origin(),
				Code:   failure.Code,
				Args:   failure.Args,
			})
			continue
		}
		out.values[spec.Key()] = v
	}

	if len(failures) > 0 {
		return Collection{}, &InvalidRequestError{Errors: failures}
	}
	return out, nil
}

// SanitizeOne validates a single spec with the same error contract as Sanitize:
// a failure is reported as an *InvalidRequestError with one entry.
func SanitizeOne(ctx context.Context, spec Spec) (Value, error) {
	c, err := Sanitize(ctx, spec)
	if err != nil {
		return Value{}, err
	}
	return c.Value(spec.Key()), nil
}

// One is the typed form of SanitizeOne.
func One[T any](ctx context.Context, f Field[T]) (T, error) {
	v, err := SanitizeOne(ctx, f)
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](v), nil
}
