package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule converts one raw input string into a typed value.
// The raw string is never absent: presence is decided by the caller before the rule runs.
// A rule returns a *Failure for invalid input; any other error is an unexpected fault.
type Rule[T any] func(ctx context.Context, raw string) (T, error)

// Check is a constraint applied to an already converted value.
type Check[T any] func(ctx context.Context, v T) error

// Failure is an expected, per-field validation failure.
// Code is a stable message identifier; Args are interpolated by the translation layer.
type Failure struct {
	Code string
	Args []any
}

// Fail builds a Failure for the given message code and arguments.
func Fail(code string, args ...any) *Failure {
	return &Failure{Code: code, Args: args}
}

func (f *Failure) Error() string {
	if len(f.Args) == 0 {
		return f.Code
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = fmt.Sprint(a)
	}
	return f.Code + " [" + strings.Join(parts, ", ") + "]"
}

// Is reports any Failure as ErrValidationFailed so callers can match the category.
func (f *Failure) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsFailure extracts a Failure from err.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFailure reports whether err carries a validation Failure.
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}

// Chain runs rule and then every check in order, stopping at the first error.
func Chain[T any](rule Rule[T], checks ...Check[T]) Rule[T] {
	return func(ctx context.Context, raw string) (T, error) {
		v, err := rule(ctx, raw)
		if err != nil {
			return v, err
		}
		for _, check := range checks {
			if err := check(ctx, v); err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
}

// Map converts the output of rule with fn. Lookups that resolve ids into entities
// are expressed this way.
func Map[T, U any](rule Rule[T], fn func(ctx context.Context, v T) (U, error)) Rule[U] {
	return func(ctx context.Context, raw string) (U, error) {
		v, err := rule(ctx, raw)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(ctx, v)
	}
}

// Pre cleans the raw string with transforms before handing it to rule.
func Pre[T any](rule Rule[T], transforms ...func(string) string) Rule[T] {
	return func(ctx context.Context, raw string) (T, error) {
		for _, tr := range transforms {
			raw = tr(raw)
		}
		return rule(ctx, raw)
	}
}
