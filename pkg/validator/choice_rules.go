package validator

import (
	"context"
	"strings"
)

// Bool accepts "true" or "false" in any letter case.
// Numeric and single-letter forms are rejected on purpose: query strings
// like ?completed=1 are ambiguous across clients.
func Bool(_ context.Context, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, Fail(CodeBoolean, raw)
}

// OneOf parses an enumerated value. Matching is case-insensitive and the
// canonical spelling from values is returned.
func OneOf[T ~string](values ...T) Rule[T] {
	allowed := make([]string, len(values))
	for i, v := range values {
		allowed[i] = string(v)
	}
	list := strings.Join(allowed, ", ")

	return func(_ context.Context, raw string) (T, error) {
		needle := strings.TrimSpace(raw)
		for _, v := range values {
			if strings.EqualFold(string(v), needle) {
				return v, nil
			}
		}
		var zero T
		return zero, Fail(CodeEnum, raw, list)
	}
}
