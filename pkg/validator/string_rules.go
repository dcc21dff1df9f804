package validator

import (
	"context"
	"strings"
	"unicode/utf8"
)

// String accepts any raw value as-is.
func String(_ context.Context, raw string) (string, error) {
	return raw, nil
}

// NotEmpty trims surrounding whitespace and rejects blank input.
func NotEmpty(_ context.Context, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", Fail(CodeEmpty, raw)
	}
	return v, nil
}

// MaxLength limits the number of characters (runes), not bytes.
func MaxLength(n int) Check[string] {
	return func(_ context.Context, v string) error {
		if utf8.RuneCountInString(v) > n {
			return Fail(CodeTooLong, v, n)
		}
		return nil
	}
}

// MaxBytes limits the encoded size in bytes. Args are the actual size and n;
// the value itself is left out since it is typically a secret.
func MaxBytes(n int) Check[string] {
	return func(_ context.Context, v string) error {
		if len(v) > n {
			return Fail(CodeTooManyBytes, len(v), n)
		}
		return nil
	}
}

// MinLength requires at least n characters (runes).
func MinLength(n int) Check[string] {
	return func(_ context.Context, v string) error {
		if utf8.RuneCountInString(v) < n {
			return Fail(CodeTooShort, v, n)
		}
		return nil
	}
}
