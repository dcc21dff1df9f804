package validator

import (
	"context"
	"strconv"
	"strings"
)

// Int parses a base-10 signed integer.
func Int(_ context.Context, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, Fail(CodeInteger, raw)
	}
	return v, nil
}

// Positive rejects zero and negative values.
func Positive[T Numeric](_ context.Context, v T) error {
	if v <= 0 {
		return Fail(CodePositive, v)
	}
	return nil
}

// Between requires lo <= v <= hi.
func Between[T Numeric](lo, hi T) Check[T] {
	return func(_ context.Context, v T) error {
		if v < lo || v > hi {
			return Fail(CodeOutOfRange, v, lo, hi)
		}
		return nil
	}
}
