package sanitizer

import (
	"fmt"
	"reflect"
)

// Value is the typed result of one sanitized field. Absence is a nil payload:
// an optional field without input produces the zero Value.
// Values are immutable and owned by the caller that received them.
type Value struct {
	v any
}

// newValue wraps a rule result. Typed nils (nil pointers, slices, maps,
// funcs, channels and interfaces) count as absent; empty non-nil values do not.
func newValue(v any) Value {
	if v == nil {
		return Value{}
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
	}
	return Value{v: v}
}

// IsPresent reports whether the field produced a value.
func (v Value) IsPresent() bool {
	return v.v != nil
}

// Raw returns the untyped payload, nil when absent.
func (v Value) Raw() any {
	return v.v
}

// As unwraps the payload as T. An absent value yields the zero T.
// A present value of another type is a programming error and panics with
// ErrTypeMismatch: rule output types are fixed at the call site.
func As[T any](v Value) T {
	if v.v == nil {
		var zero T
		return zero
	}
	t, ok := v.v.(T)
	if !ok {
		var zero T
		panic(fmt.Errorf("%w: have %T, want %T", ErrTypeMismatch, v.v, zero))
	}
	return t
}

// OrDefault returns the payload, or def when absent.
func OrDefault[T any](v Value, def T) T {
	if v.v == nil {
		return def
	}
	return As[T](v)
}

// IfPresent calls fn with the payload when present and reports whether it did.
// PATCH handlers use it to copy only supplied fields onto an entity.
func IfPresent[T any](v Value, fn func(T)) bool {
	if v.v == nil {
		return false
	}
	fn(As[T](v))
	return true
}
