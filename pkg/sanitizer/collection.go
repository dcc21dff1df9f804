package sanitizer

import (
	"maps"
	"slices"
)

// Collection maps each field's output key to its sanitized Value.
// It holds exactly one entry per field passed to Sanitize.
type Collection struct {
	values map[string]Value
}

func newCollection(size int) Collection {
	return Collection{values: make(map[string]Value, size)}
}

// Value returns the value stored under key; the zero Value when missing.
func (c Collection) Value(key string) Value {
	return c.values[key]
}

// Has reports whether key has an entry, present or absent.
func (c Collection) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of entries.
func (c Collection) Len() int {
	return len(c.values)
}

// Keys returns the output keys in sorted order.
func (c Collection) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// AnyFieldHasValue reports whether at least one entry carries a value.
// PATCH handlers use it to skip no-op updates.
func (c Collection) AnyFieldHasValue() bool {
	for _, v := range c.values {
		if v.IsPresent() {
			return true
		}
	}
	return false
}

// Get unwraps the value under key as T. See As for the panic contract.
func Get[T any](c Collection, key string) T {
	return As[T](c.Value(key))
}

// GetOr unwraps the value under key as T, or returns def when absent.
func GetOr[T any](c Collection, key string, def T) T {
	return OrDefault(c.Value(key), def)
}
