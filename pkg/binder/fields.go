package binder

import "sort"

// Fields holds raw request inputs by name. A nil entry and a missing key both
// mean the input was absent; an empty string is a present, empty input.
type Fields map[string]*string

// Get returns the raw value of name, nil when absent.
func (f Fields) Get(name string) *string {
	if f == nil {
		return nil
	}
	return f[name]
}

// Has reports whether name was supplied with a non-null value.
func (f Fields) Has(name string) bool {
	return f.Get(name) != nil
}

// Names returns the supplied field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
