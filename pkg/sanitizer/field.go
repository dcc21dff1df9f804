package sanitizer

import (
	"context"

	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// Origin tells where a raw input came from. It is reported back to clients
// with each field error.
type Origin uint8

const (
	OriginBody Origin = iota
	OriginHeader
	OriginQuery
	OriginPath
)

func (o Origin) String() string {
	switch o {
	case OriginBody:
		return "body"
	case OriginHeader:
		return "header"
	case OriginQuery:
		return "query"
	case OriginPath:
		return "path"
	default:
		return "unknown"
	}
}

// Spec is one input description accepted by Sanitize. Field is the only implementation.
type Spec interface {
	Name() string
	Origin() Origin
	Key() string
	IsRequired() bool

	resolve(ctx context.Context) (Value, *validator.Failure, error)
}

// Field describes a single raw input: its logical name, origin, raw value and
// the rule converting it. A nil raw means the input was absent.
// Field is an immutable value; builder methods return modified copies.
type Field[T any] struct {
	name      string
	outputKey string
	origin    Origin
	required  bool
	raw       *string
	rule      validator.Rule[T]
}

// NewField builds an optional field. Prefer Body, Header, Query or Path.
func NewField[T any](origin Origin, name string, raw *string, rule validator.Rule[T]) Field[T] {
	return Field[T]{
		name:   name,
		origin: origin,
		raw:    raw,
		rule:   rule,
	}
}

// Body describes a JSON body field.
func Body[T any](name string, raw *string, rule validator.Rule[T]) Field[T] {
	return NewField(OriginBody, name, raw, rule)
}

// Header describes an HTTP header.
func Header[T any](name string, raw *string, rule validator.Rule[T]) Field[T] {
	return NewField(OriginHeader, name, raw, rule)
}

// Query describes a query-string parameter.
func Query[T any](name string, raw *string, rule validator.Rule[T]) Field[T] {
	return NewField(OriginQuery, name, raw, rule)
}

// Path describes a route parameter.
func Path[T any](name string, raw *string, rule validator.Rule[T]) Field[T] {
	return NewField(OriginPath, name, raw, rule)
}

// Required marks the field as mandatory: an absent raw value becomes a
// CodeRequired failure and the rule is not invoked.
func (f Field[T]) Required() Field[T] {
	f.required = true
	return f
}

// As stores the result under key instead of the field name.
// Errors still report the logical name.
func (f Field[T]) As(key string) Field[T] {
	f.outputKey = key
	return f
}

func (f Field[T]) Name() string     { return f.name }
func (f Field[T]) Origin() Origin   { return f.origin }
func (f Field[T]) IsRequired() bool { return f.required }

// Key returns the effective output key.
func (f Field[T]) Key() string {
	if f.outputKey != "" {
		return f.outputKey
	}
	return f.name
}

func (f Field[T]) resolve(ctx context.Context) (Value, *validator.Failure, error) {
	if f.raw == nil {
		if f.required {
			return Value{}, validator.Fail(validator.CodeRequired, f.name), nil
		}
		return Value{}, nil, nil
	}

	v, err := f.rule(ctx, *f.raw)
	if err != nil {
		if failure, ok := validator.AsFailure(err); ok {
			return Value{}, failure, nil
		}
		return Value{}, nil, err
	}
	return newValue(v), nil, nil
}

// Ptr returns a pointer to s, for building fields from plain strings.
func Ptr(s string) *string {
	return &s
}
