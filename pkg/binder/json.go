package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSONFields reads a JSON object body into raw string fields.
//
// Scalars become their textual form: strings as-is with control characters
// removed, numbers verbatim, booleans as "true"/"false". null becomes an absent
// field. Arrays of scalars are joined with validator.ListSeparator so list rules
// accept both "a,b" and ["a","b"]. Any other value is kept as its raw JSON text
// and left to the field's rule to reject.
func JSONFields(r *http.Request) (Fields, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, DefaultMaxJSONSize)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw map[string]json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	fields := make(Fields, len(raw))
	for name, msg := range raw {
		v, err := textOf(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrFailedToParseJSON, name, err)
		}
		fields[name] = v
	}
	return fields, nil
}

func textOf(msg json.RawMessage) (*string, error) {
	var v any
	decoder := json.NewDecoder(bytes.NewReader(msg))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := scalarText(item)
			if !ok {
				return sanitizer.Ptr(string(msg)), nil
			}
			items = append(items, s)
		}
		return sanitizer.Ptr(strings.Join(items, validator.ListSeparator)), nil
	default:
		if s, ok := scalarText(t); ok {
			return &s, nil
		}
		return sanitizer.Ptr(string(msg)), nil
	}
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return sanitizer.RemoveControlChars(t), true
	case json.Number:
		return t.String(), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}
