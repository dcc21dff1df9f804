package i18n

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser decodes one translation file. The outer map of the result is keyed
// by language, the inner one holds (possibly nested) messages.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, nil if unsupported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages checks that every top-level entry of a decoded catalog is a
// message tree and that at least one language is present.
func splitLanguages(doc map[string]any) (map[string]map[string]any, error) {
	if len(doc) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := make(map[string]map[string]any, len(doc))
	for lang, tree := range doc {
		messages, ok := tree.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T", ErrInvalidCatalog, lang, tree)
		}
		out[lang] = messages
	}
	return out, nil
}
