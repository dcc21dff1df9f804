package validator

import (
	"context"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	tags     *playground.Validate
	tagsOnce sync.Once
)

// tagValidator returns the shared go-playground instance. It caches struct
// metadata internally and is safe for concurrent use.
func tagValidator() *playground.Validate {
	tagsOnce.Do(func() {
		tags = playground.New(playground.WithRequiredStructEnabled())
	})
	return tags
}

// Tag adapts a go-playground/validator tag expression (e.g. "url", "email",
// "hexcolor") into a string rule reporting code on mismatch.
func Tag(tag, code string) Rule[string] {
	return func(_ context.Context, raw string) (string, error) {
		v := strings.TrimSpace(raw)
		if err := tagValidator().Var(v, tag); err != nil {
			return "", Fail(code, raw)
		}
		return v, nil
	}
}

// URL accepts absolute http(s) URLs with a host.
var URL = Tag("required,http_url", CodeURL)

// Email accepts an RFC 5322 address in its trimmed form.
var Email = Tag("required,email", CodeEmail)
