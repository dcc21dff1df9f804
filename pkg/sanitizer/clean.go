package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

// String cleaners run on raw input before a rule sees it, typically through
// validator.Pre or by the binder while extracting fields.

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dotRegex        = regexp.MustCompile(`\.+`)
)

// Apply creates functional composition pipeline for sanitization transformations.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose creates a reusable pipeline out of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims and lowercases.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SingleLine collapses every whitespace run, line breaks included, into one space.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except tab, CR and LF.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots in
// the local part. Input without exactly one "@" is returned trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}
