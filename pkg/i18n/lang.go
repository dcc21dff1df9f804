package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header parsed for negotiation.
const maxAcceptLanguageLength = 4096

// Match negotiates an Accept-Language header value against the loaded
// languages and returns the supported code, or the default language.
// Quality values, regional variants ("es-MX" → "es") and wildcards are
// handled by golang.org/x/text/language.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" || len(t.languages) == 0 {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(t.languages) {
		return t.defaultLang
	}
	return t.languages[idx]
}

// Locale resolves the request language from its Accept-Language header.
// It satisfies LangExtractor.
func (t *Translator) Locale(r *http.Request) string {
	return t.Match(r.Header.Get("Accept-Language"))
}
