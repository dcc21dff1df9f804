// Package i18n translates message codes into localized text and negotiates
// the request language.
//
// Translations are loaded once through a TranslationAdapter (an in-memory
// MapAdapter or an FSAdapter over embed.FS) and parsed from YAML or JSON.
// Message keys may be nested; "validation.is_empty" reads the is_empty entry
// of the validation section.
//
// Two rendering forms exist. T substitutes named placeholders from key, value
// pairs; Translate substitutes positional "%{0}", "%{1}" placeholders and is
// what the HTTP error boundary uses for validation and token failures:
//
//	translator, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//	    i18n.WithDefaultLanguage("en"),
//	)
//
//	lang := translator.Locale(r) // Accept-Language negotiation via x/text
//	msg := translator.Translate(lang, "validation.too_long", value, 200)
//
// A missing message falls back to the base language, then to the default
// language, then to the key itself (unless WithFallbackToKey(false)).
package i18n
