package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves message codes to localized text. Translations are loaded
// once at construction and never mutated, so a Translator is safe for
// concurrent use without locking.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	languages []string // default language first
	matcher   language.Matcher
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.languages, t.matcher = buildMatcher(t.defaultLang, translations)
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, values := range trans {
		if lang == "" {
			return fmt.Errorf("i18n: empty language code found")
		}
		if values == nil {
			return fmt.Errorf("i18n: nil translations map for language: %s", lang)
		}
	}
	return nil
}

// buildMatcher orders the languages with the default first, which makes it
// the matcher's fallback, and skips codes x/text cannot parse.
func buildMatcher(defaultLang string, trans map[string]map[string]any) ([]string, language.Matcher) {
	langs := []string{defaultLang}
	others := make([]string, 0, len(trans))
	for lang := range trans {
		if lang != defaultLang {
			others = append(others, lang)
		}
	}
	slices.Sort(others)
	langs = append(langs, others...)

	kept := make([]string, 0, len(langs))
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		kept = append(kept, lang)
		tags = append(tags, tag)
	}
	return kept, language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation checks if lang itself defines key, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	values, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = stringAt(values, key)
	return ok
}

// T translates key with named substitution: args are key, value pairs
// replacing "%{key}" placeholders.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.render(lang, key, params)
}

// Translate renders a message code with positional arguments replacing
// "%{0}", "%{1}" and so on. It is the form used for validation failures,
// whose arguments are ordered values rather than names.
//
//	// "validation.too_long": "must be at most %{1} characters"
//	translator.Translate("en", "validation.too_long", "abc…", 200)
func (t *Translator) Translate(lang, code string, args ...any) string {
	params := make(map[string]string, len(args))
	for i, arg := range args {
		params[strconv.Itoa(i)] = fmt.Sprint(arg)
	}
	return t.render(lang, code, params)
}

func (t *Translator) render(lang, key string, params map[string]string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, params)
}

// lookup tries the requested language, then its base language, then the default.
func (t *Translator) lookup(lang, key string) (string, bool) {
	candidates := []string{lang}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		candidates = append(candidates, base)
	}
	candidates = append(candidates, t.defaultLang)

	for _, l := range candidates {
		values, ok := t.translations[l]
		if !ok {
			continue
		}
		if s, ok := stringAt(values, key); ok {
			return s, true
		}
	}
	return "", false
}

// stringAt traverses a nested map using dot-separated keys, so
// "validation.is_empty" reads m["validation"]["is_empty"]. A flat key that
// contains dots is tried first.
func stringAt(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return asString(v)
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return asString(next)
		}
		switch nm := next.(type) {
		case map[string]any:
			current = nm
		case map[any]any:
			current = make(map[string]any, len(nm))
			for k, v := range nm {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return "", false
		}
	}
	return "", false
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders; unknown ones are kept verbatim.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
