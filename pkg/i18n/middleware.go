package i18n

import "net/http"

// Middleware resolves the request language once with extr and stores it in
// the request context for the error boundary and handlers.
//
//	r.Use(i18n.Middleware(translator.Locale))
//
// An empty result falls back to DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}
