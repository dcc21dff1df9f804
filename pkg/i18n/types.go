package i18n

import "net/http"

// LangExtractor resolves the language code of a request.
type LangExtractor func(r *http.Request) string
