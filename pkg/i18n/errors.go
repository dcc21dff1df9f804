package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("i18n: adapter is nil")

	ErrEmptyCatalog   = errors.New("i18n: catalog has no languages")
	ErrInvalidCatalog = errors.New("i18n: catalog entry is not a message map")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Filesystem operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrFailedToReadFile             = errors.New("failed to read translation file")
	ErrFailedToParseFile            = errors.New("failed to parse translation file")
	ErrNoTranslationFiles           = errors.New("no translation files found")
)
