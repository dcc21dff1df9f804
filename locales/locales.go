// Package locales embeds the translation catalogs shipped with the API.
package locales

import "embed"

// FS holds one YAML file per language at its root.
//
//go:embed *.yaml
var FS embed.FS
