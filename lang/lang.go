// Package lang bundles the default locale catalogues.
package lang

import "embed"

// FS holds one YAML catalogue per locale, named after the locale tag.
//
//go:embed *.yaml
var FS embed.FS

// Name is the directory name the bundled catalogues are registered under.
const Name = "builtin"
