// Package data embeds the bundled restaurant datasets and catalog config.
package data

import "embed"

// ConfigPath is the catalog config inside FS
const ConfigPath = "catalog.yaml"

//go:embed catalog.yaml restaurants/*.json
var FS embed.FS
