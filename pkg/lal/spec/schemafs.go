// Package spec provides the embedded library pattern JSON schema.
package spec

import "embed"

// PatternSchemaFS contains the embedded library pattern JSON schema.
//
//go:embed pattern-schema.json
var PatternSchemaFS embed.FS
