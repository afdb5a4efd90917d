// Package spec provides the embedded UIR JSON schema.
package spec

import "embed"

// UIRSchemaFS contains the embedded UIR JSON schema.
//
//go:embed uir-schema.json
var UIRSchemaFS embed.FS
