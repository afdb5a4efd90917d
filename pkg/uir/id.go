package uir

import (
	"fmt"
	"strings"
)

// nodeIDPrefixLen is the number of leading source-text characters folded into
// a node ID.
const nodeIDPrefixLen = 15

// NodeID derives a node's identity from its grammar kind, 0-based start
// row and column, and source text. The text contributes its first 15
// characters with spaces replaced by underscores. The function is pure, so
// reparsing identical input reproduces identical IDs and serialized trees
// can be cached and diffed by ID.
func NodeID(kind string, row, col uint, text string) string {
	prefix := text
	runes := 0

	for idx := range text {
		if runes == nodeIDPrefixLen {
			prefix = text[:idx]

			break
		}

		runes++
	}

	return fmt.Sprintf("%s_%d_%d_%s",
		strings.ReplaceAll(kind, " ", "_"),
		row,
		col,
		strings.ReplaceAll(prefix, " ", "_"))
}
