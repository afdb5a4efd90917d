package frontend

import (
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// nameRule tells the walker where a node's name comes from.
type nameRule uint8

const (
	// nameNone leaves the node unnamed.
	nameNone nameRule = iota
	// nameDeclared resolves the "name" field, then identifier-kind children,
	// then the first identifier-kind descendant.
	nameDeclared
	// nameText uses the node's own source text.
	nameText
)

// rule classifies one grammar kind.
type rule struct {
	Type  uir.NodeType
	Name  nameRule
	Fixed string // literal name, when the table dictates one
}

// functionShape directs parameter and body hoisting for function-like kinds:
// parameters are lifted out of the params container as Variable nodes, then
// the body block's statements follow as siblings, so the wrapper kinds never
// appear in the tree.
type functionShape struct {
	Params string
	Body   string
}

// mappingTable is the declarative description of one tree-sitter front end.
// One shared walker executes it; the per-language files only supply data.
type mappingTable struct {
	grammar     string
	rules       map[string]rule
	identifiers map[string]struct{}
	functions   map[string]functionShape
}

// classify resolves a grammar kind to a node type. Unmapped kinds degrade by
// substring: statement-ish kinds become expression statements, expression-ish
// kinds become variable references, and everything else a literal, so the
// mapping is total over arbitrary grammars.
func (t *mappingTable) classify(kind string) uir.NodeType {
	if mapped, ok := t.rules[kind]; ok {
		return mapped.Type
	}

	switch {
	case strings.Contains(kind, "statement"):
		return uir.StatementOf(uir.StmtExpression)
	case strings.Contains(kind, "expression"):
		return uir.ExpressionOf(uir.ExprVariable)
	default:
		return uir.ExpressionOf(uir.ExprLiteral)
	}
}

// isIdentifier reports whether kind can carry a declared name.
func (t *mappingTable) isIdentifier(kind string) bool {
	_, ok := t.identifiers[kind]

	return ok
}

func identifierSet(kinds ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}

	return set
}
