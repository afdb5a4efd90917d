package frontend

import (
	"testing"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func TestClassifyIsTotal(t *testing.T) {
	t.Parallel()

	table := &mappingTable{rules: map[string]rule{
		"class_declaration": {Type: uir.ClassType(), Name: nameDeclared},
	}}

	tests := []struct {
		kind string
		want uir.NodeType
	}{
		{"class_declaration", uir.ClassType()},
		{"labeled_statement", uir.StatementOf(uir.StmtExpression)},
		{"await_expression", uir.ExpressionOf(uir.ExprVariable)},
		{"heredoc_body", uir.ExpressionOf(uir.ExprLiteral)},
		{"", uir.ExpressionOf(uir.ExprLiteral)},
		// A kind matching both substrings classifies as a statement.
		{"expression_statement", uir.StatementOf(uir.StmtExpression)},
	}

	for _, tt := range tests {
		if got := table.classify(tt.kind); got != tt.want {
			t.Errorf("classify(%q) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestClassifyLanguageTables(t *testing.T) {
	t.Parallel()

	// Kinds no grammar table maps must still classify without panicking.
	for _, table := range []*mappingTable{
		javascriptTable, pythonTable, cTable, cppTable,
		csharpTable, rustTable, golangTable,
	} {
		got := table.classify("completely_unknown_kind")
		if got != uir.ExpressionOf(uir.ExprLiteral) {
			t.Errorf("%s: classify fallback = %s, want %s",
				table.grammar, got, uir.ExpressionOf(uir.ExprLiteral))
		}
	}
}
