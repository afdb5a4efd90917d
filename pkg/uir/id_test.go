package uir

import "testing"

func TestNodeID(t *testing.T) {
	tests := []struct {
		name string
		kind string
		row  uint
		col  uint
		text string
		want string
	}{
		{
			name: "short text",
			kind: "identifier",
			row:  3,
			col:  7,
			text: "count",
			want: "identifier_3_7_count",
		},
		{
			name: "spaces replaced",
			kind: "binary expression",
			row:  0,
			col:  0,
			text: "a + b",
			want: "binary_expression_0_0_a_+_b",
		},
		{
			name: "long text truncated to fifteen",
			kind: "function_declaration",
			row:  1,
			col:  0,
			text: "function add(a, b) { return a + b; }",
			want: "function_declaration_1_0_function_add(a,",
		},
		{
			name: "empty text",
			kind: "program",
			row:  0,
			col:  0,
			text: "",
			want: "program_0_0_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeID(tt.kind, tt.row, tt.col, tt.text); got != tt.want {
				t.Errorf("NodeID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeIDDeterministic(t *testing.T) {
	first := NodeID("call_expression", 12, 4, "useState(0)")
	second := NodeID("call_expression", 12, 4, "useState(0)")

	if first != second {
		t.Errorf("NodeID not deterministic: %q vs %q", first, second)
	}
}

func TestNodeIDMultibyteText(t *testing.T) {
	// Truncation counts runes, not bytes, so multibyte identifiers keep
	// well-formed prefixes.
	id := NodeID("identifier", 0, 0, "日本語の変数名のとても長い例です")
	if id == "" {
		t.Fatal("empty id")
	}

	for _, r := range id {
		if r == '�' {
			t.Errorf("id contains replacement character: %q", id)
		}
	}
}
