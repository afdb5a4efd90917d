package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func jsNode(id string, nodeType uir.NodeType) *uir.Node {
	return uir.New(id, nodeType, uir.LangJavaScript)
}

func textNode(id string, nodeType uir.NodeType, text string) *uir.Node {
	n := jsNode(id, nodeType)
	n.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)

	return n
}

func moduleWith(children ...*uir.Node) *uir.Node {
	root := jsNode("module_0_0_", uir.ModuleType())
	for _, child := range children {
		root.AddChild(child)
	}

	return root
}

// addFunctionTree is the normalized form of
// `function add(a, b) { return a + b; }`: hoisted parameter variables
// followed by the flattened body.
func addFunctionTree() *uir.Node {
	fn := jsNode("function_declaration_0_0_", uir.FunctionType()).WithName("add")
	fn.AddChild(jsNode("identifier_0_9_a", uir.VariableType()).WithName("a"))
	fn.AddChild(jsNode("identifier_0_12_b", uir.VariableType()).WithName("b"))

	ret := jsNode("return_statement_0_17_", uir.StatementOf(uir.StmtReturn))
	ret.AddChild(textNode("binary_expression_0_24_", uir.ExpressionOf(uir.ExprArithmetic), "a + b"))
	fn.AddChild(ret)

	return moduleWith(fn)
}

func mustGenerator(t *testing.T, lang uir.Language) Generator {
	t.Helper()

	g, err := New(lang)
	require.NoError(t, err)

	return g
}

func TestNew_SupportedTargets(t *testing.T) {
	t.Parallel()

	python := mustGenerator(t, uir.LangPython)
	assert.Equal(t, uir.LangPython, python.TargetLanguage())

	golang := mustGenerator(t, uir.LangGo)
	assert.Equal(t, uir.LangGo, golang.TargetLanguage())
}

func TestNew_UnsupportedTarget(t *testing.T) {
	t.Parallel()

	_, err := New(uir.LangRust)
	require.Error(t, err)

	var unsupported *uir.UnsupportedLanguageError

	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, uir.LangRust, unsupported.Language)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []uir.Language{uir.LangGo, uir.LangPython}, Supported())
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, uir.LangPython)
	path := filepath.Join(t.TempDir(), "out.py")

	require.NoError(t, GenerateFile(g, addFunctionTree(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "def add(a, b):")
}

func TestGenerate_NilTree(t *testing.T) {
	t.Parallel()

	for _, lang := range Supported() {
		g := mustGenerator(t, lang)

		_, err := g.Generate(nil)
		require.Error(t, err)

		var generation *GenerationError

		assert.ErrorAs(t, err, &generation)
	}
}

func TestGenerate_MalformedImportsAnnotation(t *testing.T) {
	t.Parallel()

	call := textNode("call_expression_0_0_", uir.ExpressionOf(uir.ExprFunctionCall), "connect()")
	call.Metadata.SetStringAnnotation(uir.AnnotationRequiredImports, "not json")

	g := mustGenerator(t, uir.LangPython)

	_, err := g.Generate(moduleWith(call))
	require.Error(t, err)

	var generation *GenerationError

	require.ErrorAs(t, err, &generation)
	assert.Contains(t, generation.Message, "required_imports")
}

func TestParenStrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"(a > b)", "a > b"},
		{"( i < 10 )", "i < 10"},
		{"((x))", "(x)"},
		{"(a) && (b)", "(a) && (b)"},
		{"plain", "plain"},
		{"()", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parenStrip(tc.in), "input %q", tc.in)
	}
}

func TestRenderExpr_Fallbacks(t *testing.T) {
	t.Parallel()

	// original text wins and loses its statement terminator
	withText := textNode("a", uir.ExpressionOf(uir.ExprFunctionCall), "  log(x);  ")
	assert.Equal(t, "log(x)", renderExpr(withText))

	// no text falls back to the name
	named := jsNode("b", uir.ExpressionOf(uir.ExprVariable)).WithName("count")
	assert.Equal(t, "count", renderExpr(named))

	// no text or name joins the children
	parent := jsNode("c", uir.ExpressionOf(uir.ExprArithmetic))
	parent.AddChild(named)
	parent.AddChild(jsNode("d", uir.ExpressionOf(uir.ExprVariable)).WithName("step"))
	assert.Equal(t, "count step", renderExpr(parent))

	assert.Empty(t, renderExpr(nil))
}
