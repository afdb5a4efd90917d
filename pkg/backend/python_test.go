package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func TestPythonGenerator_AddFunction(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(addFunctionTree())
	require.NoError(t, err)

	want := "# Generated by coalesce from javascript source.\n" +
		"\n" +
		"def add(a, b):\n" +
		"    return a + b\n"
	assert.Equal(t, want, out)
}

func TestPythonGenerator_EmptyFunctionBody(t *testing.T) {
	t.Parallel()

	fn := jsNode("function_declaration_0_0_", uir.FunctionType()).WithName("noop")

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(fn))
	require.NoError(t, err)
	assert.Contains(t, out, "def noop():\n    pass\n")
}

func TestPythonGenerator_IfElse(t *testing.T) {
	t.Parallel()

	cond := textNode("parenthesized_expression_1_6_", uir.ExpressionOf(uir.ExprLiteral), "(a > b)")

	thenRet := jsNode("return_statement_1_16_", uir.StatementOf(uir.StmtReturn))
	thenRet.AddChild(textNode("identifier_1_23_a", uir.ExpressionOf(uir.ExprVariable), "a"))

	elseRet := jsNode("return_statement_2_16_", uir.StatementOf(uir.StmtReturn))
	elseRet.AddChild(textNode("identifier_2_23_b", uir.ExpressionOf(uir.ExprVariable), "b"))

	flow := jsNode("if_statement_1_2_", uir.FlowOf(uir.FlowConditional))
	flow.AddChild(cond)
	flow.AddChild(thenRet)
	flow.AddChild(elseRet)

	fn := jsNode("function_declaration_0_0_", uir.FunctionType()).WithName("pick")
	fn.AddChild(jsNode("identifier_0_10_a", uir.VariableType()).WithName("a"))
	fn.AddChild(jsNode("identifier_0_13_b", uir.VariableType()).WithName("b"))
	fn.AddChild(flow)

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(fn))
	require.NoError(t, err)

	want := "def pick(a, b):\n" +
		"    if a > b:\n" +
		"        return a\n" +
		"    else:\n" +
		"        return b\n"
	assert.Contains(t, out, want)
}

func TestPythonGenerator_WhileLoop(t *testing.T) {
	t.Parallel()

	loop := jsNode("while_statement_0_0_", uir.LoopOf(uir.LoopWhile))
	loop.AddChild(textNode("parenthesized_expression_0_6_", uir.ExpressionOf(uir.ExprLiteral), "(i < 10)"))
	loop.AddChild(textNode("expression_statement_0_17_", uir.StatementOf(uir.StmtExpression), "i += 1;"))

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(loop))
	require.NoError(t, err)
	assert.Contains(t, out, "while i < 10:\n    i += 1\n")
}

func TestPythonGenerator_ForEachLoop(t *testing.T) {
	t.Parallel()

	loop := jsNode("for_in_statement_0_0_", uir.LoopOf(uir.LoopForEach))
	loop.AddChild(jsNode("identifier_0_5_item", uir.ExpressionOf(uir.ExprVariable)).WithName("item"))
	loop.AddChild(jsNode("identifier_0_13_items", uir.ExpressionOf(uir.ExprVariable)).WithName("items"))
	loop.AddChild(textNode("expression_statement_0_22_", uir.StatementOf(uir.StmtExpression), "total += item;"))

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(loop))
	require.NoError(t, err)
	assert.Contains(t, out, "for item in items:\n    total += item\n")
}

func TestPythonGenerator_LooseStatements(t *testing.T) {
	t.Parallel()

	throw := jsNode("throw_statement_2_0_", uir.StatementOf(uir.StmtThrow))
	throw.AddChild(textNode("call_expression_2_6_", uir.ExpressionOf(uir.ExprFunctionCall), "ValueError('bad')"))

	root := moduleWith(
		jsNode("break_statement_0_0_", uir.StatementOf(uir.StmtBreak)),
		jsNode("continue_statement_1_0_", uir.StatementOf(uir.StmtContinue)),
		throw,
	)

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(root)
	require.NoError(t, err)
	assert.Contains(t, out, "break\n")
	assert.Contains(t, out, "continue\n")
	assert.Contains(t, out, "raise ValueError('bad')\n")
}

func TestPythonGenerator_TransformedNode(t *testing.T) {
	t.Parallel()

	call := textNode("call_expression_1_4_", uir.ExpressionOf(uir.ExprFunctionCall),
		"const [count, setCount] = useState(0);")
	call.Metadata.SetStringAnnotation(uir.AnnotationGeneratedCode, "const count = ref(0)")
	call.Metadata.SetStringAnnotation(uir.AnnotationRequiredImports, `["import { ref } from 'vue'"]`)
	call.Metadata.SetStringAnnotation(uir.AnnotationSetupCode, "setup()")
	call.Metadata.SetStringAnnotation(uir.AnnotationCleanupCode, "cleanup()")

	fn := jsNode("function_declaration_0_0_", uir.FunctionType()).WithName("counter")
	fn.AddChild(call)

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(fn))
	require.NoError(t, err)

	// imports hoisted to the header, transformed code in place of the call
	assert.Contains(t, out, "import { ref } from 'vue'\n")
	assert.Contains(t, out, "    setup()\n    const count = ref(0)\n    cleanup()\n")
	assert.NotContains(t, out, "useState")
}

func TestPythonGenerator_FallbackComment(t *testing.T) {
	t.Parallel()

	call := textNode("call_expression_1_4_", uir.ExpressionOf(uir.ExprFunctionCall), "useState(0)")
	call.Metadata.SetStringAnnotation(uir.AnnotationFallbackImplementation,
		"// TODO: Implement equivalent of react:useState\n// Original behavior: Creates reactive state that triggers re-renders")

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(call))
	require.NoError(t, err)

	// comment block first, the untranslated call after it
	marker := strings.Index(out, "# TODO: Implement equivalent of react:useState")
	behavior := strings.Index(out, "# Original behavior: Creates reactive state that triggers re-renders")
	original := strings.Index(out, "useState(0)")

	require.GreaterOrEqual(t, marker, 0)
	require.GreaterOrEqual(t, behavior, 0)
	require.GreaterOrEqual(t, original, 0)
	assert.Less(t, marker, behavior)
	assert.Less(t, behavior, original)
}

func TestPythonGenerator_ClassWithMethod(t *testing.T) {
	t.Parallel()

	method := jsNode("method_definition_1_4_", uir.FunctionType()).WithName("increment")
	method.AddChild(textNode("expression_statement_1_16_", uir.StatementOf(uir.StmtExpression), "this.count += 1;"))

	class := jsNode("class_declaration_0_0_", uir.ClassType()).WithName("Counter")
	class.AddChild(jsNode("identifier_0_6_Counter", uir.ExpressionOf(uir.ExprVariable)).WithName("Counter"))
	class.AddChild(method)

	g := mustGenerator(t, uir.LangPython)

	out, err := g.Generate(moduleWith(class))
	require.NoError(t, err)
	assert.Contains(t, out, "class Counter:\n    def increment():\n        this.count += 1\n")
}
