package backend

import (
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// goGenerator emits brace-structured Go. Constructs without a direct Go
// equivalent come out as readable approximations rather than compiling
// code; the header marks every file as generated.
type goGenerator struct{}

func (goGenerator) TargetLanguage() uir.Language { return uir.LangGo }

func (g goGenerator) Generate(root *uir.Node) (string, error) {
	if root == nil {
		return "", &GenerationError{Message: "nil tree"}
	}

	imports, err := collectImports(root)
	if err != nil {
		return "", err
	}

	e := newEmitter("\t")
	e.line("// Code generated by coalesce from " + sourceName(root) + " source. DO NOT EDIT.")
	e.blank()
	e.line("package main")

	if len(imports) > 0 {
		e.blank()

		for _, imp := range imports {
			e.line(imp)
		}
	}

	if root.Type.Kind != uir.KindModule {
		e.blank()
		g.emitNode(e, root)

		return e.String(), nil
	}

	g.emitModule(e, root)

	return e.String(), nil
}

func (g goGenerator) emitModule(e *emitter, root *uir.Node) {
	if fallback, ok := root.Metadata.StringAnnotation(uir.AnnotationFallbackImplementation); ok {
		e.blank()
		commentLines(e, fallback, "//")
	}

	if code, ok := root.Metadata.StringAnnotation(uir.AnnotationGeneratedCode); ok {
		e.blank()
		emitSnippet(e, root, code)
	}

	for _, child := range contentNodes(root.Children) {
		e.blank()
		g.emitNode(e, child)
	}
}

func (g goGenerator) emitNode(e *emitter, n *uir.Node) {
	if n == nil {
		return
	}

	if fallback, ok := n.Metadata.StringAnnotation(uir.AnnotationFallbackImplementation); ok {
		commentLines(e, fallback, "//")
	}

	if code, ok := n.Metadata.StringAnnotation(uir.AnnotationGeneratedCode); ok {
		emitSnippet(e, n, code)

		return
	}

	switch n.Type.Kind {
	case uir.KindModule:
		g.emitBody(e, n.Children)
	case uir.KindFunction:
		g.emitFunction(e, n)
	case uir.KindClass:
		g.emitClass(e, n)
	case uir.KindInterface:
		e.line("type " + typeName(n) + " interface{}")
	case uir.KindVariable, uir.KindConstant:
		e.line(goBinding(n))
	case uir.KindControlFlow:
		g.emitFlow(e, n)
	case uir.KindStatement:
		g.emitStatement(e, n)
	default:
		if containerish(n) {
			g.emitBody(e, n.Children)

			return
		}

		if text := renderExpr(n); text != "" {
			e.line(text)
		}
	}
}

func (g goGenerator) emitBody(e *emitter, children []*uir.Node) {
	for _, child := range flattenContainers(children) {
		g.emitNode(e, child)
	}
}

func (g goGenerator) indentedBody(e *emitter, body []*uir.Node) {
	e.in()
	g.emitBody(e, body)
	e.out()
}

func (g goGenerator) emitFunction(e *emitter, n *uir.Node) {
	params, body := functionParts(n)

	sig := "func " + funcName(n) + "(" + goParams(params) + ")"
	if e.depth > 0 {
		// nested functions become assigned closures
		sig = funcName(n) + " := func(" + goParams(params) + ")"
	}

	if returnsValue(n) {
		sig += " any"
	}

	e.line(sig + " {")
	g.indentedBody(e, body)
	e.line("}")
}

// emitClass renders a class as an empty struct with its methods hoisted to
// plain functions. Fields are dropped; the struct line keeps the name
// visible in the output.
func (g goGenerator) emitClass(e *emitter, n *uir.Node) {
	e.line("type " + typeName(n) + " struct{}")

	for _, member := range contentNodes(n.Children) {
		if member.Type.Kind != uir.KindFunction {
			continue
		}

		e.blank()
		g.emitFunction(e, member)
	}
}

func (g goGenerator) emitFlow(e *emitter, n *uir.Node) {
	heads, body := headBody(n.Children)

	switch n.Type.Flow {
	case uir.FlowConditional:
		g.emitIf(e, heads, body)
	case uir.FlowLoop:
		e.line(loopHeader(n.Type.Loop, heads))
		g.indentedBody(e, body)
		e.line("}")
	case uir.FlowSwitch:
		header := "switch {"
		if head := firstHead(heads, ""); head != "" {
			header = "switch " + head + " {"
		}

		e.line(header)
		g.emitBody(e, body)
		e.line("}")
	case uir.FlowTry:
		// no equivalent construct; inline the guarded bodies
		g.emitBody(e, n.Children)
	case uir.FlowGoto:
		if text := renderExpr(n); text != "" {
			e.line(text)
		}
	default:
	}
}

func (g goGenerator) emitIf(e *emitter, heads []string, body []*uir.Node) {
	e.line("if " + firstHead(heads, "true") + " {")

	if len(body) == 0 {
		e.line("}")

		return
	}

	g.indentedBody(e, body[:1])

	if len(body) > 1 {
		e.line("} else {")
		g.indentedBody(e, body[1:])
	}

	e.line("}")
}

func loopHeader(kind uir.LoopKind, heads []string) string {
	switch kind {
	case uir.LoopForEach:
		switch {
		case len(heads) >= 2:
			return "for _, " + heads[0] + " := range " + heads[1] + " {"
		case len(heads) == 1:
			return "for range " + parenStrip(heads[0]) + " {"
		default:
			return "for {"
		}
	case uir.LoopWhile, uir.LoopDoWhile:
		cond := firstHead(heads, "")
		if cond == "" || cond == "true" {
			return "for {"
		}

		return "for " + cond + " {"
	default:
		if len(heads) > 0 {
			return "for " + strings.Join(heads, "; ") + " {"
		}

		return "for {"
	}
}

func (g goGenerator) emitStatement(e *emitter, n *uir.Node) {
	switch n.Type.Stmt {
	case uir.StmtReturn:
		if expr := firstExpr(n); expr != "" {
			e.line("return " + expr)
		} else {
			e.line("return")
		}
	case uir.StmtBreak:
		e.line("break")
	case uir.StmtContinue:
		e.line("continue")
	case uir.StmtThrow:
		expr := firstExpr(n)
		if expr == "" {
			expr = `"error"`
		}

		e.line("panic(" + expr + ")")
	default:
		if len(n.Children) > 0 {
			g.emitBody(e, n.Children)

			return
		}

		if text := renderExpr(n); text != "" {
			e.line(text)
		}
	}
}

func goBinding(n *uir.Node) string {
	text := renderExpr(n)
	if strings.HasPrefix(text, "var ") || strings.HasPrefix(text, "const ") {
		return text
	}

	text = strings.TrimPrefix(text, "let ")

	if strings.Contains(text, "=") {
		keyword := "var"
		if n.Type.Kind == uir.KindConstant {
			keyword = "const"
		}

		return keyword + " " + text
	}

	name := n.Name
	if name == "" {
		name = text
	}

	if name == "" {
		name = "_"
	}

	return "var " + name + " any"
}

func goParams(params []string) string {
	if len(params) == 0 {
		return ""
	}

	return strings.Join(params, ", ") + " any"
}
