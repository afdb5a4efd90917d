package backend

import (
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// pythonGenerator emits indentation-structured Python.
type pythonGenerator struct{}

func (pythonGenerator) TargetLanguage() uir.Language { return uir.LangPython }

func (g pythonGenerator) Generate(root *uir.Node) (string, error) {
	if root == nil {
		return "", &GenerationError{Message: "nil tree"}
	}

	imports, err := collectImports(root)
	if err != nil {
		return "", err
	}

	e := newEmitter("    ")
	e.line("# Generated by coalesce from " + sourceName(root) + " source.")

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

func (g pythonGenerator) emitModule(e *emitter, root *uir.Node) {
	if fallback, ok := root.Metadata.StringAnnotation(uir.AnnotationFallbackImplementation); ok {
		e.blank()
		commentLines(e, fallback, "#")
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

func (g pythonGenerator) emitNode(e *emitter, n *uir.Node) {
	if n == nil {
		return
	}

	if fallback, ok := n.Metadata.StringAnnotation(uir.AnnotationFallbackImplementation); ok {
		commentLines(e, fallback, "#")
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
	case uir.KindClass, uir.KindInterface:
		g.emitClass(e, n)
	case uir.KindVariable, uir.KindConstant:
		e.line(pythonBinding(n))
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

func (g pythonGenerator) emitBody(e *emitter, children []*uir.Node) {
	for _, child := range flattenContainers(children) {
		g.emitNode(e, child)
	}
}

// indentedBody emits the given nodes one level deeper, inserting a pass
// placeholder when nothing gets written.
func (g pythonGenerator) indentedBody(e *emitter, body []*uir.Node) {
	e.in()

	mark := e.len()
	g.emitBody(e, body)

	if e.len() == mark {
		e.line("pass")
	}

	e.out()
}

func (g pythonGenerator) emitFunction(e *emitter, n *uir.Node) {
	params, body := functionParts(n)

	e.line("def " + funcName(n) + "(" + strings.Join(params, ", ") + "):")
	g.indentedBody(e, body)
}

func (g pythonGenerator) emitClass(e *emitter, n *uir.Node) {
	e.line("class " + typeName(n) + ":")
	g.indentedBody(e, contentNodes(n.Children))
}

func (g pythonGenerator) emitFlow(e *emitter, n *uir.Node) {
	heads, body := headBody(n.Children)

	switch n.Type.Flow {
	case uir.FlowConditional:
		g.emitIf(e, heads, body)
	case uir.FlowLoop:
		g.emitLoop(e, n.Type.Loop, heads, body)
	case uir.FlowSwitch:
		e.line("match " + firstHead(heads, "None") + ":")
		g.indentedBody(e, body)
	case uir.FlowTry:
		e.line("try:")
		g.indentedBody(e, n.Children)
		e.line("except Exception:")
		e.in()
		e.line("pass")
		e.out()
	case uir.FlowGoto:
		if text := renderExpr(n); text != "" {
			e.line("# " + text)
		}
	default:
	}
}

func (g pythonGenerator) emitIf(e *emitter, heads []string, body []*uir.Node) {
	e.line("if " + firstHead(heads, "True") + ":")

	if len(body) == 0 {
		g.indentedBody(e, nil)

		return
	}

	g.indentedBody(e, body[:1])

	if len(body) > 1 {
		e.line("else:")
		g.indentedBody(e, body[1:])
	}
}

func (g pythonGenerator) emitLoop(e *emitter, kind uir.LoopKind, heads []string, body []*uir.Node) {
	switch kind {
	case uir.LoopForEach:
		if len(heads) >= 2 {
			e.line("for " + heads[0] + " in " + heads[1] + ":")
		} else {
			e.line("for _ in " + firstHead(heads, "[]") + ":")
		}
	case uir.LoopWhile, uir.LoopDoWhile:
		e.line("while " + firstHead(heads, "True") + ":")
	default:
		// C-style for headers have no direct Python equivalent.
		e.line("while True:")
	}

	g.indentedBody(e, body)
}

func (g pythonGenerator) emitStatement(e *emitter, n *uir.Node) {
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
		if expr := firstExpr(n); expr != "" {
			e.line("raise " + expr)
		} else {
			e.line("raise")
		}
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

func pythonBinding(n *uir.Node) string {
	text := renderExpr(n)
	text = strings.TrimPrefix(text, "var ")
	text = strings.TrimPrefix(text, "let ")
	text = strings.TrimPrefix(text, "const ")

	if strings.Contains(text, "=") {
		return text
	}

	name := n.Name
	if name == "" {
		name = text
	}

	if name == "" {
		name = "_"
	}

	return name + " = None"
}
