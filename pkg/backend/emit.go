package backend

import (
	"encoding/json"
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// emitter accumulates output lines at a tracked indentation depth.
type emitter struct {
	sb     strings.Builder
	indent string
	depth  int
}

func newEmitter(indent string) *emitter {
	return &emitter{indent: indent}
}

// line writes text at the current depth followed by a newline. Empty text
// produces a bare newline with no trailing indentation.
func (e *emitter) line(text string) {
	if text == "" {
		e.sb.WriteByte('\n')

		return
	}

	for range e.depth {
		e.sb.WriteString(e.indent)
	}

	e.sb.WriteString(text)
	e.sb.WriteByte('\n')
}

func (e *emitter) blank() { e.sb.WriteByte('\n') }

func (e *emitter) in()  { e.depth++ }
func (e *emitter) out() { e.depth-- }

// len reports how much output has been written so far. Callers use it to
// detect empty bodies that need a placeholder statement.
func (e *emitter) len() int { return e.sb.Len() }

func (e *emitter) String() string { return e.sb.String() }

// collectImports walks the tree and gathers every required_imports
// annotation into one deduplicated list, preserving first-seen order.
func collectImports(root *uir.Node) ([]string, error) {
	var (
		imports []string
		badNode string
		badErr  error
	)

	seen := map[string]bool{}

	root.VisitPreOrder(func(n *uir.Node) {
		if badErr != nil {
			return
		}

		raw, ok := n.Metadata.StringAnnotation(uir.AnnotationRequiredImports)
		if !ok {
			return
		}

		var lines []string
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			badNode, badErr = n.ID, err

			return
		}

		for _, line := range lines {
			if seen[line] {
				continue
			}

			seen[line] = true

			imports = append(imports, line)
		}
	})

	if badErr != nil {
		return nil, &GenerationError{
			Message: "malformed required_imports annotation on node " + badNode,
			Err:     badErr,
		}
	}

	return imports, nil
}

// renderExpr turns a node into expression text. The original source text is
// the preferred rendering (minus any trailing statement terminator); the
// node name and the joined child renderings are the fallbacks for nodes
// whose text was too long to keep.
func renderExpr(n *uir.Node) string {
	if n == nil {
		return ""
	}

	if text, ok := n.Metadata.StringAnnotation(uir.AnnotationOriginalText); ok {
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
		if text != "" {
			return text
		}
	}

	if n.Name != "" {
		return n.Name
	}

	parts := make([]string, 0, len(n.Children))

	for _, child := range n.Children {
		if part := renderExpr(child); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}

// firstExpr renders the first child that produces any text. Used for
// statements like return and raise whose own text would repeat the keyword.
func firstExpr(n *uir.Node) string {
	for _, child := range n.Children {
		if text := renderExpr(child); text != "" {
			return text
		}
	}

	return ""
}

// parenStrip removes one pair of enclosing parentheses when they span the
// whole expression, so `(a > b)` becomes a usable condition.
func parenStrip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}

	depth := 0

	for i := range len(s) - 1 {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}

		if depth == 0 {
			return s
		}
	}

	return strings.TrimSpace(s[1 : len(s)-1])
}

// containerish reports whether a node is an unnamed structural wrapper
// (a block, clause or list the grammar produced) whose children should be
// emitted in its place. Front ends classify such nodes as literal
// expressions or expression statements with children and no name.
func containerish(n *uir.Node) bool {
	if n == nil || len(n.Children) == 0 || n.Name != "" {
		return false
	}

	switch n.Type.Kind {
	case uir.KindExpression:
		return n.Type.Expr == uir.ExprLiteral
	case uir.KindStatement:
		return n.Type.Stmt == uir.StmtExpression
	default:
		return false
	}
}

// flattenContainers unwraps structural wrappers recursively, returning the
// nodes that actually carry content.
func flattenContainers(children []*uir.Node) []*uir.Node {
	var flat []*uir.Node

	for _, child := range children {
		if containerish(child) {
			flat = append(flat, flattenContainers(child.Children)...)

			continue
		}

		flat = append(flat, child)
	}

	return flat
}

// functionParts splits a function node's children into parameter names and
// body nodes. Parameters appear either as hoisted leaf variables, as
// variables one level down inside a C-style declarator or parameter list,
// or not at all. Bare type and identifier tokens from declarator grammars
// carry no statement content and are dropped.
func functionParts(n *uir.Node) ([]string, []*uir.Node) {
	var (
		params []string
		body   []*uir.Node
	)

	for _, child := range n.Children {
		switch {
		case child.Type.Kind == uir.KindVariable && len(child.Children) == 0:
			if child.Name != "" {
				params = append(params, child.Name)
			}
		case child.Type.Kind == uir.KindFunction && (child.Name == "" || child.Name == n.Name):
			params = append(params, nestedParams(child)...)
		case containerish(child) && variablesOnly(child.Children):
			params = append(params, nestedParams(child)...)
		case child.Type.Kind == uir.KindExpression && len(child.Children) == 0 && bareToken(renderExpr(child)):
			// type token or stray identifier, not a statement
		default:
			body = append(body, child)
		}
	}

	return params, body
}

func nestedParams(n *uir.Node) []string {
	var params []string

	for _, child := range n.Children {
		if child.Type.Kind == uir.KindVariable && child.Name != "" {
			params = append(params, child.Name)
		}
	}

	return params
}

func variablesOnly(children []*uir.Node) bool {
	if len(children) == 0 {
		return false
	}

	for _, child := range children {
		if child.Type.Kind != uir.KindVariable {
			return false
		}
	}

	return true
}

func bareToken(s string) bool {
	return s == "" || !strings.ContainsAny(s, " (")
}

// headBody splits a control-flow node's children into header expressions
// (conditions, loop variables) and body nodes. The header is the leading
// run of non-container expression children.
func headBody(children []*uir.Node) ([]string, []*uir.Node) {
	split := len(children)

	for i, child := range children {
		if child.Type.Kind != uir.KindExpression || containerish(child) {
			split = i

			break
		}
	}

	heads := make([]string, 0, split)

	for _, child := range children[:split] {
		if text := renderExpr(child); text != "" {
			heads = append(heads, text)
		}
	}

	return heads, children[split:]
}

// firstHead returns the first header expression with enclosing parentheses
// stripped, or fallback when the header is empty.
func firstHead(heads []string, fallback string) string {
	if len(heads) == 0 {
		return fallback
	}

	return parenStrip(heads[0])
}

// commentLines writes text as a comment block with the given line marker,
// normalizing any markers already present in the text.
func commentLines(e *emitter, text, marker string) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "//"))
		if line == "" {
			e.line(marker)

			continue
		}

		e.line(marker + " " + line)
	}
}

// emitSnippet writes a node's transformed code verbatim, bracketed by its
// setup and cleanup snippets when present.
func emitSnippet(e *emitter, n *uir.Node, code string) {
	if setup, ok := n.Metadata.StringAnnotation(uir.AnnotationSetupCode); ok {
		emitLines(e, setup)
	}

	emitLines(e, code)

	if cleanup, ok := n.Metadata.StringAnnotation(uir.AnnotationCleanupCode); ok {
		emitLines(e, cleanup)
	}
}

func emitLines(e *emitter, text string) {
	for _, line := range strings.Split(text, "\n") {
		e.line(line)
	}
}

// returnsValue reports whether any return statement in the subtree carries
// an expression, which decides whether a generated Go function needs a
// result type.
func returnsValue(n *uir.Node) bool {
	found := n.Find(func(node *uir.Node) bool {
		return node.Type.Kind == uir.KindStatement &&
			node.Type.Stmt == uir.StmtReturn &&
			len(node.Children) > 0
	})

	return len(found) > 0
}

// contentNodes flattens structural wrappers and drops bare identifier and
// type tokens, leaving the nodes that produce statements.
func contentNodes(children []*uir.Node) []*uir.Node {
	var nodes []*uir.Node

	for _, child := range flattenContainers(children) {
		if child.Type.Kind == uir.KindExpression && len(child.Children) == 0 && bareToken(renderExpr(child)) {
			continue
		}

		nodes = append(nodes, child)
	}

	return nodes
}

func funcName(n *uir.Node) string {
	if n.Name != "" {
		return n.Name
	}

	return "anonymous"
}

func typeName(n *uir.Node) string {
	if n.Name != "" {
		return n.Name
	}

	return "Anonymous"
}

func sourceName(root *uir.Node) string {
	if root.Metadata.SourceLanguage == "" {
		return "unknown"
	}

	return string(root.Metadata.SourceLanguage)
}
