package frontend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/coalesce/pkg/safeconv"
	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Sentinel errors for the grammar engine.
var (
	errPoolType    = errors.New("parser pool returned unexpected type")
	errNoGrammar   = errors.New("grammar not available")
	errNoRootNode  = errors.New("no root node")
	errEmptySource = errors.New("empty source")
)

// errorKind is the kind tree-sitter assigns to error recovery nodes. The
// walker skips the bad subtree and keeps going with its siblings.
const errorKind = "ERROR"

// maxInternLen bounds per-parse string interning. Identifiers, keywords and
// operators repeat constantly; longer texts rarely do.
const maxInternLen = 32

// internerCapacity is the initial capacity of the per-parse interner.
const internerCapacity = 128

// originalTextLimit caps the node text recorded in the original_text
// annotation. Only texts shorter than this are kept.
const originalTextLimit = 100

// treeSitterParser drives one grammar through the shared walker. Safe for
// concurrent use: the only mutable state is the parser pool.
type treeSitterParser struct {
	language uir.Language
	table    *mappingTable
	pool     sync.Pool
}

// newTreeSitterParser wires a mapping table to its grammar.
func newTreeSitterParser(language uir.Language, table *mappingTable) (*treeSitterParser, error) {
	lang := grammar(table.grammar)
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", errNoGrammar, table.grammar)
	}

	parser := &treeSitterParser{language: language, table: table}
	parser.pool = sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang)

			return tsParser
		},
	}

	return parser, nil
}

// Language returns the source language this front end normalizes.
func (p *treeSitterParser) Language() uir.Language {
	return p.language
}

// Parse parses source into a UIR tree. Isolated syntax errors do not abort
// the parse: the walker drops the error subtrees and keeps the rest of the
// file. filename feeds source locations only and may be empty.
func (p *treeSitterParser) Parse(ctx context.Context, filename string, source []byte) (*uir.Node, error) {
	if len(source) == 0 {
		return nil, &uir.ParseError{Message: errEmptySource.Error(), Line: 1}
	}

	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer p.pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, source)
	if err != nil {
		return nil, &uir.ParseError{Message: err.Error(), Line: 1}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, &uir.ParseError{Message: errNoRootNode.Error(), Line: 1}
	}

	conv := &converter{
		source:   source,
		filename: filename,
		language: p.language,
		table:    p.table,
		interner: make(map[string]string, internerCapacity),
	}

	converted := conv.convert(root)
	if converted == nil {
		return nil, &uir.ParseError{Message: "unrecoverable syntax error", Line: 1}
	}

	return converted, nil
}

// converter holds per-parse state for one walk over a tree-sitter tree.
type converter struct {
	source   []byte
	filename string
	language uir.Language
	table    *mappingTable
	interner map[string]string
}

// convert maps one tree-sitter node (and its subtree) to UIR. Returns nil
// for error nodes; callers skip those and continue with siblings.
func (c *converter) convert(tsNode sitter.Node) *uir.Node {
	kind := tsNode.Type()
	if kind == errorKind {
		return nil
	}

	converted := c.newNode(tsNode, kind, c.table.classify(kind))

	mapped := c.table.rules[kind]
	switch mapped.Name {
	case nameDeclared:
		converted.Name = c.declaredName(tsNode)
	case nameText:
		converted.Name = c.nodeText(tsNode)
	case nameNone:
	}

	if mapped.Fixed != "" {
		converted.Name = mapped.Fixed
	}

	if converted.Type == uir.FlowOf(uir.FlowGoto) {
		converted.Metadata.AddLegacyPattern(uir.LegacyPattern{
			PatternType:       "goto",
			OriginalConstruct: c.nodeText(tsNode),
			ModernizationHint: "replace with structured control flow",
			PreserveExactly:   true,
		})
	}

	if shape, ok := c.table.functions[kind]; ok {
		c.convertFunction(converted, tsNode, shape)

		return converted
	}

	c.convertChildren(converted, tsNode)

	return converted
}

// convertChildren recurses into named children, skipping error subtrees.
// Anonymous tokens (punctuation, operators, keywords) never reach the UIR.
func (c *converter) convertChildren(parent *uir.Node, tsNode sitter.Node) {
	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)
		if child.IsNull() {
			continue
		}

		if converted := c.convert(child); converted != nil {
			parent.AddChild(converted)
		}
	}
}

// convertFunction hoists parameters and body statements directly under the
// function node: parameters first as Variable nodes, then the body block's
// statements, with the container kinds elided.
func (c *converter) convertFunction(fn *uir.Node, tsNode sitter.Node, shape functionShape) {
	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)
		if child.IsNull() || child.Type() == errorKind {
			continue
		}

		switch child.Type() {
		case shape.Params:
			c.convertParameters(fn, child)
		case shape.Body:
			c.convertChildren(fn, child)
		}
	}
}

func (c *converter) convertParameters(fn *uir.Node, params sitter.Node) {
	for idx := range params.NamedChildCount() {
		param := params.NamedChild(idx)
		if param.IsNull() || param.Type() == errorKind {
			continue
		}

		fn.AddChild(c.parameterNode(param))
	}
}

// parameterNode builds a Variable node for one formal parameter. Bare
// identifiers name themselves; structured parameters (typed, defaulted)
// resolve their declared name.
func (c *converter) parameterNode(param sitter.Node) *uir.Node {
	converted := c.newNode(param, param.Type(), uir.VariableType())

	if c.table.isIdentifier(param.Type()) {
		converted.Name = c.nodeText(param)
	} else {
		converted.Name = c.declaredName(param)
	}

	return converted
}

// newNode builds the UIR node shell shared by every conversion path:
// deterministic ID, classification, raw kind as semantic tag, source
// location, and the original_text annotation for short nodes.
func (c *converter) newNode(tsNode sitter.Node, kind string, nodeType uir.NodeType) *uir.Node {
	text := c.nodeText(tsNode)
	start := tsNode.StartPoint()

	converted := uir.New(uir.NodeID(kind, start.Row, start.Column, text), nodeType, c.language)
	converted.Metadata.SemanticTags = []string{kind}
	converted.Loc = c.location(tsNode)

	if text != "" && len(text) < originalTextLimit {
		converted.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)
	}

	return converted
}

// declaredName resolves a declaration's name: the grammar's "name" field
// first, then identifier-kind children, then the first identifier-kind
// descendant (C-style declarator nesting).
func (c *converter) declaredName(tsNode sitter.Node) string {
	if field := tsNode.ChildByFieldName("name"); !field.IsNull() {
		return c.nodeText(field)
	}

	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)
		if child.IsNull() {
			continue
		}

		if c.table.isIdentifier(child.Type()) {
			return c.nodeText(child)
		}
	}

	if desc := c.findIdentifierDescendant(tsNode); !desc.IsNull() {
		return c.nodeText(desc)
	}

	return ""
}

// findIdentifierDescendant returns the first identifier-kind node in
// pre-order below tsNode, or a null node.
func (c *converter) findIdentifierDescendant(tsNode sitter.Node) sitter.Node {
	for idx := range tsNode.NamedChildCount() {
		child := tsNode.NamedChild(idx)
		if child.IsNull() || child.Type() == errorKind {
			continue
		}

		if c.table.isIdentifier(child.Type()) {
			return child
		}

		if found := c.findIdentifierDescendant(child); !found.IsNull() {
			return found
		}
	}

	return sitter.Node{}
}

// nodeText extracts a node's source text. Short strings are interned within
// the current parse to deduplicate repeated identifiers and operators.
func (c *converter) nodeText(tsNode sitter.Node) string {
	start := tsNode.StartByte()
	end := tsNode.EndByte()

	if start >= end || safeconv.MustUintToInt(end) > len(c.source) {
		return ""
	}

	text := string(c.source[start:end])

	if len(text) <= maxInternLen && c.interner != nil {
		if interned, ok := c.interner[text]; ok {
			return interned
		}

		c.interner[text] = text
	}

	return text
}

// location converts tree-sitter points to a source location. Lines become
// 1-based; columns stay 0-based byte offsets.
func (c *converter) location(tsNode sitter.Node) *uir.SourceLocation {
	start := tsNode.StartPoint()
	end := tsNode.EndPoint()

	return &uir.SourceLocation{
		File:        c.filename,
		StartLine:   start.Row + 1,
		EndLine:     end.Row + 1,
		StartColumn: start.Column,
		EndColumn:   end.Column,
	}
}
