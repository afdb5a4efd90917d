package uir

import (
	"encoding/json"
	"fmt"
)

// Kind is the top-level discriminant of a NodeType.
type Kind uint8

// Top-level node kinds.
const (
	KindInvalid Kind = iota
	KindModule
	KindFunction
	KindClass
	KindInterface
	KindVariable
	KindConstant
	KindControlFlow
	KindExpression
	KindStatement
)

// ControlFlowKind refines KindControlFlow.
type ControlFlowKind uint8

// Control-flow subkinds.
const (
	FlowConditional ControlFlowKind = iota + 1
	FlowLoop
	FlowSwitch
	FlowTry
	FlowGoto
)

// LoopKind refines FlowLoop.
type LoopKind uint8

// Loop subkinds.
const (
	LoopFor LoopKind = iota + 1
	LoopWhile
	LoopDoWhile
	LoopForEach
)

// ExpressionKind refines KindExpression.
type ExpressionKind uint8

// Expression subkinds.
const (
	ExprLiteral ExpressionKind = iota + 1
	ExprVariable
	ExprFunctionCall
	ExprArithmetic
	ExprComparison
	ExprLogical
	ExprAssignment
)

// StatementKind refines KindStatement.
type StatementKind uint8

// Statement subkinds.
const (
	StmtExpression StatementKind = iota + 1
	StmtReturn
	StmtBreak
	StmtContinue
	StmtThrow
)

// NodeType is the closed tagged union classifying a UIR node. Simple kinds
// (Module, Function, Class, Interface, Variable, Constant) use only Kind;
// ControlFlow, Expression and Statement carry a subkind, and loops carry a
// LoopKind below that. The set is closed: values outside the constructors
// here do not round-trip through JSON.
type NodeType struct {
	Kind Kind
	Flow ControlFlowKind
	Loop LoopKind
	Expr ExpressionKind
	Stmt StatementKind
}

// ModuleType returns the Module node type.
func ModuleType() NodeType { return NodeType{Kind: KindModule} }

// FunctionType returns the Function node type.
func FunctionType() NodeType { return NodeType{Kind: KindFunction} }

// ClassType returns the Class node type.
func ClassType() NodeType { return NodeType{Kind: KindClass} }

// InterfaceType returns the Interface node type.
func InterfaceType() NodeType { return NodeType{Kind: KindInterface} }

// VariableType returns the Variable node type.
func VariableType() NodeType { return NodeType{Kind: KindVariable} }

// ConstantType returns the Constant node type.
func ConstantType() NodeType { return NodeType{Kind: KindConstant} }

// FlowOf returns a ControlFlow node type with the given subkind.
// Use LoopOf for loops.
func FlowOf(kind ControlFlowKind) NodeType {
	return NodeType{Kind: KindControlFlow, Flow: kind}
}

// LoopOf returns a ControlFlow(Loop(...)) node type.
func LoopOf(kind LoopKind) NodeType {
	return NodeType{Kind: KindControlFlow, Flow: FlowLoop, Loop: kind}
}

// ExpressionOf returns an Expression node type with the given subkind.
func ExpressionOf(kind ExpressionKind) NodeType {
	return NodeType{Kind: KindExpression, Expr: kind}
}

// StatementOf returns a Statement node type with the given subkind.
func StatementOf(kind StatementKind) NodeType {
	return NodeType{Kind: KindStatement, Stmt: kind}
}

// Valid reports whether the type is one of the closed set of constructable
// values.
func (t NodeType) Valid() bool {
	_, ok := nodeTypeNames[t]

	return ok
}

// flowNames maps control-flow subkinds to their canonical names.
var flowNames = map[ControlFlowKind]string{
	FlowConditional: "Conditional",
	FlowSwitch:      "Switch",
	FlowTry:         "Try",
	FlowGoto:        "Goto",
}

// loopNames maps loop subkinds to their canonical names.
var loopNames = map[LoopKind]string{
	LoopFor:     "For",
	LoopWhile:   "While",
	LoopDoWhile: "DoWhile",
	LoopForEach: "ForEach",
}

// exprNames maps expression subkinds to their canonical names.
var exprNames = map[ExpressionKind]string{
	ExprLiteral:      "Literal",
	ExprVariable:     "Variable",
	ExprFunctionCall: "FunctionCall",
	ExprArithmetic:   "Arithmetic",
	ExprComparison:   "Comparison",
	ExprLogical:      "Logical",
	ExprAssignment:   "Assignment",
}

// stmtNames maps statement subkinds to their canonical names.
var stmtNames = map[StatementKind]string{
	StmtExpression: "Expression",
	StmtReturn:     "Return",
	StmtBreak:      "Break",
	StmtContinue:   "Continue",
	StmtThrow:      "Throw",
}

// kindNames maps simple kinds to their canonical names.
var kindNames = map[Kind]string{
	KindModule:    "Module",
	KindFunction:  "Function",
	KindClass:     "Class",
	KindInterface: "Interface",
	KindVariable:  "Variable",
	KindConstant:  "Constant",
}

// nodeTypeNames holds the full canonical-name index, built once at init from
// the subkind tables. ParseNodeType and Valid consult it; String does not.
var nodeTypeNames = buildNodeTypeNames()

// nodeTypesByName is the inverse of nodeTypeNames.
var nodeTypesByName = func() map[string]NodeType {
	inverse := make(map[string]NodeType, len(nodeTypeNames))
	for nodeType, name := range nodeTypeNames {
		inverse[name] = nodeType
	}

	return inverse
}()

func buildNodeTypeNames() map[NodeType]string {
	names := make(map[NodeType]string)

	for kind, name := range kindNames {
		names[NodeType{Kind: kind}] = name
	}

	for flow, name := range flowNames {
		names[FlowOf(flow)] = "ControlFlow(" + name + ")"
	}

	for loop, name := range loopNames {
		names[LoopOf(loop)] = "ControlFlow(Loop(" + name + "))"
	}

	for expr, name := range exprNames {
		names[ExpressionOf(expr)] = "Expression(" + name + ")"
	}

	for stmt, name := range stmtNames {
		names[StatementOf(stmt)] = "Statement(" + name + ")"
	}

	return names
}

// String returns the canonical form, e.g. "Module", "ControlFlow(Loop(For))",
// "Expression(Arithmetic)", "Statement(Return)".
func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}

	return "Invalid"
}

// ParseNodeType parses the canonical form produced by String. The type set is
// closed; anything else is rejected.
func ParseNodeType(s string) (NodeType, error) {
	if nodeType, ok := nodeTypesByName[s]; ok {
		return nodeType, nil
	}

	return NodeType{}, fmt.Errorf("%w: %q", errUnknownNodeType, s)
}

// MarshalJSON encodes the type as its canonical string form.
func (t NodeType) MarshalJSON() ([]byte, error) {
	name, ok := nodeTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %+v", errUnknownNodeType, t)
	}

	return json.Marshal(name)
}

// UnmarshalJSON decodes the canonical string form.
func (t *NodeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("node type: %w", err)
	}

	parsed, err := ParseNodeType(name)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
