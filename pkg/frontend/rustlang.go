package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// rustTable drives the Rust front end. impl blocks classify as Class alongside
// structs and enums; traits map to Interface. Everything control-flow in Rust
// is an expression kind, so the statement arms are thinner than elsewhere.
var rustTable = &mappingTable{
	grammar: "rust",
	rules: map[string]rule{
		"source_file": {Type: uir.ModuleType(), Fixed: "rust_program"},
		"mod_item":    {Type: uir.ModuleType(), Name: nameDeclared},

		"function_item": {Type: uir.FunctionType(), Name: nameDeclared},
		"impl_item":     {Type: uir.ClassType(), Name: nameDeclared},
		"struct_item":   {Type: uir.ClassType(), Name: nameDeclared},
		"enum_item":     {Type: uir.ClassType(), Name: nameDeclared},
		"trait_item":    {Type: uir.InterfaceType(), Name: nameDeclared},
		"parameter":     {Type: uir.VariableType(), Name: nameDeclared},

		"return_expression":   {Type: uir.StatementOf(uir.StmtReturn)},
		"break_expression":    {Type: uir.StatementOf(uir.StmtBreak)},
		"continue_expression": {Type: uir.StatementOf(uir.StmtContinue)},

		"if_expression":    {Type: uir.FlowOf(uir.FlowConditional)},
		"for_expression":   {Type: uir.LoopOf(uir.LoopFor)},
		"while_expression": {Type: uir.LoopOf(uir.LoopWhile)},
		"loop_expression":  {Type: uir.LoopOf(uir.LoopWhile)},
		"match_expression": {Type: uir.FlowOf(uir.FlowSwitch)},

		"binary_expression":     {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"unary_expression":      {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"call_expression":       {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"assignment_expression": {Type: uir.ExpressionOf(uir.ExprAssignment)},

		"identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"integer_literal":    {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"float_literal":      {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"string_literal":     {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"raw_string_literal": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"char_literal":       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"boolean_literal":    {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet("identifier", "type_identifier", "field_identifier"),
}
