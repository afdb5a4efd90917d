package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// cppTable drives the C++ front end. Range-for collapses onto the plain For
// loop; namespaces surface as named Module nodes.
var cppTable = &mappingTable{
	grammar: "cpp",
	rules: map[string]rule{
		"translation_unit":     {Type: uir.ModuleType(), Fixed: "cpp_program"},
		"namespace_definition": {Type: uir.ModuleType(), Name: nameDeclared},

		"function_definition":   {Type: uir.FunctionType(), Name: nameDeclared},
		"function_declarator":   {Type: uir.FunctionType(), Name: nameDeclared},
		"parameter_declaration": {Type: uir.VariableType(), Name: nameDeclared},
		"class_specifier":       {Type: uir.ClassType(), Name: nameDeclared},
		"struct_specifier":      {Type: uir.ClassType(), Name: nameDeclared},

		"return_statement":   {Type: uir.StatementOf(uir.StmtReturn)},
		"break_statement":    {Type: uir.StatementOf(uir.StmtBreak)},
		"continue_statement": {Type: uir.StatementOf(uir.StmtContinue)},
		"throw_statement":    {Type: uir.StatementOf(uir.StmtThrow)},

		"if_statement":     {Type: uir.FlowOf(uir.FlowConditional)},
		"for_statement":    {Type: uir.LoopOf(uir.LoopFor)},
		"for_range_loop":   {Type: uir.LoopOf(uir.LoopFor)},
		"while_statement":  {Type: uir.LoopOf(uir.LoopWhile)},
		"do_statement":     {Type: uir.LoopOf(uir.LoopDoWhile)},
		"switch_statement": {Type: uir.FlowOf(uir.FlowSwitch)},
		"try_statement":    {Type: uir.FlowOf(uir.FlowTry)},
		"goto_statement":   {Type: uir.FlowOf(uir.FlowGoto)},

		"binary_expression":     {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"unary_expression":      {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"call_expression":       {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"new_expression":        {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"assignment_expression": {Type: uir.ExpressionOf(uir.ExprAssignment)},

		"identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"number_literal": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"string_literal": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"char_literal":   {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"true":           {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"false":          {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"nullptr":        {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet("identifier", "field_identifier", "type_identifier", "namespace_identifier"),
}
