package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// golangTable drives the Go front end. Package and import clauses surface as
// named Module nodes so downstream passes can see compilation-unit structure
// without a separate import model.
var golangTable = &mappingTable{
	grammar: "go",
	rules: map[string]rule{
		"source_file": {Type: uir.ModuleType(), Fixed: "go_program"},

		"package_clause":     {Type: uir.ModuleType(), Name: nameDeclared},
		"import_declaration": {Type: uir.ModuleType(), Name: nameDeclared},

		"function_declaration":  {Type: uir.FunctionType(), Name: nameDeclared},
		"method_declaration":    {Type: uir.FunctionType(), Name: nameDeclared},
		"type_declaration":      {Type: uir.ClassType(), Name: nameDeclared},
		"struct_type":           {Type: uir.ClassType(), Name: nameDeclared},
		"interface_type":        {Type: uir.InterfaceType(), Name: nameDeclared},
		"parameter_declaration": {Type: uir.VariableType(), Name: nameDeclared},

		"return_statement": {Type: uir.StatementOf(uir.StmtReturn)},
		"break_statement":  {Type: uir.StatementOf(uir.StmtBreak)},

		"if_statement":                {Type: uir.FlowOf(uir.FlowConditional)},
		"for_statement":               {Type: uir.LoopOf(uir.LoopFor)},
		"range_clause":                {Type: uir.LoopOf(uir.LoopForEach)},
		"expression_switch_statement": {Type: uir.FlowOf(uir.FlowSwitch)},
		"type_switch_statement":       {Type: uir.FlowOf(uir.FlowSwitch)},
		"goto_statement":              {Type: uir.FlowOf(uir.FlowGoto)},

		"binary_expression":    {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"call_expression":      {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"assignment_statement": {Type: uir.ExpressionOf(uir.ExprAssignment)},

		"identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"int_literal":                {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"float_literal":              {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"interpreted_string_literal": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"raw_string_literal":         {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"rune_literal":               {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"true":                       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"false":                      {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"nil":                        {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet(
		"identifier",
		"field_identifier",
		"type_identifier",
		"package_identifier",
	),
}
