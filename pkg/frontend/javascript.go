package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// javascriptTable drives the JavaScript front end. Function declarations are
// the shaped construct: parameters surface directly as Variable children
// followed by the body statements, matching the layout the transformer and
// generators expect.
var javascriptTable = &mappingTable{
	grammar: "javascript",
	rules: map[string]rule{
		"program": {Type: uir.ModuleType(), Fixed: "javascript_program"},

		"function_declaration":           {Type: uir.FunctionType(), Name: nameDeclared},
		"generator_function_declaration": {Type: uir.FunctionType(), Name: nameDeclared},
		"function_expression":            {Type: uir.FunctionType(), Name: nameDeclared},
		"arrow_function":                 {Type: uir.FunctionType()},
		"method_definition":              {Type: uir.FunctionType(), Name: nameDeclared},
		"class_declaration":              {Type: uir.ClassType(), Name: nameDeclared},

		"variable_declaration": {Type: uir.StatementOf(uir.StmtExpression), Fixed: "variable_declaration"},
		"lexical_declaration":  {Type: uir.StatementOf(uir.StmtExpression), Fixed: "variable_declaration"},
		"variable_declarator":  {Type: uir.VariableType(), Name: nameDeclared},

		"expression_statement": {Type: uir.StatementOf(uir.StmtExpression)},
		"return_statement":     {Type: uir.StatementOf(uir.StmtReturn)},
		"break_statement":      {Type: uir.StatementOf(uir.StmtBreak)},
		"continue_statement":   {Type: uir.StatementOf(uir.StmtContinue)},
		"throw_statement":      {Type: uir.StatementOf(uir.StmtThrow)},

		"if_statement":       {Type: uir.FlowOf(uir.FlowConditional), Fixed: "if_statement"},
		"ternary_expression": {Type: uir.FlowOf(uir.FlowConditional)},
		"switch_statement":   {Type: uir.FlowOf(uir.FlowSwitch)},
		"try_statement":      {Type: uir.FlowOf(uir.FlowTry)},
		"for_statement":      {Type: uir.LoopOf(uir.LoopFor)},
		"for_in_statement":   {Type: uir.LoopOf(uir.LoopForEach)},
		"while_statement":    {Type: uir.LoopOf(uir.LoopWhile)},
		"do_statement":       {Type: uir.LoopOf(uir.LoopDoWhile)},

		"binary_expression":               {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"unary_expression":                {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"assignment_expression":           {Type: uir.ExpressionOf(uir.ExprAssignment)},
		"augmented_assignment_expression": {Type: uir.ExpressionOf(uir.ExprAssignment)},
		"call_expression":                 {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"new_expression":                  {Type: uir.ExpressionOf(uir.ExprFunctionCall)},

		"identifier":          {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},
		"property_identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"number":          {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"string":          {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"template_string": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"regex":           {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"true":            {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"false":           {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"null":            {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"undefined":       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"array":           {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"object":          {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet("identifier", "property_identifier"),
	functions: map[string]functionShape{
		"function_declaration":           {Params: "formal_parameters", Body: "statement_block"},
		"generator_function_declaration": {Params: "formal_parameters", Body: "statement_block"},
		"function_expression":            {Params: "formal_parameters", Body: "statement_block"},
	},
}
