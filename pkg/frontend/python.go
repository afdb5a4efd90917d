package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// pythonTable drives the Python front end. Function definitions are shaped
// like their JavaScript counterparts: parameters hoisted as Variable nodes,
// then the body statements. Python's for always iterates a collection, so it
// classifies as ForEach, and its distinct comparison and boolean operator
// kinds keep their own expression forms instead of collapsing to Arithmetic.
var pythonTable = &mappingTable{
	grammar: "python",
	rules: map[string]rule{
		"module": {Type: uir.ModuleType(), Fixed: "python_program"},

		"import_statement":      {Type: uir.ModuleType(), Name: nameDeclared},
		"import_from_statement": {Type: uir.ModuleType(), Name: nameDeclared},

		"function_definition": {Type: uir.FunctionType(), Name: nameDeclared},
		"lambda":              {Type: uir.FunctionType()},
		"class_definition":    {Type: uir.ClassType(), Name: nameDeclared},

		"expression_statement": {Type: uir.StatementOf(uir.StmtExpression)},
		"return_statement":     {Type: uir.StatementOf(uir.StmtReturn)},
		"break_statement":      {Type: uir.StatementOf(uir.StmtBreak)},
		"continue_statement":   {Type: uir.StatementOf(uir.StmtContinue)},
		"raise_statement":      {Type: uir.StatementOf(uir.StmtThrow)},

		"if_statement":           {Type: uir.FlowOf(uir.FlowConditional)},
		"conditional_expression": {Type: uir.FlowOf(uir.FlowConditional)},
		"for_statement":          {Type: uir.LoopOf(uir.LoopForEach)},
		"while_statement":        {Type: uir.LoopOf(uir.LoopWhile)},
		"match_statement":        {Type: uir.FlowOf(uir.FlowSwitch)},
		"try_statement":          {Type: uir.FlowOf(uir.FlowTry)},

		"binary_operator":      {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"unary_operator":       {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"comparison_operator":  {Type: uir.ExpressionOf(uir.ExprComparison)},
		"boolean_operator":     {Type: uir.ExpressionOf(uir.ExprLogical)},
		"not_operator":         {Type: uir.ExpressionOf(uir.ExprLogical)},
		"assignment":           {Type: uir.ExpressionOf(uir.ExprAssignment)},
		"augmented_assignment": {Type: uir.ExpressionOf(uir.ExprAssignment)},
		"call":                 {Type: uir.ExpressionOf(uir.ExprFunctionCall)},

		"identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"integer":    {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"float":      {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"string":     {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"true":       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"false":      {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"none":       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"list":       {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"dictionary": {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet("identifier", "dotted_name"),
	functions: map[string]functionShape{
		"function_definition": {Params: "parameters", Body: "block"},
	},
}
