package frontend

import "github.com/Sumatoshi-tech/coalesce/pkg/uir"

// csharpTable drives the C# front end. Structs and enums classify as Class;
// namespaces and using directives surface as named Module nodes.
var csharpTable = &mappingTable{
	grammar: "c_sharp",
	rules: map[string]rule{
		"compilation_unit":      {Type: uir.ModuleType(), Fixed: "csharp_program"},
		"namespace_declaration": {Type: uir.ModuleType(), Name: nameDeclared},
		"using_directive":       {Type: uir.ModuleType(), Name: nameDeclared},

		"method_declaration":      {Type: uir.FunctionType(), Name: nameDeclared},
		"constructor_declaration": {Type: uir.FunctionType(), Name: nameDeclared},
		"class_declaration":       {Type: uir.ClassType(), Name: nameDeclared},
		"struct_declaration":      {Type: uir.ClassType(), Name: nameDeclared},
		"enum_declaration":        {Type: uir.ClassType(), Name: nameDeclared},
		"interface_declaration":   {Type: uir.InterfaceType(), Name: nameDeclared},
		"parameter":               {Type: uir.VariableType(), Name: nameDeclared},

		"return_statement":   {Type: uir.StatementOf(uir.StmtReturn)},
		"break_statement":    {Type: uir.StatementOf(uir.StmtBreak)},
		"continue_statement": {Type: uir.StatementOf(uir.StmtContinue)},
		"throw_statement":    {Type: uir.StatementOf(uir.StmtThrow)},

		"if_statement":      {Type: uir.FlowOf(uir.FlowConditional)},
		"for_statement":     {Type: uir.LoopOf(uir.LoopFor)},
		"foreach_statement": {Type: uir.LoopOf(uir.LoopForEach)},
		"while_statement":   {Type: uir.LoopOf(uir.LoopWhile)},
		"do_statement":      {Type: uir.LoopOf(uir.LoopDoWhile)},
		"switch_statement":  {Type: uir.FlowOf(uir.FlowSwitch)},
		"try_statement":     {Type: uir.FlowOf(uir.FlowTry)},
		"goto_statement":    {Type: uir.FlowOf(uir.FlowGoto)},

		"binary_expression":     {Type: uir.ExpressionOf(uir.ExprArithmetic)},
		"invocation_expression": {Type: uir.ExpressionOf(uir.ExprFunctionCall)},
		"assignment_expression": {Type: uir.ExpressionOf(uir.ExprAssignment)},

		"identifier": {Type: uir.ExpressionOf(uir.ExprVariable), Name: nameText},

		"integer_literal":   {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"real_literal":      {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"string_literal":    {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"character_literal": {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"boolean_literal":   {Type: uir.ExpressionOf(uir.ExprLiteral)},
		"null_literal":      {Type: uir.ExpressionOf(uir.ExprLiteral)},
	},
	identifiers: identifierSet("identifier", "qualified_name"),
}
