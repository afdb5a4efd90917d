package frontend

import (
	"context"
	"regexp"
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Visual Basic declaration headers, matched case-insensitively.
var (
	vbNamespaceRE = regexp.MustCompile(`(?mi)^Namespace\s+(\w+(?:\.\w+)*)\s*$`)
	vbModuleRE    = regexp.MustCompile(`(?mi)^(?:Public\s+|Private\s+)?Module\s+(\w+)\s*$`)
	vbClassRE     = regexp.MustCompile(`(?mi)^(?:Public\s+|Private\s+)?Class\s+(\w+)\s*$`)
	vbFunctionRE  = regexp.MustCompile(`(?mi)^(?:Public\s+|Private\s+|Protected\s+)?Function\s+(\w+)\s*\(([^)]*)\)(?:\s+As\s+\w+)?\s*$`)
	vbSubRE       = regexp.MustCompile(`(?mi)^(?:Public\s+|Private\s+|Protected\s+)?Sub\s+(\w+)\s*\(([^)]*)\)\s*$`)
	vbPropertyRE  = regexp.MustCompile(`(?mi)^(?:Public\s+|Private\s+|Protected\s+)?Property\s+(\w+)\s*(?:\([^)]*\))?\s*As\s+\w+\s*$`)
)

// vbParameterModifiers are the tokens preceding a parameter name in a VB
// signature. Dropped before the name is read.
var vbParameterModifiers = map[string]struct{}{
	"byval":    {},
	"byref":    {},
	"optional": {},
}

// vbParser is a regex front end for Visual Basic.
type vbParser struct{}

func (p *vbParser) Language() uir.Language {
	return uir.LangVB
}

// Parse scans source for namespace, module, class, function, sub and
// property headers and lifts them into a flat tree under the program root.
func (p *vbParser) Parse(_ context.Context, filename string, source []byte) (*uir.Node, error) {
	if len(source) == 0 {
		return nil, &uir.ParseError{Message: errEmptySource.Error(), Line: 1}
	}

	scan := &lineScanner{language: uir.LangVB, filename: filename, source: source}
	root := scan.root("vb_program")

	p.scanHeaders(scan, root, vbNamespaceRE, "namespace_", uir.ModuleType(), "namespace")
	p.scanHeaders(scan, root, vbModuleRE, "module_", uir.ModuleType(), "module")
	p.scanHeaders(scan, root, vbClassRE, "class_", uir.ClassType(), "class")
	p.scanCallables(scan, root, vbFunctionRE, "func_", "function")
	p.scanCallables(scan, root, vbSubRE, "sub_", "sub")
	p.scanHeaders(scan, root, vbPropertyRE, "prop_", uir.VariableType(), "property")

	return root, nil
}

// scanHeaders lifts every match of re as one childless declaration node.
func (p *vbParser) scanHeaders(scan *lineScanner, root *uir.Node, re *regexp.Regexp, idPrefix string, nodeType uir.NodeType, tag string) {
	for _, match := range re.FindAllSubmatchIndex(scan.source, -1) {
		name := scan.text(match[2], match[3])
		text := scan.text(match[0], match[1])

		node := scan.node(idPrefix+name, nodeType, tag, scan.line(match[0]), len(text))
		node.Name = name
		node.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)
		root.AddChild(node)
	}
}

// scanCallables lifts Function and Sub headers with their parameter lists.
func (p *vbParser) scanCallables(scan *lineScanner, root *uir.Node, re *regexp.Regexp, idPrefix, tag string) {
	for _, match := range re.FindAllSubmatchIndex(scan.source, -1) {
		name := scan.text(match[2], match[3])
		text := scan.text(match[0], match[1])
		line := scan.line(match[0])

		fn := scan.node(idPrefix+name, uir.FunctionType(), tag, line, len(text))
		fn.Name = name
		fn.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)

		for _, param := range strings.Split(scan.text(match[4], match[5]), ",") {
			paramName := vbParameterName(param)
			if paramName == "" {
				continue
			}

			parameter := scan.node("param_"+paramName, uir.VariableType(), "parameter", line, len(paramName))
			parameter.Name = paramName
			fn.AddChild(parameter)
		}

		root.AddChild(fn)
	}
}

// vbParameterName extracts the name token from one parameter declaration,
// skipping ByVal/ByRef/Optional modifiers. Empty when no clean name exists.
func vbParameterName(param string) string {
	for _, token := range strings.Fields(param) {
		if _, modifier := vbParameterModifiers[strings.ToLower(token)]; modifier {
			continue
		}

		if identifierToken(token) {
			return token
		}

		return ""
	}

	return ""
}
