package frontend

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// F# declaration headers. All anchored to line starts; a let binding with
// parameter words before the = is a function, otherwise a value binding.
var (
	fsharpModuleRE = regexp.MustCompile(`(?m)^module\s+(\w+(?:\.\w+)*)\s*=?\s*$`)
	fsharpTypeRE   = regexp.MustCompile(`(?m)^type\s+(\w+)(?:\s*=)?`)
	fsharpFuncRE   = regexp.MustCompile(`(?m)^let\s+(\w+)\s+([^=]+?)\s*=`)
	fsharpLetRE    = regexp.MustCompile(`(?m)^let\s+(\w+)\s*=\s*([^=\r\n]+)`)
)

// fsharpValueBindingMaxSpaces separates `let x = 5` from applications like
// `let x = compute a b`: a simple value binding header has at most three
// whitespace runes.
const fsharpValueBindingMaxSpaces = 3

// annotationBindingValue carries a value binding's right-hand side.
const annotationBindingValue = "value"

// fsharpParser is a regex front end for F#.
type fsharpParser struct{}

func (p *fsharpParser) Language() uir.Language {
	return uir.LangFSharp
}

// Parse scans source for module, type, function and let-binding headers and
// lifts them into a flat tree under the program root.
func (p *fsharpParser) Parse(_ context.Context, filename string, source []byte) (*uir.Node, error) {
	if len(source) == 0 {
		return nil, &uir.ParseError{Message: errEmptySource.Error(), Line: 1}
	}

	scan := &lineScanner{language: uir.LangFSharp, filename: filename, source: source}
	root := scan.root("fsharp_program")

	p.scanModules(scan, root)
	p.scanTypes(scan, root)
	p.scanFunctions(scan, root)
	p.scanValueBindings(scan, root)

	return root, nil
}

func (p *fsharpParser) scanModules(scan *lineScanner, root *uir.Node) {
	for _, match := range fsharpModuleRE.FindAllSubmatchIndex(scan.source, -1) {
		name := scan.text(match[2], match[3])
		text := scan.text(match[0], match[1])

		node := scan.node("module_"+name, uir.ModuleType(), "module", scan.line(match[0]), len(text))
		node.Name = name
		node.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)
		root.AddChild(node)
	}
}

func (p *fsharpParser) scanTypes(scan *lineScanner, root *uir.Node) {
	for _, match := range fsharpTypeRE.FindAllSubmatchIndex(scan.source, -1) {
		name := scan.text(match[2], match[3])
		text := scan.text(match[0], match[1])

		node := scan.node("type_"+name, uir.ClassType(), "type", scan.line(match[0]), len(text))
		node.Name = name
		node.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)
		root.AddChild(node)
	}
}

func (p *fsharpParser) scanFunctions(scan *lineScanner, root *uir.Node) {
	for _, match := range fsharpFuncRE.FindAllSubmatchIndex(scan.source, -1) {
		params := strings.TrimSpace(scan.text(match[4], match[5]))
		if !strings.ContainsFunc(params, unicode.IsLetter) {
			continue
		}

		name := scan.text(match[2], match[3])
		text := scan.text(match[0], match[1])
		line := scan.line(match[0])

		fn := scan.node("func_"+name, uir.FunctionType(), "function", line, len(text))
		fn.Name = name
		fn.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)

		for _, param := range strings.Fields(params) {
			if !identifierToken(param) {
				continue
			}

			parameter := scan.node("param_"+param, uir.VariableType(), "parameter", line, len(param))
			parameter.Name = param
			fn.AddChild(parameter)
		}

		root.AddChild(fn)
	}
}

func (p *fsharpParser) scanValueBindings(scan *lineScanner, root *uir.Node) {
	for _, match := range fsharpLetRE.FindAllSubmatchIndex(scan.source, -1) {
		text := scan.text(match[0], match[1])
		if whitespaceCount(text) > fsharpValueBindingMaxSpaces {
			continue
		}

		name := scan.text(match[2], match[3])

		node := scan.node("var_"+name, uir.VariableType(), "variable", scan.line(match[0]), len(text))
		node.Name = name
		node.Metadata.SetStringAnnotation(uir.AnnotationOriginalText, text)
		node.Metadata.SetStringAnnotation(annotationBindingValue, strings.TrimSpace(scan.text(match[4], match[5])))
		root.AddChild(node)
	}
}
