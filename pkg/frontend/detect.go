package frontend

import (
	"path"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// detectExtensions settles the cases enry maps onto languages outside the
// closed set, and plain extensions for anonymous buffers.
var detectExtensions = map[string]uir.Language{
	".js":  uir.LangJavaScript,
	".mjs": uir.LangJavaScript,
	".jsx": uir.LangJavaScript,
	".c":   uir.LangC,
	".h":   uir.LangC,
	".cpp": uir.LangCPP,
	".cxx": uir.LangCPP,
	".cc":  uir.LangCPP,
	".hpp": uir.LangCPP,
	".rs":  uir.LangRust,
	".go":  uir.LangGo,
	".cs":  uir.LangCSharp,
	".fs":  uir.LangFSharp,
	".fsx": uir.LangFSharp,
	".vb":  uir.LangVB,
	".bas": uir.LangVB,
	".py":  uir.LangPython,
}

// Detect guesses the language of content. Classifier order: enry on the
// base name plus content, the extension table, then content heuristics.
// The bool is false when every classifier fell through; the guess is then
// JavaScript, the translator's most common input.
func Detect(filename string, content []byte) (uir.Language, bool) {
	if filename != "" {
		if name := enry.GetLanguage(path.Base(filename), content); name != "" {
			if lang, err := uir.ParseLanguage(name); err == nil {
				return lang, true
			}
		}

		if lang, ok := detectExtensions[strings.ToLower(path.Ext(filename))]; ok {
			return lang, true
		}
	}

	return detectByContent(string(content))
}

// detectByContent applies keyword heuristics, system languages first so that
// C-family keywords do not shadow them.
func detectByContent(source string) (uir.Language, bool) {
	has := func(marker string) bool { return strings.Contains(source, marker) }

	switch {
	case has("using System") || (has("namespace ") && has("class ") && has("public ")):
		return uir.LangCSharp, true
	case has("let ") && (has("=") || has("->")) && (has("module ") || has("type ")):
		return uir.LangFSharp, true
	case has("Sub ") || has("Function ") || has("End Sub") || has("End Function"):
		return uir.LangVB, true
	case has("fn ") && (has("mut ") || has("impl ") || has("struct ")):
		return uir.LangRust, true
	case has("func ") && (has("package ") || has("import ")):
		return uir.LangGo, true
	case has("class ") && (has("public:") || has("private:") || has("namespace ")):
		return uir.LangCPP, true
	case has("#include") || has("int main"):
		return uir.LangC, true
	case has("function ") || has("const ") || has("let "):
		return uir.LangJavaScript, true
	case has("def ") || has("import "):
		return uir.LangPython, true
	default:
		return uir.LangJavaScript, false
	}
}
