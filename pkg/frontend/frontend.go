// Package frontend normalizes source code into the shared intermediate
// tree. Grammar-backed languages run through tree-sitter with one
// declarative mapping table each; F# and Visual Basic use regex scanners.
// Detect guesses the language when the caller does not know it.
package frontend

import (
	"context"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Parser normalizes one language into the intermediate tree.
// Implementations are safe for concurrent use.
type Parser interface {
	// Language returns the source language this parser accepts.
	Language() uir.Language
	// Parse converts source into a tree. filename feeds source locations
	// only and may be empty.
	Parse(ctx context.Context, filename string, source []byte) (*uir.Node, error)
}

// New returns the front end for language. Languages in the closed set that
// have no front end yet (typescript, java, cobol, fortran) return
// [uir.UnsupportedLanguageError].
func New(language uir.Language) (Parser, error) {
	switch language {
	case uir.LangJavaScript:
		return newTreeSitterParser(language, javascriptTable)
	case uir.LangPython:
		return newTreeSitterParser(language, pythonTable)
	case uir.LangC:
		return newTreeSitterParser(language, cTable)
	case uir.LangCPP:
		return newTreeSitterParser(language, cppTable)
	case uir.LangCSharp:
		return newTreeSitterParser(language, csharpTable)
	case uir.LangRust:
		return newTreeSitterParser(language, rustTable)
	case uir.LangGo:
		return newTreeSitterParser(language, golangTable)
	case uir.LangFSharp:
		return &fsharpParser{}, nil
	case uir.LangVB:
		return &vbParser{}, nil
	default:
		return nil, &uir.UnsupportedLanguageError{Language: language}
	}
}

// Supported returns the languages with a working front end.
func Supported() []uir.Language {
	return []uir.Language{
		uir.LangJavaScript, uir.LangPython, uir.LangC, uir.LangCPP,
		uir.LangCSharp, uir.LangRust, uir.LangGo, uir.LangFSharp, uir.LangVB,
	}
}

// Parse detects the language of source and normalizes it. Callers that
// already know the language should build a parser with New and reuse it.
func Parse(ctx context.Context, filename string, source []byte) (*uir.Node, error) {
	language, _ := Detect(filename, source)

	parser, err := New(language)
	if err != nil {
		return nil, err
	}

	return parser.Parse(ctx, filename, source)
}
