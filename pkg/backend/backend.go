// Package backend renders universal intermediate representation trees back
// into source text. Each generator walks the tree once and emits best-effort
// code for its target language, honoring the annotations the library
// abstraction layer leaves behind: generated_code replaces the structural
// emission of a node, required_imports are hoisted to the file header, and
// fallback_implementation blocks become comments marking manual work.
// Fidelity is intentionally modest; the output is a translation draft, not a
// verified equivalent of the source.
package backend

import (
	"os"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Generator renders a tree into source text for one target language.
type Generator interface {
	// TargetLanguage identifies the language this generator emits.
	TargetLanguage() uir.Language

	// Generate renders the tree rooted at root. The tree is not modified.
	Generate(root *uir.Node) (string, error)
}

// New returns the generator for the given target language.
func New(language uir.Language) (Generator, error) {
	switch language {
	case uir.LangPython:
		return pythonGenerator{}, nil
	case uir.LangGo:
		return goGenerator{}, nil
	default:
		return nil, &uir.UnsupportedLanguageError{Language: language}
	}
}

// Supported returns the target languages New accepts.
func Supported() []uir.Language {
	return []uir.Language{uir.LangGo, uir.LangPython}
}

// GenerateFile renders the tree and writes the result to path.
func GenerateFile(g Generator, root *uir.Node, path string) error {
	code, err := g.Generate(root)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(code), 0o600); err != nil {
		return &GenerationError{Message: "write " + path, Err: err}
	}

	return nil
}
