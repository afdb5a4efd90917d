package frontend

import (
	"bytes"
	"unicode"

	"github.com/Sumatoshi-tech/coalesce/pkg/textutil"
	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// lineScanner is the shared scaffolding for the regex front ends. F# and VB
// have no grammar wired into the engine, so their parsers lift declaration
// headers with anchored regexes into a flat tree under one program root.
type lineScanner struct {
	language uir.Language
	filename string
	source   []byte
}

// root builds the program root spanning the whole source.
func (s *lineScanner) root(programID string) *uir.Node {
	node := uir.New(programID, uir.ModuleType(), s.language).WithName(programID)
	node.Metadata.SemanticTags = []string{"source_file"}
	node.Loc = &uir.SourceLocation{
		File:      s.filename,
		StartLine: 1,
		EndLine:   uint(textutil.CountLines(s.source)),
		EndColumn: uint(len(s.source)),
	}

	return node
}

// node builds one matched declaration. Header matches are single-line, so
// the location starts and ends on the match line.
func (s *lineScanner) node(id string, nodeType uir.NodeType, tag string, line uint, width int) *uir.Node {
	node := uir.New(id, nodeType, s.language)
	node.Metadata.SemanticTags = []string{tag}
	node.Loc = &uir.SourceLocation{
		File:      s.filename,
		StartLine: line,
		EndLine:   line,
		EndColumn: uint(width),
	}

	return node
}

// line is the 1-based line number of a byte offset.
func (s *lineScanner) line(offset int) uint {
	return uint(bytes.Count(s.source[:offset], []byte{'\n'})) + 1
}

// text slices the source between two match offsets.
func (s *lineScanner) text(start, end int) string {
	return string(s.source[start:end])
}

// identifierToken reports whether token is letters, digits and underscores
// only. Ordinary words qualify; anything carrying type syntax does not.
func identifierToken(token string) bool {
	if token == "" {
		return false
	}

	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

// whitespaceCount counts whitespace runes in s.
func whitespaceCount(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsSpace(r) {
			count++
		}
	}

	return count
}
