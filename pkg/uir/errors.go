package uir

import (
	"errors"
	"fmt"
)

// Sentinel errors for the representation layer.
var (
	errUnknownNodeType = errors.New("unknown node type")

	// ErrInvalidDocument reports a serialized UIR document that is not valid
	// JSON at all, as opposed to one that fails schema checks.
	ErrInvalidDocument = errors.New("invalid uir document")
)

// ParseError reports an unrecoverable syntax failure at a source position.
// Line is 1-based; Column is a 0-based byte offset.
type ParseError struct {
	Message string
	Line    uint
	Column  uint
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at line %d, column %d", e.Message, e.Line, e.Column)
}

// UnsupportedLanguageError reports a language with no registered front end,
// detector table or generator.
type UnsupportedLanguageError struct {
	Language Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

// LegacyPatternError flags a legacy construct that needs special handling.
// It is advisory: pipelines report it and continue, they never abort on it.
type LegacyPatternError struct {
	Pattern string
}

func (e *LegacyPatternError) Error() string {
	return fmt.Sprintf("legacy pattern requires special handling: %s", e.Pattern)
}
