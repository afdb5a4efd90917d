package lal

import (
	"encoding/json"
	"fmt"
)

// Span is a half-open [start, end) byte range in the scanned source.
// It serializes as a two-element JSON array, the stored shape of the
// source_location field.
type Span struct {
	Start uint
	End   uint
}

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint{s.Start, s.End})
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var pair [2]uint
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("source location: %w", err)
	}

	s.Start, s.End = pair[0], pair[1]

	return nil
}

// LibraryUsage is one concrete occurrence of a library pattern in source
// text. MethodName holds the full matched text, Parameters the named
// captures the detection pattern asked for.
type LibraryUsage struct {
	PatternName    string            `json:"pattern_name"`
	MethodName     string            `json:"method_name"`
	Parameters     map[string]string `json:"parameters"`
	SemanticIntent string            `json:"semantic_intent"`
	Span           Span              `json:"source_location"`
}

// LibraryDependency aggregates every detected usage of one library in a
// source file. Version and ImportPath stay empty until a manifest or
// import resolver fills them in.
type LibraryDependency struct {
	Name       string         `json:"name"`
	Version    string         `json:"version,omitempty"`
	Ecosystem  string         `json:"ecosystem"`
	ImportPath string         `json:"import_path,omitempty"`
	Usages     []LibraryUsage `json:"usage_patterns"`
}
