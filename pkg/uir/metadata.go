package uir

import "encoding/json"

// Metadata carries everything known about a node beyond its shape: the
// language it came from, semantic tags assigned during normalization, an
// optional complexity estimate, detected dependencies, the open annotation
// bag used by the library abstraction layer, and legacy patterns that must
// survive translation.
type Metadata struct {
	SourceLanguage Language                   `json:"source_language"`
	SemanticTags   []string                   `json:"semantic_tags,omitempty"`
	Complexity     *float64                   `json:"complexity_score,omitempty"`
	Dependencies   []string                   `json:"dependencies,omitempty"`
	Annotations    map[string]json.RawMessage `json:"annotations,omitempty"`
	LegacyPatterns []LegacyPattern            `json:"legacy_patterns,omitempty"`
}

// LegacyPattern records a deprecated or dialect-specific construct recognized
// during normalization (goto, computed line targets, vendor extensions).
// PreserveExactly asks later stages to carry the construct through verbatim
// instead of modernizing it.
type LegacyPattern struct {
	PatternType       string `json:"pattern_type"`
	OriginalConstruct string `json:"original_construct"`
	ModernizationHint string `json:"modernization_hint"`
	PreserveExactly   bool   `json:"preserve_exactly"`
}

// SetAnnotation stores a raw JSON value under key, allocating the bag on
// first use.
func (m *Metadata) SetAnnotation(key string, value json.RawMessage) {
	if m.Annotations == nil {
		m.Annotations = make(map[string]json.RawMessage)
	}

	m.Annotations[key] = value
}

// Annotation returns the raw JSON value stored under key.
func (m *Metadata) Annotation(key string) (json.RawMessage, bool) {
	value, ok := m.Annotations[key]

	return value, ok
}

// SetStringAnnotation stores value as a JSON string under key. All reserved
// protocol keys use string values, JSON-in-a-string for structured ones.
func (m *Metadata) SetStringAnnotation(key, value string) {
	// Marshaling a plain string cannot fail.
	data, _ := json.Marshal(value)
	m.SetAnnotation(key, data)
}

// StringAnnotation decodes the value under key as a JSON string. Returns
// false when the key is absent or holds a non-string value.
func (m *Metadata) StringAnnotation(key string) (string, bool) {
	raw, ok := m.Annotations[key]
	if !ok {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	return value, true
}

// AddLegacyPattern appends a legacy-pattern record.
func (m *Metadata) AddLegacyPattern(pattern LegacyPattern) {
	m.LegacyPatterns = append(m.LegacyPatterns, pattern)
}

// clone returns a deep copy of the metadata block.
func (m Metadata) clone() Metadata {
	cloned := Metadata{SourceLanguage: m.SourceLanguage}

	if len(m.SemanticTags) > 0 {
		cloned.SemanticTags = append([]string(nil), m.SemanticTags...)
	}

	if m.Complexity != nil {
		score := *m.Complexity
		cloned.Complexity = &score
	}

	if len(m.Dependencies) > 0 {
		cloned.Dependencies = append([]string(nil), m.Dependencies...)
	}

	if len(m.Annotations) > 0 {
		cloned.Annotations = make(map[string]json.RawMessage, len(m.Annotations))
		for key, value := range m.Annotations {
			cloned.Annotations[key] = append(json.RawMessage(nil), value...)
		}
	}

	if len(m.LegacyPatterns) > 0 {
		cloned.LegacyPatterns = append([]LegacyPattern(nil), m.LegacyPatterns...)
	}

	return cloned
}
