package lal

// PatternSemantics describes what a library pattern means independently of
// any ecosystem. Equivalence between patterns from different libraries is
// decided on Intent alone; the remaining fields inform fallback comments
// and suggestion ranking.
type PatternSemantics struct {
	Intent       string   `json:"intent"`
	Category     string   `json:"category"`
	Behavior     string   `json:"behavior"`
	SideEffects  []string `json:"side_effects"`
	Requirements []string `json:"requirements"`
	Mutability   bool     `json:"mutability"`
	Reactivity   bool     `json:"reactivity"`
}

// PatternParameter documents one parameter of a pattern's signature.
type PatternParameter struct {
	Name         string `json:"name"`
	Type         string `json:"param_type"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"default_value,omitempty"`
	Description  string `json:"description"`
}

// TransformRule rewrites a pattern into one target ecosystem. Template
// placeholders use {{name}} syntax and are filled from the detected usage's
// parameters.
type TransformRule struct {
	TargetLibrary     string            `json:"target_library"`
	TargetPattern     string            `json:"target_pattern"`
	Template          string            `json:"template"`
	Imports           []string          `json:"imports"`
	SetupCode         string            `json:"setup_code,omitempty"`
	CleanupCode       string            `json:"cleanup_code,omitempty"`
	ParameterMappings map[string]string `json:"parameter_mappings"`
}

// Pattern is one registered library idiom: where it comes from, what it
// means, and how to rewrite it per target ecosystem. Transformations is
// keyed by ecosystem name.
type Pattern struct {
	Name            string                   `json:"name"`
	Library         string                   `json:"library"`
	Ecosystem       string                   `json:"ecosystem"`
	Signature       string                   `json:"signature"`
	Semantics       PatternSemantics         `json:"semantics"`
	Parameters      []PatternParameter       `json:"parameters"`
	Transformations map[string]TransformRule `json:"transformations"`
}

// SuggestionKind classifies how a suggested transformation was derived.
type SuggestionKind string

const (
	// SuggestionDirectTransform means the source pattern carries an explicit
	// rule for the target ecosystem.
	SuggestionDirectTransform SuggestionKind = "direct_transform"
	// SuggestionSemanticEquivalent means another library's pattern in the
	// target ecosystem shares the source pattern's intent.
	SuggestionSemanticEquivalent SuggestionKind = "semantic_equivalent"
)

// Suggestion ranks one way to port a pattern to a target ecosystem.
// Confidence is 1.0 for direct rules and 0.8 for semantic equivalents.
type Suggestion struct {
	Confidence    float64        `json:"confidence"`
	Kind          SuggestionKind `json:"suggestion_type"`
	TargetLibrary string         `json:"target_library"`
	TargetPattern string         `json:"target_pattern"`
	Description   string         `json:"description"`
}
