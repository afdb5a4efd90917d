package lal

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/coalesce/pkg/lal/spec"
)

// patternSchemaFile is the embedded schema every imported pattern document
// must satisfy before registration.
const patternSchemaFile = "pattern-schema.json"

// Registry holds every known library pattern plus the static map from
// source libraries to the ecosystems they can be ported to. Patterns are
// kept in registration order so equivalence scans and suggestion
// tie-breaking stay deterministic. Build it once at startup and treat it
// as read-only afterwards; it is not safe for concurrent mutation.
type Registry struct {
	patterns   []*Pattern
	index      map[string]map[string]int
	ecosystems map[string][]string
}

// NewRegistry returns an empty registry. Most callers want New, which
// installs the built-in patterns as well.
func NewRegistry() *Registry {
	return &Registry{
		index:      make(map[string]map[string]int),
		ecosystems: make(map[string][]string),
	}
}

// RegisterDefaults installs the built-in pattern library and the ecosystem
// target mappings.
func (r *Registry) RegisterDefaults() {
	for _, pattern := range builtinPatterns() {
		r.Register(pattern)
	}

	for library, targets := range defaultEcosystemTargets {
		r.ecosystems[library] = slices.Clone(targets)
	}
}

// Register adds a pattern under its (library, name) pair. Re-registering
// an existing pair replaces the stored pattern in place, keeping the
// original registration position.
func (r *Registry) Register(pattern Pattern) {
	byName, ok := r.index[pattern.Library]
	if !ok {
		byName = make(map[string]int)
		r.index[pattern.Library] = byName
	}

	if at, exists := byName[pattern.Name]; exists {
		r.patterns[at] = &pattern

		return
	}

	byName[pattern.Name] = len(r.patterns)
	r.patterns = append(r.patterns, &pattern)
}

// Get looks up a pattern by library and pattern name. The returned pattern
// is shared registry state; callers must not modify it.
func (r *Registry) Get(library, name string) (*Pattern, bool) {
	byName, ok := r.index[library]
	if !ok {
		return nil, false
	}

	at, ok := byName[name]
	if !ok {
		return nil, false
	}

	return r.patterns[at], true
}

// LibraryPatterns returns every pattern registered for a library, in
// registration order.
func (r *Registry) LibraryPatterns(library string) []*Pattern {
	var out []*Pattern

	for _, pattern := range r.patterns {
		if pattern.Library == library {
			out = append(out, pattern)
		}
	}

	return out
}

// All returns every registered pattern in registration order.
func (r *Registry) All() []*Pattern {
	return slices.Clone(r.patterns)
}

// TargetEcosystems reports which ecosystems a source library can be ported
// to. Unknown libraries yield an empty list.
func (r *Registry) TargetEcosystems(library string) []string {
	return slices.Clone(r.ecosystems[library])
}

// RegisterYAML parses one pattern document, validates it against the
// embedded pattern schema and registers it. Any failure surfaces as a
// TransformationError and leaves the registry unchanged.
func (r *Registry) RegisterYAML(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &TransformationError{Message: "pattern document parse failed", Err: err}
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return &TransformationError{Message: "pattern document encode failed", Err: err}
	}

	schema, err := spec.PatternSchemaFS.ReadFile(patternSchemaFile)
	if err != nil {
		return &TransformationError{Message: "pattern schema unavailable", Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(encoded),
	)
	if err != nil {
		return &TransformationError{Message: "pattern schema validation failed", Err: err}
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return &TransformationError{Message: "invalid pattern document: " + strings.Join(details, "; ")}
	}

	var pattern Pattern
	if err := json.Unmarshal(encoded, &pattern); err != nil {
		return &TransformationError{Message: "pattern document decode failed", Err: err}
	}

	r.Register(pattern)

	return nil
}

// FindEquivalents returns every pattern sharing a semantic intent, across
// all libraries and ecosystems, in registration order.
func (r *Registry) FindEquivalents(intent string) []*Pattern {
	var equivalents []*Pattern

	for _, pattern := range r.patterns {
		if pattern.Semantics.Intent == intent {
			equivalents = append(equivalents, pattern)
		}
	}

	return equivalents
}

// Suggest ranks ways to port one pattern to a target ecosystem: an
// explicit transformation rule scores 1.0, same-intent patterns from other
// libraries native to the target score 0.8. Results are sorted by
// confidence, ties in registration order. An unknown pattern yields no
// suggestions.
func (r *Registry) Suggest(library, patternName, targetEcosystem string) []Suggestion {
	pattern, ok := r.Get(library, patternName)
	if !ok {
		return nil
	}

	var suggestions []Suggestion

	if rule, ok := pattern.Transformations[targetEcosystem]; ok {
		suggestions = append(suggestions, Suggestion{
			Confidence:    1.0,
			Kind:          SuggestionDirectTransform,
			TargetLibrary: rule.TargetLibrary,
			TargetPattern: rule.TargetPattern,
			Description:   "Direct transformation to " + targetEcosystem,
		})
	}

	for _, equivalent := range r.FindEquivalents(pattern.Semantics.Intent) {
		if equivalent.Ecosystem != targetEcosystem || equivalent.Library == library {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Confidence:    0.8,
			Kind:          SuggestionSemanticEquivalent,
			TargetLibrary: equivalent.Library,
			TargetPattern: equivalent.Name,
			Description:   "Semantic equivalent: " + equivalent.Name,
		})
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return suggestions
}

// defaultEcosystemTargets maps each built-in source library to the
// ecosystems the platform can port it to.
var defaultEcosystemTargets = map[string][]string{
	"react":  {"vue", "svelte", "angular", "vanilla"},
	"django": {"sqlalchemy", "fastapi", "flask"},
	"socket": {"rust", "go", "python", "javascript"},
}
