// Package lal implements the library abstraction layer: regex detection of
// ecosystem idioms in raw source, a registry of library patterns with
// per-ecosystem transformation rules, and a transformer that rewrites
// detected idioms through reserved tree annotations or marks them for
// manual porting. Detection runs on original text because the normalized
// tree has already erased import statements and call shapes.
package lal

import (
	"encoding/json"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Layer bundles the detector, the registry and the transformer behind the
// entry points the translation pipeline calls. Construct once per process;
// the layer is safe for concurrent readers after New returns.
type Layer struct {
	registry *Registry
	detector *Detector
}

// New returns a layer with the built-in patterns and detection tables
// installed.
func New() *Layer {
	registry := NewRegistry()
	registry.RegisterDefaults()

	return &Layer{
		registry: registry,
		detector: NewDetector(),
	}
}

// Registry exposes the pattern registry for lookups and imports.
func (l *Layer) Registry() *Registry { return l.registry }

// AnalyzeDependencies scans raw source for known library usage.
func (l *Layer) AnalyzeDependencies(code []byte, language uir.Language) ([]LibraryDependency, error) {
	return l.detector.Detect(code, language)
}

// EnhanceUIR attaches detected dependencies to a parsed tree: the
// dependency record is serialized onto the root (with several libraries
// present, the last record wins), and any node whose name matches a
// usage's matched text is tagged with the pattern name and intent. The
// transformer later reads these annotations back.
func (l *Layer) EnhanceUIR(root *uir.Node, deps []LibraryDependency) error {
	for i := range deps {
		if err := annotateDependency(root, &deps[i]); err != nil {
			return err
		}
	}

	return nil
}

func annotateDependency(root *uir.Node, dep *LibraryDependency) error {
	encoded, err := json.Marshal(dep)
	if err != nil {
		return &TransformationError{Message: "library dependency record encode failed", Err: err}
	}

	root.Metadata.SetStringAnnotation(uir.AnnotationLibraryDependency, string(encoded))

	for _, usage := range dep.Usages {
		root.VisitPreOrder(func(node *uir.Node) {
			if node.Name != "" && node.Name == usage.MethodName {
				node.Metadata.SetStringAnnotation(uir.AnnotationLibraryPattern, usage.PatternName)
				node.Metadata.SetStringAnnotation(uir.AnnotationSemanticIntent, usage.SemanticIntent)
			}
		})
	}

	return nil
}

// TransformLibraryCalls rewrites annotated library usage for the target
// language. Pass an empty ecosystem to use the language's default.
func (l *Layer) TransformLibraryCalls(root *uir.Node, targetLang uir.Language, targetEcosystem string) (*uir.Node, error) {
	return NewTransformer(l.registry).Transform(root, targetLang, targetEcosystem)
}

// TargetEcosystems reports which ecosystems a source library can be ported
// to.
func (l *Layer) TargetEcosystems(library string) []string {
	return l.registry.TargetEcosystems(library)
}
