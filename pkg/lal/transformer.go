package lal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Transformer rewrites library-specific idioms for a target ecosystem. It
// never edits tree structure: every result is expressed through reserved
// annotations on the node carrying the dependency record, and generators
// decide what to do with them.
type Transformer struct {
	registry *Registry
}

func NewTransformer(registry *Registry) *Transformer {
	return &Transformer{registry: registry}
}

// Transform returns a deep copy of root with transformation annotations
// attached wherever a node carries a library dependency record. The target
// ecosystem defaults from the target language when empty. A malformed
// dependency record aborts the whole pass. Every usage ends either
// transformed or fallback-marked: missing rules and unregistered pattern
// names are manual work, not silent drops.
func (t *Transformer) Transform(root *uir.Node, targetLang uir.Language, targetEcosystem string) (*uir.Node, error) {
	if targetEcosystem == "" {
		targetEcosystem = defaultEcosystem(targetLang)
	}

	transformed := root.Clone()
	if err := t.transformNode(transformed, targetEcosystem); err != nil {
		return nil, err
	}

	return transformed, nil
}

func (t *Transformer) transformNode(node *uir.Node, targetEcosystem string) error {
	if encoded, ok := node.Metadata.StringAnnotation(uir.AnnotationLibraryDependency); ok {
		var dep LibraryDependency
		if err := json.Unmarshal([]byte(encoded), &dep); err != nil {
			return &TransformationError{
				Message: "malformed library_dependency annotation on node " + node.ID,
				Err:     err,
			}
		}

		t.transformLibraryNode(node, &dep, targetEcosystem)
	}

	for _, child := range node.Children {
		if err := t.transformNode(child, targetEcosystem); err != nil {
			return err
		}
	}

	return nil
}

func (t *Transformer) transformLibraryNode(node *uir.Node, dep *LibraryDependency, targetEcosystem string) {
	for i := range dep.Usages {
		usage := &dep.Usages[i]

		pattern, ok := t.registry.Get(dep.Name, usage.PatternName)
		if !ok {
			attachFallback(node, dep.Name, usage.PatternName, usageBehavior(usage))

			continue
		}

		if rule, ok := pattern.Transformations[targetEcosystem]; ok {
			applyTransformRule(node, pattern, &rule, usage)
		} else {
			attachFallback(node, pattern.Library, pattern.Name, pattern.Semantics.Behavior)
		}
	}
}

// usageBehavior describes an unregistered usage for its fallback comment.
// The detected intent is the best information available at that point.
func usageBehavior(usage *LibraryUsage) string {
	if usage.SemanticIntent != "" {
		return usage.SemanticIntent
	}

	return "unknown library pattern"
}

// applyTransformRule renders the rule's template from the usage parameters
// and records the outcome in reserved annotations. The import list is JSON
// re-encoded inside the annotation string, per the annotation protocol.
func applyTransformRule(node *uir.Node, pattern *Pattern, rule *TransformRule, usage *LibraryUsage) {
	code := renderTemplate(rule.Template, usage.Parameters)

	node.Metadata.SetStringAnnotation(uir.AnnotationTransformedFrom, pattern.Library+":"+pattern.Name)
	node.Metadata.SetStringAnnotation(uir.AnnotationTransformedTo, rule.TargetLibrary+":"+rule.TargetPattern)
	node.Metadata.SetStringAnnotation(uir.AnnotationGeneratedCode, code)

	if len(rule.Imports) > 0 {
		// Marshaling a string slice cannot fail.
		imports, _ := json.Marshal(rule.Imports)
		node.Metadata.SetStringAnnotation(uir.AnnotationRequiredImports, string(imports))
	}

	if rule.SetupCode != "" {
		node.Metadata.SetStringAnnotation(uir.AnnotationSetupCode, rule.SetupCode)
	}

	if rule.CleanupCode != "" {
		node.Metadata.SetStringAnnotation(uir.AnnotationCleanupCode, rule.CleanupCode)
	}
}

// attachFallback marks a node whose usage cannot be transformed. The
// comment is emitted verbatim by generators, so the ported program carries
// the manual work item at the right spot.
func attachFallback(node *uir.Node, library, name, behavior string) {
	comment := fmt.Sprintf("// TODO: Implement equivalent of %s:%s\n// Original behavior: %s",
		library, name, behavior)

	node.Metadata.SetStringAnnotation(uir.AnnotationFallbackImplementation, comment)
	node.Metadata.SetStringAnnotation(uir.AnnotationRequiresManualImplementation, "true")
}

// renderTemplate substitutes {{name}} placeholders with usage parameter
// values. Placeholders with no matching parameter stay verbatim, so an
// incomplete rule shows its gap instead of silently erasing it.
func renderTemplate(template string, parameters map[string]string) string {
	rendered := template
	for name, value := range parameters {
		rendered = strings.ReplaceAll(rendered, "{{"+name+"}}", value)
	}

	return rendered
}

// defaultEcosystem picks the ecosystem a target language implies when the
// caller does not name one explicitly.
func defaultEcosystem(language uir.Language) string {
	switch language {
	case uir.LangJavaScript:
		return "vanilla"
	case uir.LangRust, uir.LangCPP:
		return "std"
	case uir.LangCSharp, uir.LangFSharp, uir.LangVB:
		return "dotnet"
	default:
		return "stdlib"
	}
}
