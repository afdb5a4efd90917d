package uir

// Reserved annotation keys. These names and their value encodings are the
// wire format between independently implemented front ends, the library
// abstraction layer and the generators: every value is a JSON string, and
// the structured ones (AnnotationLibraryDependency,
// AnnotationRequiredImports) hold JSON re-encoded inside that string.
const (
	// AnnotationLibraryDependency holds one serialized library dependency
	// record, attached by the analysis pass.
	AnnotationLibraryDependency = "library_dependency"
	// AnnotationLibraryPattern names the registry pattern a node was
	// matched to.
	AnnotationLibraryPattern = "library_pattern"
	// AnnotationSemanticIntent carries the matched pattern's intent tag.
	AnnotationSemanticIntent = "semantic_intent"
	// AnnotationTransformedFrom records the source "library:pattern" pair.
	AnnotationTransformedFrom = "transformed_from"
	// AnnotationTransformedTo records the target "library:pattern" pair.
	AnnotationTransformedTo = "transformed_to"
	// AnnotationGeneratedCode holds the rendered target-ecosystem snippet.
	AnnotationGeneratedCode = "generated_code"
	// AnnotationRequiredImports holds the JSON array of import lines the
	// generated code needs.
	AnnotationRequiredImports = "required_imports"
	// AnnotationSetupCode and AnnotationCleanupCode carry optional
	// companion snippets around the generated code.
	AnnotationSetupCode   = "setup_code"
	AnnotationCleanupCode = "cleanup_code"
	// AnnotationFallbackImplementation holds the manual-port comment
	// attached when no transformation rule exists.
	AnnotationFallbackImplementation = "fallback_implementation"
	// AnnotationRequiresManualImplementation is "true" on nodes whose
	// usage could not be transformed.
	AnnotationRequiresManualImplementation = "requires_manual_implementation"
	// AnnotationOriginalText carries a node's raw source text when short
	// enough, for generators and debugging.
	AnnotationOriginalText = "original_text"
)
