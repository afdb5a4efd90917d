package lal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func TestLayer_AnalyzeEnhanceTransform(t *testing.T) {
	t.Parallel()

	source := `import { useState } from 'react';
const [count, setCount] = useState(0);
`

	layer := New()

	deps, err := layer.AnalyzeDependencies([]byte(source), uir.LangJavaScript)
	require.NoError(t, err)
	require.Len(t, deps, 1)

	root := uir.New("module_0_0_", uir.ModuleType(), uir.LangJavaScript).WithName("javascript_program")
	require.NoError(t, layer.EnhanceUIR(root, deps))

	out, err := layer.TransformLibraryCalls(root, uir.LangJavaScript, "vue")
	require.NoError(t, err)

	code, ok := out.Metadata.StringAnnotation(uir.AnnotationGeneratedCode)
	require.True(t, ok)
	assert.Equal(t, "const count = ref({{initialValue}})", code)
}

func TestLayer_EnhanceUIR_RoundTrip(t *testing.T) {
	t.Parallel()

	layer := New()

	deps, err := layer.AnalyzeDependencies([]byte(reactSource), uir.LangJavaScript)
	require.NoError(t, err)
	require.Len(t, deps, 1)

	root := uir.New("module_0_0_", uir.ModuleType(), uir.LangJavaScript)
	require.NoError(t, layer.EnhanceUIR(root, deps))

	encoded, ok := root.Metadata.StringAnnotation(uir.AnnotationLibraryDependency)
	require.True(t, ok)

	var decoded LibraryDependency
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, deps[0], decoded, "the annotation string must carry the full dependency record")
}

func TestLayer_EnhanceUIR_MarksNamedNodes(t *testing.T) {
	t.Parallel()

	layer := New()

	root := uir.New("module_0_0_", uir.ModuleType(), uir.LangJavaScript)
	call := uir.New("call_expression_1_26_useState(0)", uir.ExpressionOf(uir.ExprFunctionCall), uir.LangJavaScript).
		WithName("useState")
	root.AddChild(call)

	deps := []LibraryDependency{{
		Name:      "react",
		Ecosystem: "javascript",
		Usages: []LibraryUsage{{
			PatternName:    "useState",
			MethodName:     "useState",
			SemanticIntent: "reactive_state_management",
		}},
	}}

	require.NoError(t, layer.EnhanceUIR(root, deps))

	pattern, ok := call.Metadata.StringAnnotation(uir.AnnotationLibraryPattern)
	require.True(t, ok)
	assert.Equal(t, "useState", pattern)

	intent, ok := call.Metadata.StringAnnotation(uir.AnnotationSemanticIntent)
	require.True(t, ok)
	assert.Equal(t, "reactive_state_management", intent)

	_, ok = root.Metadata.StringAnnotation(uir.AnnotationLibraryPattern)
	assert.False(t, ok, "only nodes named after the matched text are tagged")
}

func TestLayer_TargetEcosystems(t *testing.T) {
	t.Parallel()

	layer := New()

	assert.Equal(t, []string{"rust", "go", "python", "javascript"}, layer.TargetEcosystems("socket"))
	assert.Empty(t, layer.TargetEcosystems("lodash"))
}
