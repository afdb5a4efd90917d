package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const storeYAML = `
name: writable
library: svelte/store
ecosystem: javascript
signature: const store = writable(initial)
semantics:
  intent: reactive_state_management
  category: state
  behavior: Creates a writable reactive store
  side_effects: []
  requirements: []
  mutability: true
  reactivity: true
parameters:
  - name: initial
    param_type: any
    required: false
    description: Initial store value
transformations:
  vue:
    target_library: vue
    target_pattern: ref
    template: const {{store}} = ref({{initial}})
    imports:
      - import { ref } from 'vue'
    parameter_mappings: {}
`

func TestPatternsListIncludesBuiltins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runPatternsList(&buf)
	if err != nil {
		t.Fatalf("patterns list failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"react", "useState", "django", "socket"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestPatternsEcosystemsKnownLibrary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runPatternsEcosystems("react", &buf)
	if err != nil {
		t.Fatalf("patterns ecosystems failed: %v", err)
	}

	if !strings.Contains(buf.String(), "vue") {
		t.Errorf("react targets missing vue:\n%s", buf.String())
	}
}

func TestPatternsEcosystemsUnknownLibrary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runPatternsEcosystems("leftpad", &buf)
	if !errors.Is(err, ErrUnknownLibrary) {
		t.Errorf("error = %v, want ErrUnknownLibrary", err)
	}
}

func TestPatternsEcosystemsSuggestsClosestLibrary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runPatternsEcosystems("reakt", &buf)
	if !errors.Is(err, ErrUnknownLibrary) {
		t.Fatalf("error = %v, want ErrUnknownLibrary", err)
	}

	if !strings.Contains(err.Error(), `did you mean "react"`) {
		t.Errorf("error = %v, want a hint for react", err)
	}
}

func TestPatternsImportRegistersDocument(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "store.yaml", storeYAML)

	var buf bytes.Buffer

	err := runPatternsImport(file, &buf)
	if err != nil {
		t.Fatalf("patterns import failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Registered 1 pattern") {
		t.Errorf("unexpected import output:\n%s", buf.String())
	}
}

func TestPatternsImportRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "broken.yaml", "name: broken\nlibrary: broken\n")

	var buf bytes.Buffer

	err := runPatternsImport(file, &buf)
	if err == nil {
		t.Fatal("expected an error for an incomplete pattern document")
	}
}
