package uir

import (
	"encoding/json"
	"testing"
)

func TestStringAnnotationRoundTrip(t *testing.T) {
	var meta Metadata

	meta.SetStringAnnotation("semantic_intent", "reactive_state_management")

	value, ok := meta.StringAnnotation("semantic_intent")
	if !ok || value != "reactive_state_management" {
		t.Errorf("StringAnnotation = %q, %v", value, ok)
	}

	if _, ok := meta.StringAnnotation("absent"); ok {
		t.Error("absent key should not resolve")
	}
}

func TestStringAnnotationRejectsNonString(t *testing.T) {
	var meta Metadata

	meta.SetAnnotation("numbers", json.RawMessage(`[1, 2, 3]`))

	if _, ok := meta.StringAnnotation("numbers"); ok {
		t.Error("non-string value should not decode as string")
	}

	raw, ok := meta.Annotation("numbers")
	if !ok || string(raw) != `[1, 2, 3]` {
		t.Errorf("Annotation = %s, %v", raw, ok)
	}
}

func TestJSONInAStringEncoding(t *testing.T) {
	// Structured reserved keys carry serialized JSON inside a JSON string.
	payload := `{"name":"react","version":"*"}`

	var meta Metadata

	meta.SetStringAnnotation("library_dependency", payload)

	data, err := json.Marshal(meta.Annotations)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("wire value is not a string map: %v", err)
	}

	if decoded["library_dependency"] != payload {
		t.Errorf("wire value = %q", decoded["library_dependency"])
	}
}

func TestAddLegacyPattern(t *testing.T) {
	var meta Metadata

	meta.AddLegacyPattern(LegacyPattern{
		PatternType:       "goto",
		OriginalConstruct: "goto cleanup;",
		ModernizationHint: "replace with structured control flow",
		PreserveExactly:   true,
	})

	if len(meta.LegacyPatterns) != 1 || !meta.LegacyPatterns[0].PreserveExactly {
		t.Errorf("legacy patterns = %+v", meta.LegacyPatterns)
	}
}
