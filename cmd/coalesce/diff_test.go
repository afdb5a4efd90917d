package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDiffSummaryCountsChanges(t *testing.T) {
	t.Parallel()

	before := writeSource(t, "before.js", "function a() { return 1; }\n")
	after := writeSource(t, "after.js", "function a() { return 1; }\nfunction b() { return 2; }\n")

	var buf bytes.Buffer

	err := runDiff(before, after, "", formatSummary, "python", &buf)
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Change Summary:") {
		t.Errorf("missing summary header:\n%s", out)
	}

	if !strings.Contains(out, "added") {
		t.Errorf("summary missing added count:\n%s", out)
	}
}

func TestDiffJSONListsAddedFunction(t *testing.T) {
	t.Parallel()

	before := writeSource(t, "before.js", "function a() { return 1; }\n")
	after := writeSource(t, "after.js", "function a() { return 1; }\nfunction b() { return 2; }\n")

	var buf bytes.Buffer

	err := runDiff(before, after, "", formatJSON, "python", &buf)
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	var changes []Change

	decodeErr := json.Unmarshal(buf.Bytes(), &changes)
	if decodeErr != nil {
		t.Fatalf("failed to decode changes JSON: %v", decodeErr)
	}

	foundAdded := false

	for _, change := range changes {
		if change.Type == "added" && change.After != nil && change.After.Name == "b" {
			foundAdded = true
		}
	}

	if !foundAdded {
		t.Errorf("changes %+v do not report function b as added", changes)
	}
}

func TestDiffUnifiedShowsGeneratedLines(t *testing.T) {
	t.Parallel()

	before := writeSource(t, "before.js", "function a() { return 1; }\n")
	after := writeSource(t, "after.js", "function a() { return 1; }\nfunction b() { return 2; }\n")

	var buf bytes.Buffer

	err := runDiff(before, after, "", formatUnified, "python", &buf)
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"--- ", "+++ ", "+def b():"} {
		if !strings.Contains(out, want) {
			t.Errorf("unified output missing %q:\n%s", want, out)
		}
	}
}

// TestDiffIdenticalFiles checks that the same source under two paths
// produces no changes; the structural diff ignores file names.
func TestDiffIdenticalFiles(t *testing.T) {
	t.Parallel()

	source := "function same() { return 0; }\n"
	first := writeSource(t, "one.js", source)
	second := writeSource(t, "two.js", source)

	var buf bytes.Buffer

	err := runDiff(first, second, "", formatSummary, "python", &buf)
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No structural changes detected") {
		t.Errorf("unexpected summary for identical files:\n%s", buf.String())
	}
}

func TestDiffRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	first := writeSource(t, "one.js", "let x = 1;\n")
	second := writeSource(t, "two.js", "let y = 2;\n")

	err := runDiff(first, second, "", "html", "python", io.Discard)
	if !errors.Is(err, ErrUnsupportedDiffFmt) {
		t.Errorf("error = %v, want ErrUnsupportedDiffFmt", err)
	}
}
