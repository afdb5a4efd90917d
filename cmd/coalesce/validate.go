package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir/spec"
)

// Exit codes distinguish a document that failed validation from a
// validator that never got to run.
const (
	exitInvalidDocument  = 1
	exitValidatorFailure = 2
)

// complianceMax is the maximum compliance percentage.
const complianceMax = 100

// embeddedSchemaPath selects the schema compiled into the binary.
const embeddedSchemaPath = "pkg/uir/spec/uir-schema.json"

func validateCmd() *cobra.Command {
	var schemaPath string

	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a UIR JSON document against the UIR schema",
		Long: `Validate a UIR JSON document against the canonical UIR schema.

Examples:
  coalesce validate mytree.json
  coalesce validate - < mytree.json
  coalesce validate --schema custom-schema.json mytree.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], schemaPath, quiet, colorize, nocolor)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", embeddedSchemaPath, "path to UIR JSON schema")
	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath, schemaPath string, quietOutput, colorize, nocolor bool) error {
	applyColorMode(colorize, nocolor)

	root, label, err := decodeDocument(inputPath)
	if err != nil {
		abortf("%v", err)
	}

	schema, err := compileSchema(schemaPath)
	if err != nil {
		abortf("%v", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(root))
	if err != nil {
		abortf("schema validation error: %v", err)
	}

	if result.Valid() {
		if !quietOutput {
			color.New(color.FgGreen).Fprintf(os.Stdout, "UIR is valid (%s)\n", label)
			color.New(color.FgGreen).Fprintf(os.Stdout, "  Compliance: 100%%\n")
		}

		return nil
	}

	printReport(root, label, result.Errors())
	os.Exit(exitInvalidDocument)

	return nil
}

// abortf reports a condition that prevented validation from running.
func abortf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitValidatorFailure)
}

// applyColorMode forces or suppresses ANSI colors ahead of any output.
func applyColorMode(colorize, nocolor bool) {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}
}

// decodeDocument reads the UIR JSON document at path, with "-" selecting
// stdin. Numbers stay as json.Number so large values survive round-trips.
func decodeDocument(path string) (any, string, error) {
	reader := io.Reader(os.Stdin)
	label := "stdin"

	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()

		reader, label = file, path
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		return nil, "", fmt.Errorf("invalid JSON in %s: %w", label, err)
	}

	return root, label, nil
}

// compileSchema builds the validator from the embedded schema or from an
// override supplied with --schema.
func compileSchema(path string) (*gojsonschema.Schema, error) {
	raw, err := readSchemaBytes(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

func readSchemaBytes(path string) ([]byte, error) {
	if path == "" || path == embeddedSchemaPath {
		return spec.UIRSchemaFS.ReadFile("uir-schema.json")
	}

	return os.ReadFile(path)
}

// printReport lists every schema failure with the offending value where
// one resolves, then the matching remediation advice.
func printReport(root any, label string, failures []gojsonschema.ResultError) {
	color.New(color.FgRed).Fprintf(os.Stdout, "UIR validation failed (%s)\n", label)
	color.New(color.FgYellow).Fprintf(os.Stdout, "  Compliance: %d%%\n", complianceScore(root, failures))

	fmt.Fprintf(os.Stdout, "\nErrors:\n")

	for _, failure := range failures {
		if got, ok := valueAt(root, failure.Field()); ok {
			color.New(color.FgRed).Fprintf(os.Stdout, "  - %s: %s (got %q)\n",
				failure.Field(), failure.Description(), renderValue(got))
		} else {
			color.New(color.FgRed).Fprintf(os.Stdout, "  - %s: %s\n", failure.Field(), failure.Description())
		}
	}

	fmt.Fprintf(os.Stdout, "\nRecommendations:\n")
	printAdvice(failures)
}

// printAdvice emits one remediation line per distinct failure class, in
// the order the failures were reported.
func printAdvice(failures []gojsonschema.ResultError) {
	seen := make(map[string]bool)

	for _, failure := range failures {
		advice := adviseOn(failure.Field(), failure.Description())
		if advice == "" || seen[advice] {
			continue
		}

		seen[advice] = true

		color.New(color.FgCyan).Fprintf(os.Stdout, "  - %s\n", advice)
	}

	fmt.Fprintf(os.Stdout, "\nGeneral tips:\n")
	color.New(color.FgCyan).Fprintf(os.Stdout, "  - Use the schema at pkg/uir/spec/uir-schema.json as reference\n")
	color.New(color.FgCyan).Fprintf(os.Stdout, "  - Ensure every node has id, node_type and metadata\n")
	color.New(color.FgCyan).Fprintf(os.Stdout, "  - Validate field types and values against the schema\n")
}

// adviseOn maps one schema failure to remediation advice, or "" when no
// rule covers it. Earlier cases win when a failure matches several.
func adviseOn(field, description string) string {
	switch {
	case strings.Contains(field, "node_type") && strings.Contains(description, "must be one of"):
		return "Use canonical node types like 'Module', 'Function', 'Class' " +
			"or 'ControlFlow(Conditional)'"
	case strings.Contains(field, "source_language") || strings.Contains(description, "source_language"):
		return "Every node's metadata must name a supported source_language"
	case strings.Contains(description, "is required"):
		return "Every node requires id, node_type and metadata fields"
	case strings.Contains(field, "source_location") || strings.Contains(description, "start_line") ||
		strings.Contains(description, "start_column"):
		return "Source locations use snake_case fields: " +
			"file, start_line, end_line, start_column, end_column"
	case strings.Contains(description, "Additional property"):
		return "Remove fields the schema does not define; " +
			"free-form data belongs in metadata.annotations"
	case strings.Contains(field, "annotations"):
		return "Annotation values must be strings"
	case strings.Contains(field, "children") || strings.Contains(description, "children"):
		return "Children must be an array of UIR nodes"
	default:
		return ""
	}
}

// complianceScore grades a failed document: the share of nodes the schema
// accepted, as a percentage clamped to [0, complianceMax].
func complianceScore(root any, failures []gojsonschema.ResultError) int {
	total := treeSize(root)
	if total == 0 {
		return 0
	}

	score := (total - len(failures)) * complianceMax / total

	switch {
	case score < 0:
		return 0
	case score > complianceMax:
		return complianceMax
	default:
		return score
	}
}

// treeSize counts every JSON value reachable through children arrays,
// matching how the schema reports one failure per offending node.
func treeSize(root any) int {
	size := 0
	pending := []any{root}

	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		size++

		switch val := next.(type) {
		case map[string]any:
			if children, ok := val["children"].([]any); ok {
				pending = append(pending, children...)
			}
		case []any:
			pending = append(pending, val...)
		}
	}

	return size
}

// valueAt resolves a dotted schema error path like "children.0.node_type"
// against the decoded document.
func valueAt(root any, path string) (any, bool) {
	current := root

	for _, step := range strings.Split(path, ".") {
		switch val := current.(type) {
		case map[string]any:
			child, ok := val[step]
			if !ok {
				return nil, false
			}

			current = child
		case []any:
			index, err := strconv.Atoi(step)
			if err != nil || index < 0 || index >= len(val) {
				return nil, false
			}

			current = val[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// renderValue formats a decoded value for the error listing. Composite
// values render as their JSON kind to keep lines short.
func renderValue(value any) string {
	switch val := value.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%v", val)
	}
}
