package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/pkg/lal"
	"github.com/Sumatoshi-tech/coalesce/pkg/levenshtein"
)

// ErrUnknownLibrary reports a library with no registered patterns.
var ErrUnknownLibrary = errors.New("no patterns registered for library")

// maxSuggestDistance bounds how far a misspelled library name may be from
// a known one before the hint is more confusing than helpful.
const maxSuggestDistance = 2

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect and extend the library pattern registry",
	}

	cmd.AddCommand(patternsListCmd(), patternsEcosystemsCmd(), patternsImportCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered library patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatternsList(cmd.OutOrStdout())
		},
	}
}

func patternsEcosystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecosystems <library>",
		Short: "Show which ecosystems a library can be ported to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternsEcosystems(args[0], cmd.OutOrStdout())
		},
	}
}

func patternsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Validate and register a pattern document",
		Long: `Load a YAML pattern document, validate it against the pattern schema
and register it alongside the built-in patterns.

Examples:
  coalesce patterns import solid-signals.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatternsImport(args[0], cmd.OutOrStdout())
		},
	}
}

func runPatternsList(writer io.Writer) error {
	patterns := lal.New().Registry().All()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"Library", "Ecosystem", "Pattern", "Intent", "Targets"})

	for _, pattern := range patterns {
		tbl.AppendRow(table.Row{
			pattern.Library,
			pattern.Ecosystem,
			pattern.Name,
			pattern.Semantics.Intent,
			strings.Join(transformTargets(pattern), ", "),
		})
	}

	tbl.AppendFooter(table.Row{"", "", "", "Total", len(patterns)})

	fmt.Fprintln(writer, tbl.Render())

	return nil
}

// transformTargets returns the ecosystems a pattern carries rewrite rules
// for, sorted for stable output.
func transformTargets(pattern *lal.Pattern) []string {
	targets := make([]string, 0, len(pattern.Transformations))
	for ecosystem := range pattern.Transformations {
		targets = append(targets, ecosystem)
	}

	sort.Strings(targets)

	return targets
}

func runPatternsEcosystems(library string, writer io.Writer) error {
	layer := lal.New()

	ecosystems := layer.TargetEcosystems(library)
	if len(ecosystems) == 0 {
		if hint := closestLibrary(library, layer.Registry().All()); hint != "" {
			return fmt.Errorf("%w: %s (did you mean %q?)", ErrUnknownLibrary, library, hint)
		}

		return fmt.Errorf("%w: %s", ErrUnknownLibrary, library)
	}

	fmt.Fprintf(writer, "%s can be ported to: %s\n", library, strings.Join(ecosystems, ", "))

	return nil
}

// closestLibrary returns the registered library within edit distance
// maxSuggestDistance of name, or "" when nothing is close enough.
func closestLibrary(name string, patterns []*lal.Pattern) string {
	var ctx levenshtein.Context

	best := ""
	bestDist := maxSuggestDistance + 1

	for _, pattern := range patterns {
		dist := ctx.Distance(name, pattern.Library)
		if dist > 0 && dist < bestDist {
			best, bestDist = pattern.Library, dist
		}
	}

	return best
}

func runPatternsImport(file string, writer io.Writer) error {
	data, _, err := readInputFile(file)
	if err != nil {
		return err
	}

	registry := lal.New().Registry()

	before := len(registry.All())

	if err := registry.RegisterYAML(data); err != nil {
		return fmt.Errorf("import %s: %w", file, err)
	}

	added := len(registry.All()) - before

	fmt.Fprintf(writer, "Registered %d pattern(s) from %s\n", added, file)

	return nil
}
