package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/pkg/lal"
	"github.com/Sumatoshi-tech/coalesce/pkg/textutil"
)

func analyzeCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze <files...>",
		Short: "Report detected library usage",
		Long: `Scan source files for known library idioms and report which patterns
were found, how often, and what they mean.

Examples:
  coalesce analyze app.js
  coalesce analyze --json src/models.py`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args, jsonOut, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")

	return cmd
}

// fileReport is the analysis result for one source file.
type fileReport struct {
	File         string                  `json:"file"`
	Language     string                  `json:"language"`
	SizeBytes    uint64                  `json:"size_bytes"`
	Lines        int                     `json:"lines"`
	Dependencies []lal.LibraryDependency `json:"dependencies"`
}

func runAnalyze(files []string, jsonOut bool, writer io.Writer) error {
	layer := lal.New()

	reports := make([]fileReport, 0, len(files))

	for _, file := range files {
		report, err := analyzeFile(layer, file)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", file, err)
		}

		reports = append(reports, report)
	}

	if jsonOut {
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")

		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		return nil
	}

	renderReports(reports, writer)

	return nil
}

func analyzeFile(layer *lal.Layer, file string) (fileReport, error) {
	code, resolvedPath, err := readInputFile(file)
	if err != nil {
		return fileReport{}, err
	}

	if textutil.IsBinary(code) {
		return fileReport{}, fmt.Errorf("%w: %s", ErrBinaryFile, file)
	}

	srcLang, err := sourceLanguage("", resolvedPath, code)
	if err != nil {
		return fileReport{}, err
	}

	deps, err := layer.AnalyzeDependencies(code, srcLang)
	if err != nil {
		return fileReport{}, err
	}

	return fileReport{
		File:         file,
		Language:     string(srcLang),
		SizeBytes:    uint64(len(code)),
		Lines:        textutil.CountLines(code),
		Dependencies: deps,
	}, nil
}

// renderReports prints one summary line and one dependency table per file.
func renderReports(reports []fileReport, writer io.Writer) {
	for i := range reports {
		report := &reports[i]

		if i > 0 {
			fmt.Fprintln(writer)
		}

		fmt.Fprintf(writer, "%s: %s, %s, %d lines\n",
			report.File, report.Language, humanize.Bytes(report.SizeBytes), report.Lines)

		if len(report.Dependencies) == 0 {
			fmt.Fprintln(writer, "  no known library usage detected")

			continue
		}

		fmt.Fprintln(writer, renderDependencyTable(report.Dependencies))
	}
}

func renderDependencyTable(deps []lal.LibraryDependency) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"Library", "Ecosystem", "Usages", "Intents"})

	for _, dep := range deps {
		tbl.AppendRow(table.Row{
			dep.Name, dep.Ecosystem, len(dep.Usages), strings.Join(usageIntents(dep.Usages), ", "),
		})
	}

	return tbl.Render()
}

// usageIntents returns the distinct semantic intents in first-seen order.
func usageIntents(usages []lal.LibraryUsage) []string {
	seen := make(map[string]bool, len(usages))

	var intents []string

	for _, usage := range usages {
		if usage.SemanticIntent == "" || seen[usage.SemanticIntent] {
			continue
		}

		seen[usage.SemanticIntent] = true

		intents = append(intents, usage.SemanticIntent)
	}

	return intents
}
