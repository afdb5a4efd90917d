package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/pkg/backend"
	"github.com/Sumatoshi-tech/coalesce/pkg/frontend"
	"github.com/Sumatoshi-tech/coalesce/pkg/textutil"
	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// diffArgCount is the number of arguments expected by the diff command.
const diffArgCount = 2

const (
	formatSummary = "summary"
	formatUnified = "unified"
)

// ErrUnsupportedDiffFmt reports a --format value the diff command does not know.
var ErrUnsupportedDiffFmt = errors.New("unsupported format")

func diffCmd() *cobra.Command {
	var output, format, target string

	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare the structure of two files",
		Long: `Parse two files into their intermediate representation and report how
their structure differs. The files may be written in different languages.

The unified format renders both trees into the --target language and shows
a line diff of the generated code.

Examples:
  coalesce diff old.js new.js              # Summary of structural changes
  coalesce diff -f json old.js new.js      # Changes as JSON
  coalesce diff -f unified old.py new.py   # Line diff of generated code`,
		Args: cobra.ExactArgs(diffArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], output, format, target, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSummary, "output format (summary, json, unified)")
	cmd.Flags().StringVar(&target, "target", "python", "language to render unified diffs in")

	return cmd
}

func runDiff(file1, file2, output, format, target string, fallback io.Writer) error {
	before, err := parseForDiff(file1)
	if err != nil {
		return err
	}

	after, err := parseForDiff(file2)
	if err != nil {
		return err
	}

	writer, done, err := openOutput(output, fallback)
	if err != nil {
		return err
	}

	if err := renderDiff(before, after, file1, file2, format, target, writer); err != nil {
		_ = done()

		return err
	}

	return done()
}

func parseForDiff(file string) (*uir.Node, error) {
	code, resolvedPath, err := readInputFile(file)
	if err != nil {
		return nil, err
	}

	if textutil.IsBinary(code) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, file)
	}

	srcLang, err := sourceLanguage("", resolvedPath, code)
	if err != nil {
		return nil, err
	}

	parser, err := frontend.New(srcLang)
	if err != nil {
		return nil, err
	}

	root, err := parser.Parse(context.Background(), resolvedPath, code)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	return root, nil
}

// Change is one structural difference between the two trees.
type Change struct {
	Type   string    `json:"change_type"`
	Before *uir.Node `json:"before,omitempty"`
	After  *uir.Node `json:"after,omitempty"`
}

func renderDiff(before, after *uir.Node, file1, file2, format, target string, writer io.Writer) error {
	switch format {
	case formatJSON:
		return encodeChanges(uir.DetectChanges(before, after), writer)
	case formatSummary:
		printChangeSummary(uir.DetectChanges(before, after), writer)

		return nil
	case formatUnified:
		return printGeneratedDiff(before, after, file1, file2, target, writer)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDiffFmt, format)
	}
}

func encodeChanges(nodeChanges []uir.NodeChange, writer io.Writer) error {
	changes := make([]Change, 0, len(nodeChanges))

	for _, changeItem := range nodeChanges {
		changes = append(changes, Change{
			Type:   changeItem.Type.String(),
			Before: changeItem.Before,
			After:  changeItem.After,
		})
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")

	if err := enc.Encode(changes); err != nil {
		return fmt.Errorf("encode changes: %w", err)
	}

	return nil
}

func printChangeSummary(changes []uir.NodeChange, writer io.Writer) {
	if len(changes) == 0 {
		fmt.Fprintln(writer, "No structural changes detected")

		return
	}

	summary := make(map[string]int)

	for _, change := range changes {
		summary[change.Type.String()]++
	}

	keys := make([]string, 0, len(summary))
	for key := range summary {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	fmt.Fprintf(writer, "Change Summary:\n")

	for _, changeType := range keys {
		fmt.Fprintf(writer, "  %s: %d\n", changeType, summary[changeType])
	}
}

// printGeneratedDiff renders both trees in the target language and prints a
// line diff of the results.
func printGeneratedDiff(before, after *uir.Node, file1, file2, target string, writer io.Writer) error {
	targetLang, err := uir.ParseLanguage(target)
	if err != nil {
		return fmt.Errorf("target language: %w", err)
	}

	gen, err := backend.New(targetLang)
	if err != nil {
		return err
	}

	beforeText, err := gen.Generate(before)
	if err != nil {
		return fmt.Errorf("generate %s: %w", file1, err)
	}

	afterText, err := gen.Generate(after)
	if err != nil {
		return fmt.Errorf("generate %s: %w", file2, err)
	}

	fmt.Fprintf(writer, "--- %s (%s)\n", file1, target)
	fmt.Fprintf(writer, "+++ %s (%s)\n", file2, target)

	if beforeText == afterText {
		fmt.Fprintf(writer, "generated %s output is identical\n", target)

		return nil
	}

	printTextDiff(beforeText, afterText, writer)

	return nil
}

func printTextDiff(beforeText, afterText string, writer io.Writer) {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToRunes(beforeText, afterText)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCleanupMerge(dmp.DiffCleanupSemanticLossless(diffs))
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, diffItem := range diffs {
		for _, line := range diffLines(diffItem.Text) {
			switch diffItem.Type {
			case diffmatchpatch.DiffDelete:
				removed.Fprintf(writer, "-%s\n", line)
			case diffmatchpatch.DiffInsert:
				added.Fprintf(writer, "+%s\n", line)
			case diffmatchpatch.DiffEqual:
				fmt.Fprintf(writer, " %s\n", line)
			}
		}
	}
}

// diffLines splits a diff fragment into lines, dropping the empty trailer
// left by a final newline.
func diffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
