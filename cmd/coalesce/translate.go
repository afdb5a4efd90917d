package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/internal/config"
	"github.com/Sumatoshi-tech/coalesce/pkg/backend"
	"github.com/Sumatoshi-tech/coalesce/pkg/frontend"
	"github.com/Sumatoshi-tech/coalesce/pkg/lal"
	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

func translateCmd() *cobra.Command {
	var from, to, ecosystem, output string

	var showUIR bool

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a source file to another language",
		Long: `Translate a source file through the full pipeline: parse into the
intermediate tree, detect library usage, map library calls to the target
ecosystem, and generate target code.

Examples:
  coalesce translate --to python main.js          # JavaScript to Python
  coalesce translate --to go --from c legacy.txt  # force the source language
  coalesce translate --to python --ecosystem sqlalchemy models.py
  coalesce translate --to go -o out.go net.c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0], from, to, ecosystem, output, showUIR, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source language (default: auto-detect)")
	cmd.Flags().StringVar(&to, "to", "", "target language")
	cmd.Flags().StringVar(&ecosystem, "ecosystem", "", "target ecosystem for library mapping (default: target language)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&showUIR, "show-uir", false, "print the intermediate tree as JSON to stderr")

	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runTranslate(file, from, to, ecosystem, output string, showUIR bool, writer io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if ecosystem == "" {
		ecosystem = cfg.Translate.TargetEcosystem
	}

	showUIR = showUIR || cfg.Translate.ShowUIR

	targetLang, err := uir.ParseLanguage(to)
	if err != nil {
		return fmt.Errorf("target language: %w", err)
	}

	code, resolvedPath, err := readInputFile(file)
	if err != nil {
		return err
	}

	srcLang, err := sourceLanguage(from, resolvedPath, code)
	if err != nil {
		return err
	}

	stagef("Parsing %s (%s)", file, srcLang)

	parser, err := frontend.New(srcLang)
	if err != nil {
		return err
	}

	root, err := parser.Parse(context.Background(), resolvedPath, code)
	if err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	layer := lal.New()

	deps, err := layer.AnalyzeDependencies(code, srcLang)
	if err != nil {
		return fmt.Errorf("analyze dependencies: %w", err)
	}

	stagef("Detected library dependencies: %d", len(deps))

	if err := layer.EnhanceUIR(root, deps); err != nil {
		return fmt.Errorf("annotate dependencies: %w", err)
	}

	stagef("Transforming library calls for %s", targetLang)

	transformed, err := layer.TransformLibraryCalls(root, targetLang, ecosystem)
	if err != nil {
		return fmt.Errorf("transform library calls: %w", err)
	}

	if showUIR {
		if err := dumpTree(transformed); err != nil {
			return err
		}
	}

	if manual := countManualPorts(transformed); manual > 0 {
		warnf("%d library usages have no mapping for the target; marked for manual porting", manual)
	}

	stagef("Generating %s", targetLang)

	gen, err := backend.New(targetLang)
	if err != nil {
		return err
	}

	if output != "" {
		if err := backend.GenerateFile(gen, transformed, output); err != nil {
			return err
		}

		successf("Wrote %s", output)

		return nil
	}

	generated, err := gen.Generate(transformed)
	if err != nil {
		return err
	}

	fmt.Fprint(writer, generated)

	return nil
}

// sourceLanguage resolves the source language from the --from flag, falling
// back to detection on the file name and content.
func sourceLanguage(from, path string, code []byte) (uir.Language, error) {
	if from != "" {
		lang, err := uir.ParseLanguage(from)
		if err != nil {
			return "", fmt.Errorf("source language: %w", err)
		}

		return lang, nil
	}

	lang, exact := frontend.Detect(path, code)
	if !exact {
		slog.Debug("language detection fell through", "file", path, "assuming", string(lang))
	}

	return lang, nil
}

// countManualPorts counts nodes the transformer could not map to the target
// ecosystem.
func countManualPorts(root *uir.Node) int {
	count := 0

	root.VisitPreOrder(func(node *uir.Node) {
		if flag, ok := node.Metadata.StringAnnotation(uir.AnnotationRequiresManualImplementation); ok && flag == "true" {
			count++
		}
	})

	return count
}

// dumpTree prints the tree as indented JSON on stderr, keeping stdout free
// for generated code.
func dumpTree(root *uir.Node) error {
	encoded, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	fmt.Fprintln(os.Stderr, string(encoded))

	return nil
}

// stagef prints a cyan pipeline progress line to stderr.
func stagef(format string, args ...any) {
	if quiet {
		return
	}

	color.New(color.FgCyan).Fprintf(os.Stderr, format+"\n", args...)
}

// warnf prints a yellow warning line to stderr.
func warnf(format string, args ...any) {
	if quiet {
		return
	}

	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

// successf prints a green confirmation line to stderr.
func successf(format string, args ...any) {
	if quiet {
		return
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, format+"\n", args...)
}
