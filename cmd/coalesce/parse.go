package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pierrec/lz4/v4"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/internal/cache"
	"github.com/Sumatoshi-tech/coalesce/internal/config"
	"github.com/Sumatoshi-tech/coalesce/pkg/frontend"
	"github.com/Sumatoshi-tech/coalesce/pkg/textutil"
	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

var (
	ErrNoSourceFiles       = errors.New("no source files found in the codebase")
	ErrUnsupportedParseFmt = errors.New("unsupported format")
	ErrBinaryFile          = errors.New("binary file")
)

const (
	formatNone    = "none"
	formatCompact = "compact"
)

// lz4Extension marks output paths that get frame compression.
const lz4Extension = ".lz4"

func parseCmd() *cobra.Command {
	var lang, output, format string

	var workers int

	var progress, all bool

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse source files into intermediate tree JSON",
		Long: `Parse source files into the universal intermediate representation.

Examples:
  coalesce parse main.js                  # Parse a single file
  coalesce parse *.py                     # Parse all Python files
  coalesce parse -l c legacy.txt          # Force the source language
  cat main.js | coalesce parse            # Parse from stdin
  coalesce parse -o tree.json main.js     # Save to file
  coalesce parse -o tree.json.lz4 main.js # Save compressed
  coalesce parse -f none *.js             # Parse only, skip serialization
  coalesce parse --all                    # Parse every source file recursively
  coalesce parse --all -w 8               # Parse with 8 parallel workers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, lang, output, format, progress, all, workers, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&lang, "language", "l", "", "force the source language")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, compact, none)")
	cmd.Flags().BoolVarP(&progress, "progress", "p", false, "show progress for multiple files")
	cmd.Flags().BoolVar(&all, "all", false, "parse all source files in the codebase recursively")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (default: number of CPUs)")

	return cmd
}

func runParse(files []string, lang, output, format string, progress, all bool, workers int, writer io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if workers <= 0 {
		workers = cfg.Parse.Workers
	}

	cacheBytes, err := cfg.CacheBytes()
	if err != nil {
		return err
	}

	parsers := newParserSet()
	treeCache := cache.NewParseCache(cacheBytes)

	if all {
		var cerr error

		files, cerr = collectSourceFiles(".")
		if cerr != nil {
			return fmt.Errorf("collect source files: %w", cerr)
		}

		if len(files) == 0 {
			return ErrNoSourceFiles
		}
	}

	if len(files) == 0 {
		return parseStdin(parsers, lang, output, format, writer)
	}

	if progress && len(files) > 1 {
		fmt.Fprintf(os.Stderr, "Parsing %d files...\n", len(files))
	}

	useParallel := len(files) > 1 && format == formatNone
	if useParallel {
		return runParseParallel(parsers, files, lang, progress, workers)
	}

	out, done, err := openOutput(output, writer)
	if err != nil {
		return err
	}

	for idx, file := range files {
		if progress {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", idx+1, len(files), file)
		}

		if parseErr := parseFileToWriter(parsers, treeCache, file, lang, format, out); parseErr != nil {
			_ = done()

			return fmt.Errorf("parse %s: %w", file, parseErr)
		}
	}

	stats := treeCache.Stats()
	slog.Debug("parse cache", "hits", stats.Hits, "misses", stats.Misses, "entries", stats.Entries)

	return done()
}

// runParseParallel processes files concurrently with a worker pool. The
// format is always "none" here, so workers parse without serializing.
func runParseParallel(parsers *parserSet, files []string, lang string, progress bool, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers > len(files) {
		workers = len(files)
	}

	fileCh := make(chan string, workers)

	var firstErr atomic.Value

	var completed atomic.Int64

	total := int64(len(files))

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range fileCh {
				if firstErr.Load() != nil {
					return
				}

				perr := parseOnly(parsers, path, lang)
				if perr != nil {
					firstErr.CompareAndSwap(nil, fmt.Errorf("parse %s: %w", path, perr))

					return
				}

				done := completed.Add(1)
				if progress {
					fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, path)
				}
			}
		}()
	}

	for _, file := range files {
		if firstErr.Load() != nil {
			break
		}

		fileCh <- file
	}

	close(fileCh)
	wg.Wait()

	if errVal := firstErr.Load(); errVal != nil {
		if err, ok := errVal.(error); ok {
			return err
		}
	}

	return nil
}

// parserSet builds and reuses one front end per language. Front ends are
// safe for concurrent use, so a single instance serves every worker.
type parserSet struct {
	mu      sync.Mutex
	parsers map[uir.Language]frontend.Parser
}

func newParserSet() *parserSet {
	return &parserSet{parsers: make(map[uir.Language]frontend.Parser)}
}

func (s *parserSet) For(language uir.Language) (frontend.Parser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if parser, ok := s.parsers[language]; ok {
		return parser, nil
	}

	parser, err := frontend.New(language)
	if err != nil {
		return nil, err
	}

	s.parsers[language] = parser

	return parser, nil
}

// parseOnly parses a file and discards the tree. Used by the worker pool
// where nothing is serialized.
func parseOnly(parsers *parserSet, file, lang string) error {
	code, resolvedPath, err := readInputFile(file)
	if err != nil {
		return err
	}

	if textutil.IsBinary(code) {
		return fmt.Errorf("%w: %s", ErrBinaryFile, file)
	}

	srcLang, err := sourceLanguage(lang, resolvedPath, code)
	if err != nil {
		return err
	}

	parser, err := parsers.For(srcLang)
	if err != nil {
		return err
	}

	parsedNode, err := parser.Parse(context.Background(), resolvedPath, code)
	if err != nil {
		return err
	}

	// Keep the node alive to prevent the compiler from optimizing away the parse.
	runtime.KeepAlive(parsedNode)

	return nil
}

func parseStdin(parsers *parserSet, lang, output, format string, writer io.Writer) error {
	code, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	srcLang, err := sourceLanguage(lang, "", code)
	if err != nil {
		return err
	}

	parser, err := parsers.For(srcLang)
	if err != nil {
		return err
	}

	parsedNode, err := parser.Parse(context.Background(), "stdin", code)
	if err != nil {
		return fmt.Errorf("parse stdin: %w", err)
	}

	if format == formatNone {
		return nil
	}

	data, err := json.Marshal(parsedNode)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	out, done, err := openOutput(output, writer)
	if err != nil {
		return err
	}

	if err := emitTree(data, format, out); err != nil {
		_ = done()

		return err
	}

	return done()
}

func parseFileToWriter(parsers *parserSet, treeCache *cache.ParseCache, file, lang, format string, writer io.Writer) error {
	code, resolvedPath, err := readInputFile(file)
	if err != nil {
		return err
	}

	if textutil.IsBinary(code) {
		return fmt.Errorf("%w: %s", ErrBinaryFile, file)
	}

	srcLang, err := sourceLanguage(lang, resolvedPath, code)
	if err != nil {
		return err
	}

	parser, err := parsers.For(srcLang)
	if err != nil {
		return err
	}

	if format == formatNone {
		parsedNode, parseErr := parser.Parse(context.Background(), resolvedPath, code)
		if parseErr != nil {
			return parseErr
		}

		runtime.KeepAlive(parsedNode)

		return nil
	}

	// Identical content reuses the serialized tree of its first occurrence,
	// including the source locations recorded under that path.
	key := cache.KeyOf(code)

	data, ok := treeCache.Get(key)
	if !ok {
		parsedNode, parseErr := parser.Parse(context.Background(), resolvedPath, code)
		if parseErr != nil {
			return parseErr
		}

		data, err = json.Marshal(parsedNode)
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}

		treeCache.Put(key, data)
	}

	return emitTree(data, format, writer)
}

// emitTree writes one serialized tree in the requested format. The data
// slice may be shared with the parse cache and is never mutated.
func emitTree(data []byte, format string, writer io.Writer) error {
	switch format {
	case formatJSON:
		var indented bytes.Buffer

		if err := json.Indent(&indented, data, "", "  "); err != nil {
			return fmt.Errorf("indent tree: %w", err)
		}

		indented.WriteByte('\n')

		if _, err := writer.Write(indented.Bytes()); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}

		return nil
	case formatCompact:
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}

		if _, err := io.WriteString(writer, "\n"); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}

		return nil
	case formatNone:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedParseFmt, format)
	}
}

// openOutput resolves the destination writer. Paths ending in .lz4 are
// wrapped in a frame compressor. The returned function flushes and closes
// whatever was opened; it is a no-op for the fallback writer.
func openOutput(output string, fallback io.Writer) (io.Writer, func() error, error) {
	if output == "" {
		return fallback, func() error { return nil }, nil
	}

	outputFile, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}

	if strings.HasSuffix(output, lz4Extension) {
		compressed := lz4.NewWriter(outputFile)

		return compressed, func() error {
			if closeErr := compressed.Close(); closeErr != nil {
				outputFile.Close()

				return fmt.Errorf("close compressed output: %w", closeErr)
			}

			if closeErr := outputFile.Close(); closeErr != nil {
				return fmt.Errorf("close output file: %w", closeErr)
			}

			return nil
		}, nil
	}

	return outputFile, func() error {
		if closeErr := outputFile.Close(); closeErr != nil {
			return fmt.Errorf("close output file: %w", closeErr)
		}

		return nil
	}, nil
}

// collectSourceFiles walks dir and returns every file whose detected
// language has a working front end. Hidden directories are skipped.
func collectSourceFiles(dir string) ([]string, error) {
	supported := make(map[uir.Language]bool, len(frontend.Supported()))
	for _, language := range frontend.Supported() {
		supported[language] = true
	}

	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if isHiddenDir(filepath.Base(path)) {
				return filepath.SkipDir
			}

			return nil
		}

		if lang, ok := frontend.Detect(path, nil); ok && supported[lang] {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return files, nil
}

// isHiddenDir returns true for directories that start with a dot (e.g. .git),
// except for "." and ".." which are filesystem navigation entries.
func isHiddenDir(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
