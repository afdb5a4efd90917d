package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors surfaced when a path argument cannot name a readable file.
var (
	ErrBlankPath  = errors.New("blank path argument")
	ErrPathHasNUL = errors.New("path argument contains a NUL byte")
	ErrPathIsDir  = errors.New("path names a directory, not a file")
)

// readInputFile normalizes a user-supplied path and reads the file it
// names. The normalized path comes back so messages can show what was
// actually opened.
func readInputFile(path string) ([]byte, string, error) {
	resolved, err := resolveInputPath(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %q: %w", path, err)
	}

	//nolint:gosec // resolved is cleaned, absolute and stat-checked above.
	content, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", resolved, err)
	}

	return content, resolved, nil
}

// resolveInputPath rejects path arguments that cannot name a regular
// file, then returns the cleaned absolute form.
func resolveInputPath(path string) (string, error) {
	switch {
	case strings.TrimSpace(path) == "":
		return "", ErrBlankPath
	case strings.ContainsRune(path, 0):
		return "", ErrPathHasNUL
	}

	resolved, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrPathIsDir, resolved)
	}

	return resolved, nil
}
