package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/coalesce/internal/config"
)

// ErrProjectExists reports an init target that already carries a project config.
var ErrProjectExists = errors.New("project already initialized")

func initCmd() *cobra.Command {
	var name string

	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a translation project",
		Long: `Create the project layout for a translation run: a .coalesce/config.yaml
with defaults and a src/ directory for source files.

Examples:
  coalesce init                      # Initialize the current directory
  coalesce init legacy-port          # Initialize ./legacy-port
  coalesce init --name billing .     # Override the project name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			return runInit(dir, name, force)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (default: directory name)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func runInit(dir, name string, force bool) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}

	if name == "" {
		name = filepath.Base(absDir)
	}

	if _, err := os.Stat(config.Path(dir)); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrProjectExists, config.Path(dir))
	}

	path, err := config.Write(dir, config.Default(name))
	if err != nil {
		return err
	}

	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o750); err != nil {
		return fmt.Errorf("create source directory: %w", err)
	}

	successf("Initialized project %q", name)
	successf("  config: %s", path)
	successf("  sources: %s", srcDir)

	return nil
}
