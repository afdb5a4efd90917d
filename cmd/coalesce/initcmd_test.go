package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sumatoshi-tech/coalesce/internal/config"
)

func TestInitScaffoldsProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := runInit(dir, "demo", false)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	info, statErr := os.Stat(filepath.Join(dir, "src"))
	if statErr != nil || !info.IsDir() {
		t.Errorf("src directory missing: %v", statErr)
	}

	cfg, loadErr := config.Load(config.Path(dir))
	if loadErr != nil {
		t.Fatalf("failed to load scaffolded config: %v", loadErr)
	}

	if cfg.ProjectName != "demo" {
		t.Errorf("project name = %q, want demo", cfg.ProjectName)
	}
}

func TestInitRefusesExistingProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := runInit(dir, "demo", false)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	err = runInit(dir, "other", false)
	if !errors.Is(err, ErrProjectExists) {
		t.Errorf("second init error = %v, want ErrProjectExists", err)
	}

	// --force replaces the existing config.
	err = runInit(dir, "renamed", true)
	if err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	cfg, loadErr := config.Load(config.Path(dir))
	if loadErr != nil {
		t.Fatalf("failed to load overwritten config: %v", loadErr)
	}

	if cfg.ProjectName != "renamed" {
		t.Errorf("project name = %q, want renamed", cfg.ProjectName)
	}
}

func TestInitDefaultsNameToDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := runInit(dir, "", false)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, loadErr := config.Load(config.Path(dir))
	if loadErr != nil {
		t.Fatalf("failed to load scaffolded config: %v", loadErr)
	}

	if cfg.ProjectName != filepath.Base(dir) {
		t.Errorf("project name = %q, want %q", cfg.ProjectName, filepath.Base(dir))
	}
}
