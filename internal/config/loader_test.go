package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/coalesce/internal/config"
)

func TestLoad_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	emptyPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte(""), 0o600))

	cfg, err := config.Load(emptyPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultVersion, cfg.Version)
	assert.Empty(t, cfg.ProjectName)
	assert.Equal(t, config.DefaultSourceLanguages(), cfg.SourceLanguages)
	assert.Equal(t, config.DefaultTargetLanguages(), cfg.TargetLanguages)
	assert.True(t, cfg.PreserveLegacyPatterns)
	assert.Equal(t, config.DefaultParseWorkers, cfg.Parse.Workers)
	assert.Equal(t, config.DefaultParseCacheSize, cfg.Parse.CacheSize)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	content := `version: "0.2.0"
project_name: legacy-billing
source_languages:
  - cobol
  - vb
target_languages:
  - go
preserve_legacy_patterns: false
translate:
  target_ecosystem: stdlib
parse:
  workers: 4
  cache_size: 64 MB
`
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "0.2.0", cfg.Version)
	assert.Equal(t, "legacy-billing", cfg.ProjectName)
	assert.Equal(t, []string{"cobol", "vb"}, cfg.SourceLanguages)
	assert.Equal(t, []string{"go"}, cfg.TargetLanguages)
	assert.False(t, cfg.PreserveLegacyPatterns)
	assert.Equal(t, "stdlib", cfg.Translate.TargetEcosystem)
	assert.Equal(t, 4, cfg.Parse.Workers)
	assert.Equal(t, "64 MB", cfg.Parse.CacheSize)
}

func TestLoad_RejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	content := `source_languages:
  - klingon
`
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	_, err := config.Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source language")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: [unclosed"), 0o600))

	_, err := config.Load(cfgPath)
	require.Error(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := config.Default("demo")
	cfg.Translate.TargetEcosystem = "vue"

	path, err := config.Write(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.ConfigDir, "config.yaml"), path)

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", loaded.ProjectName)
	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.SourceLanguages, loaded.SourceLanguages)
	assert.Equal(t, cfg.TargetLanguages, loaded.TargetLanguages)
	assert.True(t, loaded.PreserveLegacyPatterns)
	assert.Equal(t, "vue", loaded.Translate.TargetEcosystem)
}
