// Package config loads and validates coalesce project configuration. The
// config lives in .coalesce/config.yaml, can be overridden through
// COALESCE_* environment variables, and falls back to defaults when no
// file exists.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// Sentinel validation errors.
var (
	ErrNoTargetLanguages = errors.New("at least one target language is required")
	ErrInvalidWorkers    = errors.New("parse workers must not be negative")
)

// Default configuration values.
const (
	DefaultVersion                = "0.1.0"
	DefaultPreserveLegacyPatterns = true
	DefaultParseWorkers           = 0
	DefaultParseCacheSize         = "256 MB"
)

// DefaultSourceLanguages returns the languages a fresh project translates
// from.
func DefaultSourceLanguages() []string { return []string{"javascript", "python"} }

// DefaultTargetLanguages returns the languages a fresh project translates
// to.
func DefaultTargetLanguages() []string { return []string{"python", "go"} }

// Config is the top-level configuration for a coalesce project.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Version                string          `mapstructure:"version"`
	ProjectName            string          `mapstructure:"project_name"`
	SourceLanguages        []string        `mapstructure:"source_languages"`
	TargetLanguages        []string        `mapstructure:"target_languages"`
	PreserveLegacyPatterns bool            `mapstructure:"preserve_legacy_patterns"`
	Translate              TranslateConfig `mapstructure:"translate"`
	Parse                  ParseConfig     `mapstructure:"parse"`
}

// TranslateConfig holds defaults for the translate command.
type TranslateConfig struct {
	TargetEcosystem string `mapstructure:"target_ecosystem"`
	ShowUIR         bool   `mapstructure:"show_uir"`
}

// ParseConfig holds batch parsing knobs. CacheSize uses humanize format
// (e.g. "256 MB", "1GiB").
type ParseConfig struct {
	Workers   int    `mapstructure:"workers"`
	CacheSize string `mapstructure:"cache_size"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	for _, name := range c.SourceLanguages {
		if _, err := uir.ParseLanguage(name); err != nil {
			return fmt.Errorf("source language: %w", err)
		}
	}

	if len(c.TargetLanguages) == 0 {
		return ErrNoTargetLanguages
	}

	for _, name := range c.TargetLanguages {
		if _, err := uir.ParseLanguage(name); err != nil {
			return fmt.Errorf("target language: %w", err)
		}
	}

	if c.Parse.Workers < 0 {
		return ErrInvalidWorkers
	}

	if _, err := c.CacheBytes(); err != nil {
		return err
	}

	return nil
}

// CacheBytes resolves the parse cache size to bytes. An empty setting
// resolves to the default.
func (c *Config) CacheBytes() (int64, error) {
	size := c.Parse.CacheSize
	if size == "" {
		size = DefaultParseCacheSize
	}

	parsed, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("parse cache size %q: %w", size, err)
	}

	return clampInt64(parsed), nil
}

func clampInt64(v uint64) int64 {
	if v > uint64(math.MaxInt64) {
		return math.MaxInt64
	}

	return int64(v)
}
