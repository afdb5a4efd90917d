package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/coalesce/internal/config"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := config.Default("demo")
	require.NoError(t, cfg.Validate())

	noTargets := config.Default("demo")
	noTargets.TargetLanguages = nil
	require.ErrorIs(t, noTargets.Validate(), config.ErrNoTargetLanguages)

	badTarget := config.Default("demo")
	badTarget.TargetLanguages = []string{"brainfuck"}
	require.Error(t, badTarget.Validate())

	negWorkers := config.Default("demo")
	negWorkers.Parse.Workers = -1
	require.ErrorIs(t, negWorkers.Validate(), config.ErrInvalidWorkers)

	badSize := config.Default("demo")
	badSize.Parse.CacheSize = "lots"
	require.Error(t, badSize.Validate())
}

func TestConfig_CacheBytes(t *testing.T) {
	t.Parallel()

	cfg := config.Default("demo")
	cfg.Parse.CacheSize = "64 MB"

	size, err := cfg.CacheBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(64_000_000), size)

	cfg.Parse.CacheSize = ""

	size, err = cfg.CacheBytes()
	require.NoError(t, err)
	assert.Positive(t, size)
}

func TestConfig_LanguageAliases(t *testing.T) {
	t.Parallel()

	cfg := config.Default("demo")
	cfg.SourceLanguages = []string{"js", "py", "c++", "f#"}

	assert.NoError(t, cfg.Validate())
}
