package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigDir is the project directory holding the config file.
const ConfigDir = ".coalesce"

// configName is the config file name without extension.
const configName = "config"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for coalesce settings.
const envPrefix = "COALESCE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Path returns the location of the project config file under dir.
func Path(dir string) string {
	return filepath.Join(dir, ConfigDir, configName+"."+configType)
}

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise the config is searched in ./.coalesce and $HOME/.coalesce.
// A missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(ConfigDir)

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(filepath.Join(home, ConfigDir))
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

// Write persists cfg as the project config under dir, creating the
// .coalesce directory. Used by the init scaffold.
func Write(dir string, cfg *Config) (string, error) {
	configDir := filepath.Join(dir, ConfigDir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	viperCfg := viper.New()
	viperCfg.Set("version", cfg.Version)
	viperCfg.Set("project_name", cfg.ProjectName)
	viperCfg.Set("source_languages", cfg.SourceLanguages)
	viperCfg.Set("target_languages", cfg.TargetLanguages)
	viperCfg.Set("preserve_legacy_patterns", cfg.PreserveLegacyPatterns)
	viperCfg.Set("parse.workers", cfg.Parse.Workers)
	viperCfg.Set("parse.cache_size", cfg.Parse.CacheSize)

	if cfg.Translate.TargetEcosystem != "" {
		viperCfg.Set("translate.target_ecosystem", cfg.Translate.TargetEcosystem)
	}

	path := Path(dir)
	if err := viperCfg.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("version", DefaultVersion)
	viperCfg.SetDefault("project_name", "")
	viperCfg.SetDefault("source_languages", DefaultSourceLanguages())
	viperCfg.SetDefault("target_languages", DefaultTargetLanguages())
	viperCfg.SetDefault("preserve_legacy_patterns", DefaultPreserveLegacyPatterns)
	viperCfg.SetDefault("translate.target_ecosystem", "")
	viperCfg.SetDefault("translate.show_uir", false)
	viperCfg.SetDefault("parse.workers", DefaultParseWorkers)
	viperCfg.SetDefault("parse.cache_size", DefaultParseCacheSize)
}

// Default returns the configuration a fresh project starts with.
func Default(projectName string) *Config {
	return &Config{
		Version:                DefaultVersion,
		ProjectName:            projectName,
		SourceLanguages:        DefaultSourceLanguages(),
		TargetLanguages:        DefaultTargetLanguages(),
		PreserveLegacyPatterns: DefaultPreserveLegacyPatterns,
		Parse: ParseConfig{
			Workers:   DefaultParseWorkers,
			CacheSize: DefaultParseCacheSize,
		},
	}
}
