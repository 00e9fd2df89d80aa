package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/refgauge/refgauge/internal/analysis"
)

// configName is the config file name without extension.
const configName = ".refgauge"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for refgauge settings.
const envPrefix = "REFGAUGE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// DefaultMaxFileSize is the largest file accepted for analysis (5 MiB).
const DefaultMaxFileSize = 5 * 1024 * 1024

// Default metric weights.
const (
	DefaultWeightSimilarity      = 0.3
	DefaultWeightNaturalness     = 0.2
	DefaultWeightComplexity      = 0.3
	DefaultWeightMaintainability = 0.2
	DefaultWeightLinesOfCode     = 0.0
)

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
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
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
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

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("rules.max_function_length", analysis.DefaultMaxFunctionLength)
	viperCfg.SetDefault("rules.max_args", analysis.DefaultMaxArgs)
	viperCfg.SetDefault("rules.max_nesting_depth", analysis.DefaultMaxNestingDepth)

	viperCfg.SetDefault("scoring.weights.bleu", DefaultWeightSimilarity)
	viperCfg.SetDefault("scoring.weights.perplexity", DefaultWeightNaturalness)
	viperCfg.SetDefault("scoring.weights.cyclomatic_complexity", DefaultWeightComplexity)
	viperCfg.SetDefault("scoring.weights.maintainability_index", DefaultWeightMaintainability)
	viperCfg.SetDefault("scoring.weights.lines_of_code", DefaultWeightLinesOfCode)
	viperCfg.SetDefault("scoring.enable_similarity", true)
	viperCfg.SetDefault("scoring.enable_code_metrics", true)
	viperCfg.SetDefault("scoring.enable_naturalness", false)

	viperCfg.SetDefault("ingest.max_file_size", DefaultMaxFileSize)

	viperCfg.SetDefault("log.level", "info")
}
