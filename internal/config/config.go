// Package config defines refgauge's configuration: rule thresholds, metric
// weights and flags, ingestion limits, and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/internal/scoring"
)

// Config is the top-level configuration struct for refgauge.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Rules   RulesConfig   `mapstructure:"rules"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Ingest  IngestConfig  `mapstructure:"ingest"`
	Log     LogConfig     `mapstructure:"log"`
}

// RulesConfig holds the lint rule thresholds.
type RulesConfig struct {
	MaxFunctionLength int `mapstructure:"max_function_length"`
	MaxArgs           int `mapstructure:"max_args"`
	MaxNestingDepth   int `mapstructure:"max_nesting_depth"`
}

// ScoringConfig holds metric weights and per-metric enable flags.
type ScoringConfig struct {
	Weights           map[string]float64 `mapstructure:"weights"`
	EnableSimilarity  bool               `mapstructure:"enable_similarity"`
	EnableCodeMetrics bool               `mapstructure:"enable_code_metrics"`
	EnableNaturalness bool               `mapstructure:"enable_naturalness"`
}

// IngestConfig holds file loading limits.
type IngestConfig struct {
	// MaxFileSize is the largest file accepted for analysis, in bytes.
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMaxFunctionLength indicates the function length limit is not positive.
	ErrInvalidMaxFunctionLength = errors.New("rules.max_function_length must be positive")
	// ErrInvalidMaxArgs indicates the argument limit is not positive.
	ErrInvalidMaxArgs = errors.New("rules.max_args must be positive")
	// ErrInvalidMaxNestingDepth indicates the nesting limit is not positive.
	ErrInvalidMaxNestingDepth = errors.New("rules.max_nesting_depth must be positive")
	// ErrInvalidWeight indicates a metric weight is negative.
	ErrInvalidWeight = errors.New("scoring weight must be non-negative")
	// ErrInvalidMaxFileSize indicates the file size limit is not positive.
	ErrInvalidMaxFileSize = errors.New("ingest.max_file_size must be positive")
	// ErrInvalidLogLevel indicates the log level is unrecognized.
	ErrInvalidLogLevel = errors.New("log.level must be one of debug, info, warn, error")
)

// Validate checks every setting and returns the first violation found.
func (c *Config) Validate() error {
	if c.Rules.MaxFunctionLength <= 0 {
		return ErrInvalidMaxFunctionLength
	}

	if c.Rules.MaxArgs <= 0 {
		return ErrInvalidMaxArgs
	}

	if c.Rules.MaxNestingDepth <= 0 {
		return ErrInvalidMaxNestingDepth
	}

	for name, weight := range c.Scoring.Weights {
		if weight < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidWeight, name)
		}
	}

	if c.Ingest.MaxFileSize <= 0 {
		return ErrInvalidMaxFileSize
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return nil
}

// RuleConfig converts the rule thresholds into the analysis layer's form.
func (c *Config) RuleConfig() analysis.Config {
	return analysis.Config{
		MaxFunctionLength: c.Rules.MaxFunctionLength,
		MaxArgs:           c.Rules.MaxArgs,
		MaxNestingDepth:   c.Rules.MaxNestingDepth,
	}
}

// ScorerConfig converts the scoring settings into the scoring layer's form.
// Unknown weight keys are dropped; metrics without a configured weight keep
// the default of zero contribution.
func (c *Config) ScorerConfig() scoring.Config {
	weights := make(map[scoring.MetricType]float64, len(c.Scoring.Weights))

	for name, weight := range c.Scoring.Weights {
		switch metricType := scoring.MetricType(name); metricType {
		case scoring.MetricBLEU, scoring.MetricPerplexity,
			scoring.MetricCyclomaticComplexity,
			scoring.MetricMaintainabilityIndex, scoring.MetricLinesOfCode:
			weights[metricType] = weight
		}
	}

	return scoring.Config{
		Weights:           weights,
		EnableSimilarity:  c.Scoring.EnableSimilarity,
		EnableCodeMetrics: c.Scoring.EnableCodeMetrics,
		EnableNaturalness: c.Scoring.EnableNaturalness,
	}
}
