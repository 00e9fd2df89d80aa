package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/internal/config"
	"github.com/refgauge/refgauge/internal/scoring"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Rules.MaxFunctionLength)
	assert.Equal(t, 3, cfg.Rules.MaxArgs)
	assert.Equal(t, 3, cfg.Rules.MaxNestingDepth)
	assert.True(t, cfg.Scoring.EnableSimilarity)
	assert.True(t, cfg.Scoring.EnableCodeMetrics)
	assert.False(t, cfg.Scoring.EnableNaturalness)
	assert.InDelta(t, 0.3, cfg.Scoring.Weights["bleu"], 1e-9)
	assert.InDelta(t, 0.0, cfg.Scoring.Weights["lines_of_code"], 1e-9)
	assert.EqualValues(t, config.DefaultMaxFileSize, cfg.Ingest.MaxFileSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refgauge.yaml")

	content := []byte(
		"rules:\n" +
			"  max_args: 5\n" +
			"scoring:\n" +
			"  enable_naturalness: true\n" +
			"log:\n" +
			"  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rules.MaxArgs)
	assert.Equal(t, 50, cfg.Rules.MaxFunctionLength)
	assert.True(t, cfg.Scoring.EnableNaturalness)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	base := func() *config.Config {
		return &config.Config{
			Rules:   config.RulesConfig{MaxFunctionLength: 50, MaxArgs: 3, MaxNestingDepth: 3},
			Scoring: config.ScoringConfig{Weights: map[string]float64{"bleu": 0.3}},
			Ingest:  config.IngestConfig{MaxFileSize: 1024},
			Log:     config.LogConfig{Level: "info"},
		}
	}

	cfg := base()
	cfg.Rules.MaxArgs = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidMaxArgs)

	cfg = base()
	cfg.Rules.MaxFunctionLength = -1
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidMaxFunctionLength)

	cfg = base()
	cfg.Rules.MaxNestingDepth = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidMaxNestingDepth)

	cfg = base()
	cfg.Scoring.Weights["bleu"] = -0.1
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidWeight)

	cfg = base()
	cfg.Ingest.MaxFileSize = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidMaxFileSize)

	cfg = base()
	cfg.Log.Level = "verbose"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogLevel)

	assert.NoError(t, base().Validate())
}

func TestRuleConfigConversion(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Rules: config.RulesConfig{MaxFunctionLength: 40, MaxArgs: 4, MaxNestingDepth: 2},
	}

	ruleCfg := cfg.RuleConfig()
	assert.Equal(t, 40, ruleCfg.MaxFunctionLength)
	assert.Equal(t, 4, ruleCfg.MaxArgs)
	assert.Equal(t, 2, ruleCfg.MaxNestingDepth)
}

func TestScorerConfigConversion(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Scoring: config.ScoringConfig{
			Weights: map[string]float64{
				"bleu":      0.5,
				"not_a_key": 0.9,
			},
			EnableSimilarity:  true,
			EnableCodeMetrics: true,
		},
	}

	scorerCfg := cfg.ScorerConfig()
	assert.InDelta(t, 0.5, scorerCfg.Weights[scoring.MetricBLEU], 1e-9)
	assert.NotContains(t, scorerCfg.Weights, scoring.MetricType("not_a_key"))
	assert.True(t, scorerCfg.EnableSimilarity)
	assert.True(t, scorerCfg.EnableCodeMetrics)
	assert.False(t, scorerCfg.EnableNaturalness)
}
