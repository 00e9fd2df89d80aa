package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refgauge/refgauge/internal/config"
	"github.com/refgauge/refgauge/internal/ingest"
	"github.com/refgauge/refgauge/internal/report"
	"github.com/refgauge/refgauge/internal/scoring"
)

// ScoreCommand holds the flags for the score command.
type ScoreCommand struct {
	configPath string
	format     string
	output     string
	plotPath   string
	language   string
	noColor    bool
}

// NewScoreCommand creates and configures the score command.
func NewScoreCommand() *cobra.Command {
	cmd := &ScoreCommand{}

	cobraCmd := &cobra.Command{
		Use:   "score <original> <refactored>",
		Short: "Compare an original and a refactored file",
		Args:  cobra.ExactArgs(2),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path (default: .refgauge.yaml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatText, "Output format: text, json, or yaml")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().StringVar(&cmd.plotPath, "plot", "", "Write an HTML comparison chart to this path")
	cobraCmd.Flags().StringVarP(&cmd.language, "language", "l", "", "Language tag (default: detected from the original file)")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the score command.
func (c *ScoreCommand) Run(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	loader := ingest.NewLoader(cfg.Ingest.MaxFileSize, logger)

	original, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load original: %w", err)
	}

	refactored, err := loader.LoadFile(args[1])
	if err != nil {
		return fmt.Errorf("load refactored: %w", err)
	}

	language := c.language
	if language == "" {
		language = original.Language
	}

	scorer := scoring.NewScorer(cfg.ScorerConfig(), logger)
	comparison := scorer.CompareCode(original.Content, refactored.Content, language)

	if c.plotPath != "" {
		if err := c.writePlot(comparison); err != nil {
			return err
		}
	}

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	switch c.format {
	case FormatJSON:
		return report.WriteJSON(out, comparison)
	case FormatYAML:
		return report.WriteYAML(out, comparison)
	default:
		report.NewRenderer(out, c.noColor).RenderComparison(comparison)

		return nil
	}
}

func (c *ScoreCommand) writePlot(comparison scoring.ScoreComparison) error {
	plotOut, closePlot, err := openOutput(c.plotPath)
	if err != nil {
		return err
	}
	defer func() { _ = closePlot() }()

	if err := report.WriteComparisonPlot(plotOut, comparison); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}

	return nil
}
