package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/internal/config"
	"github.com/refgauge/refgauge/internal/ingest"
	"github.com/refgauge/refgauge/internal/report"
	"github.com/refgauge/refgauge/pkg/syntax"
)

// LintCommand holds the flags for the lint command.
type LintCommand struct {
	configPath string
	format     string
	output     string
	noColor    bool
}

// NewLintCommand creates and configures the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &LintCommand{}

	cobraCmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Run lint rules and complexity analysis over source files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path (default: .refgauge.yaml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatText, "Output format: text, json, or yaml")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the lint command.
func (c *LintCommand) Run(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	loader := ingest.NewLoader(cfg.Ingest.MaxFileSize, logger)
	linter := analysis.NewLinter(cfg.RuleConfig(), logger)

	results := lintFiles(loader, linter, args)

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	switch c.format {
	case FormatJSON:
		return report.WriteJSON(out, results)
	case FormatYAML:
		return report.WriteYAML(out, results)
	default:
		renderer := report.NewRenderer(out, c.noColor)
		for _, result := range results {
			renderer.RenderFileResult(result)
		}

		return nil
	}
}

// lintFiles loads, parses, and checks every path. Unloadable files and
// unsupported languages produce degraded entries instead of aborting.
func lintFiles(loader *ingest.Loader, linter *analysis.Linter, paths []string) []report.FileResult {
	files := loader.Load(paths)

	results := make([]report.FileResult, 0, len(files))

	for _, file := range files {
		result := report.FileResult{Path: file.Path, Language: file.Language}

		if file.Err != nil {
			result.Error = file.Err.Error()
			results = append(results, result)

			continue
		}

		// A nil tree is fine here: rules and metrics degrade to
		// empty and neutral results.
		tree, _ := syntax.Parse(file.Content, file.Language)

		result.Issues = linter.Run(tree, file.Content)
		result.Metrics = analysis.Measure(tree, file.Content)
		results = append(results, result)
	}

	return results
}
