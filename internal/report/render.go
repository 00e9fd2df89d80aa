// Package report renders analysis results and score comparisons for
// terminals and machine-readable outputs.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/internal/scoring"
)

// Verdict thresholds on the overall 0-100 score.
const (
	verdictExcellent = 85.0
	verdictGood      = 70.0
	verdictFair      = 50.0
)

// metricOrder fixes row order in comparison tables.
var metricOrder = []scoring.MetricType{
	scoring.MetricBLEU,
	scoring.MetricPerplexity,
	scoring.MetricCyclomaticComplexity,
	scoring.MetricMaintainabilityIndex,
	scoring.MetricLinesOfCode,
}

// FileResult pairs one analyzed file with its findings.
type FileResult struct {
	Path     string                     `json:"path" yaml:"path"`
	Language string                     `json:"language" yaml:"language"`
	Issues   []analysis.Issue           `json:"issues" yaml:"issues"`
	Metrics  analysis.ComplexityMetrics `json:"metrics" yaml:"metrics"`
	Error    string                     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Renderer writes human-readable reports.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a Renderer writing to w. Set noColor to strip ANSI
// sequences, e.g. when the output is piped.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	return &Renderer{w: w}
}

// RenderFileResult prints one file's issues and complexity metrics.
func (r *Renderer) RenderFileResult(result FileResult) {
	fmt.Fprintf(r.w, "%s (%s)\n", result.Path, result.Language)

	if result.Error != "" {
		color.New(color.FgRed).Fprintf(r.w, "  error: %s\n", result.Error)

		return
	}

	if len(result.Issues) == 0 {
		color.New(color.FgGreen).Fprintf(r.w, "  no issues\n")
	}

	for _, issue := range result.Issues {
		c := color.New(color.FgYellow)
		if issue.Severity == analysis.SeverityError {
			c = color.New(color.FgRed)
		}

		c.Fprintf(r.w, "  %d: [%s] %s\n", issue.Line, issue.Type, issue.Message)
	}

	fmt.Fprintf(r.w, "  complexity: %d, loc: %d, nesting: %d\n",
		result.Metrics.Cyclomatic, result.Metrics.LOC, result.Metrics.Nesting)
}

// RenderComparison prints a per-metric score table, the overall score with
// its verdict, and the line diff summary.
func (r *Renderer) RenderComparison(comparison scoring.ScoreComparison) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Original", "Refactored", "Normalized", "Direction"})

	for _, metricType := range metricOrder {
		original, okOrig := comparison.OriginalScores[metricType]
		refactored, okRef := comparison.RefactoredScores[metricType]

		if !okOrig && !okRef {
			continue
		}

		tbl.AppendRow(table.Row{
			string(metricType),
			fmt.Sprintf("%.2f", original.Score),
			fmt.Sprintf("%.2f", refactored.Score),
			fmt.Sprintf("%.2f", scoring.Normalize(metricType, refactored.Score)),
			directionLabel(refactored.Improved),
		})
	}

	fmt.Fprintln(r.w, tbl.Render())

	verdict, verdictColor := describeScore(comparison.OverallScore)
	fmt.Fprintf(r.w, "Overall score: ")
	verdictColor.Fprintf(r.w, "%.1f (%s)\n", comparison.OverallScore, verdict)
	fmt.Fprintf(r.w, "Improvement: %+.1f%%\n", comparison.OverallImprovement)

	if comparison.Diff.Changed() {
		fmt.Fprintf(r.w, "Diff: +%d/-%d lines\n",
			comparison.Diff.LinesInserted, comparison.Diff.LinesDeleted)
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// WriteYAML encodes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}

func directionLabel(improved *bool) string {
	switch {
	case improved == nil:
		return "-"
	case *improved:
		return "improved"
	default:
		return "degraded"
	}
}

// describeScore maps an overall score onto a verdict word and its color.
func describeScore(score float64) (string, *color.Color) {
	switch {
	case score >= verdictExcellent:
		return "excellent", color.New(color.FgGreen)
	case score >= verdictGood:
		return "good", color.New(color.FgGreen)
	case score >= verdictFair:
		return "fair", color.New(color.FgYellow)
	default:
		return "poor", color.New(color.FgRed)
	}
}
