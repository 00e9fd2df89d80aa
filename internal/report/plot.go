package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/refgauge/refgauge/internal/scoring"
)

const (
	plotWidth  = "900px"
	plotHeight = "500px"
)

// WriteComparisonPlot renders a comparison as an HTML bar chart of the
// normalized per-metric scores for both snapshots.
func WriteComparisonPlot(w io.Writer, comparison scoring.ScoreComparison) error {
	var (
		labels         []string
		originalData   []opts.BarData
		refactoredData []opts.BarData
	)

	for _, metricType := range metricOrder {
		original, okOrig := comparison.OriginalScores[metricType]
		refactored, okRef := comparison.RefactoredScores[metricType]

		if !okOrig && !okRef {
			continue
		}

		labels = append(labels, string(metricType))
		originalData = append(originalData, opts.BarData{
			Value: scoring.Normalize(metricType, original.Score),
		})
		refactoredData = append(refactoredData, opts.BarData{
			Value: scoring.Normalize(metricType, refactored.Score),
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  plotWidth,
			Height: plotHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Refactoring quality comparison",
			Subtitle: fmt.Sprintf("overall %.1f, improvement %+.1f%%",
				comparison.OverallScore, comparison.OverallImprovement),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Normalized score"}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("Original", originalData)
	bar.AddSeries("Refactored", refactoredData)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}
