package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/internal/report"
	"github.com/refgauge/refgauge/internal/scoring"
)

func sampleComparison() scoring.ScoreComparison {
	scorer := scoring.NewScorer(scoring.DefaultConfig(), nil)

	return scorer.CompareCode("a = 1\nb = 2\n", "a = 1\n", "python")
}

func TestRenderFileResult(t *testing.T) {
	var buf bytes.Buffer

	renderer := report.NewRenderer(&buf, true)
	renderer.RenderFileResult(report.FileResult{
		Path:     "main.py",
		Language: "python",
		Issues: []analysis.Issue{
			{Line: 3, Type: "Unused Variable", Message: "Variable 'x' assigned but not used", Severity: analysis.SeverityWarning},
		},
		Metrics: analysis.ComplexityMetrics{Cyclomatic: 2, LOC: 10, Nesting: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "main.py (python)")
	assert.Contains(t, out, "3: [Unused Variable]")
	assert.Contains(t, out, "complexity: 2, loc: 10, nesting: 1")
}

func TestRenderFileResultNoIssues(t *testing.T) {
	var buf bytes.Buffer

	renderer := report.NewRenderer(&buf, true)
	renderer.RenderFileResult(report.FileResult{Path: "ok.py", Language: "python"})

	assert.Contains(t, buf.String(), "no issues")
}

func TestRenderComparison(t *testing.T) {
	var buf bytes.Buffer

	renderer := report.NewRenderer(&buf, true)
	renderer.RenderComparison(sampleComparison())

	out := buf.String()
	assert.Contains(t, out, "bleu")
	assert.Contains(t, out, "cyclomatic_complexity")
	assert.Contains(t, out, "Overall score:")
	assert.Contains(t, out, "Improvement:")
	assert.Contains(t, out, "Diff: +0/-1 lines")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteJSON(&buf, sampleComparison()))

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "original_scores")
	assert.Contains(t, decoded, "overall_score")
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteYAML(&buf, sampleComparison()))
	assert.Contains(t, buf.String(), "overall_score:")
}

func TestWriteComparisonPlot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteComparisonPlot(&buf, sampleComparison()))

	out := buf.String()
	assert.True(t, strings.Contains(out, "echarts"), "plot output should embed echarts")
	assert.Contains(t, out, "Refactoring quality comparison")
}
