package scoring

import (
	"strings"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/pkg/mathutil"
	"github.com/refgauge/refgauge/pkg/syntax"
)

// Maintainability penalty and reward caps.
const (
	maintainabilityBase     = 100.0
	complexityPenaltyWeight = 2.0
	complexityPenaltyCap    = 40.0
	locPenaltyDivisor       = 10.0
	locPenaltyCap           = 30.0
	commentRewardWeight     = 50.0
	commentRewardCap        = 20.0
)

// CyclomaticMetric scores a snapshot by its cyclomatic complexity.
// The raw decision-point count is reported here; mapping onto the common
// 0-100 scale happens in the scorer.
type CyclomaticMetric struct{}

// Type implements Metric.
func (CyclomaticMetric) Type() MetricType { return MetricCyclomaticComplexity }

// Description implements Metric.
func (CyclomaticMetric) Description() string {
	return "Code complexity through control flow (lower is better)"
}

// HigherIsBetter implements Metric.
func (CyclomaticMetric) HigherIsBetter() bool { return false }

// Calculate implements Metric. Unparseable code scores the neutral
// baseline of 1.
func (m CyclomaticMetric) Calculate(code, language string) MetricResult {
	tree := parseLenient(code, language)

	complexity := analysis.Cyclomatic(tree)

	return MetricResult{
		Type:        m.Type(),
		Score:       float64(complexity),
		Description: m.Description(),
		Details: map[string]any{
			"cyclomatic_complexity": complexity,
			"nesting_depth":         analysis.NestingDepth(tree),
		},
	}
}

// MaintainabilityMetric estimates how maintainable a snapshot is on a
// 0-100 scale from its complexity, size, and comment density.
type MaintainabilityMetric struct{}

// Type implements Metric.
func (MaintainabilityMetric) Type() MetricType { return MetricMaintainabilityIndex }

// Description implements Metric.
func (MaintainabilityMetric) Description() string {
	return "Overall maintainability score (0-100, higher is better)"
}

// HigherIsBetter implements Metric.
func (MaintainabilityMetric) HigherIsBetter() bool { return true }

// Calculate implements Metric. The same heuristic formula is used for
// every language so scores stay comparable across languages.
func (m MaintainabilityMetric) Calculate(code, language string) MetricResult {
	tree := parseLenient(code, language)

	complexity := analysis.Cyclomatic(tree)
	loc := analysis.CountLOC(code)
	commentRatio := lineCommentRatio(code, language)

	score := maintainabilityBase
	score -= mathutil.MinFloat(float64(complexity)*complexityPenaltyWeight, complexityPenaltyCap)
	score -= mathutil.MinFloat(float64(loc)/locPenaltyDivisor, locPenaltyCap)
	score += mathutil.MinFloat(commentRatio*commentRewardWeight, commentRewardCap)

	score = mathutil.Clamp(score, 0, 100)

	return MetricResult{
		Type:        m.Type(),
		Score:       score,
		Description: m.Description(),
		Details: map[string]any{
			"cyclomatic_complexity": complexity,
			"lines_of_code":         loc,
			"comment_ratio":         commentRatio,
		},
	}
}

// LinesOfCodeMetric scores a snapshot by its source line count, excluding
// blank and comment-only lines.
type LinesOfCodeMetric struct{}

// Type implements Metric.
func (LinesOfCodeMetric) Type() MetricType { return MetricLinesOfCode }

// Description implements Metric.
func (LinesOfCodeMetric) Description() string {
	return "Source lines of code (lower is better)"
}

// HigherIsBetter implements Metric.
func (LinesOfCodeMetric) HigherIsBetter() bool { return false }

// Calculate implements Metric. Comment detection is a prefix check with
// the language's single-line comment token.
func (m LinesOfCodeMetric) Calculate(code, language string) MetricResult {
	commentToken := syntax.LineCommentToken(language)

	total := 0
	blank := 0
	comments := 0

	if code != "" {
		for _, line := range strings.Split(code, "\n") {
			total++

			trimmed := strings.TrimSpace(line)

			switch {
			case trimmed == "":
				blank++
			case strings.HasPrefix(trimmed, commentToken):
				comments++
			}
		}
	}

	sloc := total - blank - comments

	return MetricResult{
		Type:        m.Type(),
		Score:       float64(sloc),
		Description: m.Description(),
		Details: map[string]any{
			"sloc":     sloc,
			"total":    total,
			"comments": comments,
			"blank":    blank,
		},
	}
}

// parseLenient parses code, treating every failure as "no tree". The
// complexity helpers define neutral results for a nil tree.
func parseLenient(code, language string) *syntax.Tree {
	tree, err := syntax.Parse(code, language)
	if err != nil {
		return nil
	}

	return tree
}

// lineCommentRatio is the share of non-blank lines that are comment-only,
// judged by the language's single-line comment token.
func lineCommentRatio(code, language string) float64 {
	if code == "" {
		return 0
	}

	commentToken := syntax.LineCommentToken(language)

	nonBlank := 0
	comments := 0

	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		nonBlank++

		if strings.HasPrefix(trimmed, commentToken) {
			comments++
		}
	}

	if nonBlank == 0 {
		return 0
	}

	return float64(comments) / float64(nonBlank)
}
