package scoring

import (
	"strings"

	"github.com/refgauge/refgauge/pkg/mathutil"
)

// Naturalness estimate bounds.
const (
	naturalnessFloor = 10.0
	naturalnessCeil  = 100.0
)

// NaturalnessMetric estimates how readable code is from line length and
// token diversity. It stands in for a model-based perplexity measure and
// is disabled by default.
type NaturalnessMetric struct {
	// Enabled gates the calculation; when false the metric reports a
	// sentinel zero score.
	Enabled bool
}

// Type implements Metric.
func (NaturalnessMetric) Type() MetricType { return MetricPerplexity }

// Description implements Metric.
func (NaturalnessMetric) Description() string {
	return "Code naturalness/readability (lower is better)"
}

// HigherIsBetter implements Metric.
func (NaturalnessMetric) HigherIsBetter() bool { return false }

// Calculate implements Metric.
func (m NaturalnessMetric) Calculate(code, _ string) MetricResult {
	if !m.Enabled {
		return MetricResult{
			Type:        m.Type(),
			Score:       0,
			Description: m.Description(),
			Details:     map[string]any{"error": "naturalness calculation disabled in settings"},
		}
	}

	return MetricResult{
		Type:        m.Type(),
		Score:       estimateNaturalness(code),
		Description: m.Description(),
		Details: map[string]any{
			"note":   "heuristic estimation, not model perplexity",
			"method": "line length and token diversity",
		},
	}
}

// estimateNaturalness grows with average line length and shrinks with
// token diversity: long repetitive lines read worse than short varied
// ones. The result is clamped to [10, 100].
func estimateNaturalness(code string) float64 {
	var lines []string

	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return naturalnessFloor
	}

	totalLength := 0
	for _, line := range lines {
		totalLength += len(line)
	}

	avgLineLength := float64(totalLength) / float64(len(lines))

	tokens := strings.Fields(code)

	diversity := 1.0

	if len(tokens) > 0 {
		unique := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			unique[token] = struct{}{}
		}

		diversity = float64(len(unique)) / float64(len(tokens))
	}

	estimate := (avgLineLength / 2) * (1 / diversity)

	return mathutil.Clamp(estimate, naturalnessFloor, naturalnessCeil)
}
