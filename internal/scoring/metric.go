// Package scoring computes quality metrics over code snapshots and
// aggregates them into weighted comparison scores.
package scoring

// MetricType identifies one quality metric. The set is closed so the
// normalization and weighting logic stays exhaustive.
type MetricType string

// Metric types.
const (
	MetricBLEU                 MetricType = "bleu"
	MetricPerplexity           MetricType = "perplexity"
	MetricCyclomaticComplexity MetricType = "cyclomatic_complexity"
	MetricMaintainabilityIndex MetricType = "maintainability_index"
	MetricLinesOfCode          MetricType = "lines_of_code"
)

// metricOrder fixes the iteration order for deterministic output.
var metricOrder = []MetricType{
	MetricBLEU,
	MetricPerplexity,
	MetricCyclomaticComplexity,
	MetricMaintainabilityIndex,
	MetricLinesOfCode,
}

// MetricResult is the outcome of one metric calculation.
type MetricResult struct {
	// Type identifies the metric that produced this result.
	Type MetricType `json:"metric_type" yaml:"metric_type"`
	// Score is the raw metric value; its scale and polarity depend on
	// the metric.
	Score float64 `json:"score" yaml:"score"`
	// Description is the metric's human-readable summary.
	Description string `json:"description" yaml:"description"`
	// Details carries metric-specific diagnostics, including error
	// messages for degraded results.
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	// Improved is set only on the refactored side of a comparison and
	// encodes the polarity-aware direction of change.
	Improved *bool `json:"improved,omitempty" yaml:"improved,omitempty"`
}

// Metric is one quality measurement over a single code snapshot.
type Metric interface {
	// Type returns the metric's fixed identity.
	Type() MetricType
	// Description returns the metric's human-readable summary.
	Description() string
	// HigherIsBetter returns the metric's fixed polarity.
	HigherIsBetter() bool
	// Calculate scores one code snapshot. It never returns an error;
	// degraded inputs yield a zero or sentinel score with details.
	Calculate(code, language string) MetricResult
}

// Compare runs a metric on both snapshots and marks the refactored result
// with the polarity-aware improvement direction.
func Compare(m Metric, originalCode, refactoredCode, language string) (MetricResult, MetricResult) {
	original := m.Calculate(originalCode, language)
	refactored := m.Calculate(refactoredCode, language)

	var improved bool
	if m.HigherIsBetter() {
		improved = refactored.Score > original.Score
	} else {
		improved = refactored.Score < original.Score
	}

	refactored.Improved = &improved

	return original, refactored
}
