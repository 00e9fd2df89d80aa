package scoring

import (
	"log/slog"

	"github.com/refgauge/refgauge/pkg/mathutil"
)

// Normalization divisors for lower-is-better metrics.
const (
	complexityScaleFactor = 5.0
	locScaleDivisor       = 5.0
	perfectScore          = 100.0
)

// Config selects which metrics run and how much each contributes to the
// overall score.
type Config struct {
	// Weights maps each metric to its share of the overall score.
	// Metrics absent from the map contribute nothing.
	Weights map[MetricType]float64
	// EnableSimilarity gates the similarity metric.
	EnableSimilarity bool
	// EnableCodeMetrics gates complexity, maintainability, and LOC.
	EnableCodeMetrics bool
	// EnableNaturalness gates the naturalness heuristic.
	EnableNaturalness bool
}

// DefaultConfig returns the default metric selection and weights. Lines of
// code is measured but carries no weight.
func DefaultConfig() Config {
	return Config{
		Weights: map[MetricType]float64{
			MetricBLEU:                 0.3,
			MetricPerplexity:           0.2,
			MetricCyclomaticComplexity: 0.3,
			MetricMaintainabilityIndex: 0.2,
			MetricLinesOfCode:          0.0,
		},
		EnableSimilarity:  true,
		EnableCodeMetrics: true,
		EnableNaturalness: false,
	}
}

// ScoreComparison is the full outcome of comparing two code snapshots.
type ScoreComparison struct {
	OriginalScores   map[MetricType]MetricResult `json:"original_scores" yaml:"original_scores"`
	RefactoredScores map[MetricType]MetricResult `json:"refactored_scores" yaml:"refactored_scores"`
	// OverallScore is the refactored side's weighted normalized score.
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`
	// OverallImprovement is the percentage change from the original
	// side's overall score to the refactored side's.
	OverallImprovement float64 `json:"overall_improvement" yaml:"overall_improvement"`
	// Diff summarizes the textual change between the snapshots.
	Diff DiffStats `json:"diff" yaml:"diff"`
}

// Improvement returns the percentage change of one metric's raw score, or
// false if the metric is missing from either side.
func (c ScoreComparison) Improvement(t MetricType) (float64, bool) {
	original, okOrig := c.OriginalScores[t]
	refactored, okRef := c.RefactoredScores[t]

	if !okOrig || !okRef {
		return 0, false
	}

	return percentChange(original.Score, refactored.Score), true
}

// Scorer runs the enabled metric set over code snapshots and aggregates
// the results.
type Scorer struct {
	cfg        Config
	similarity SimilarityMetric
	metrics    []Metric
	log        *slog.Logger
}

// NewScorer creates a Scorer with the metrics the config enables.
func NewScorer(cfg Config, log *slog.Logger) *Scorer {
	if log == nil {
		log = slog.Default()
	}

	var metrics []Metric

	if cfg.EnableCodeMetrics {
		metrics = append(metrics,
			CyclomaticMetric{},
			MaintainabilityMetric{},
			LinesOfCodeMetric{},
		)
	}

	if cfg.EnableNaturalness {
		metrics = append(metrics, NaturalnessMetric{Enabled: true})
	}

	return &Scorer{cfg: cfg, metrics: metrics, log: log}
}

// WithMetrics replaces the scorer's single-snapshot metric set, preserving
// the given order.
func (s *Scorer) WithMetrics(metrics []Metric) *Scorer {
	s.metrics = metrics

	return s
}

// ScoreCode runs every enabled single-snapshot metric over one snapshot.
// A metric that panics is recorded as a zero-score result carrying the
// error, and the remaining metrics still run.
func (s *Scorer) ScoreCode(code, language string) map[MetricType]MetricResult {
	results := make(map[MetricType]MetricResult, len(s.metrics))

	for _, metric := range s.metrics {
		results[metric.Type()] = s.safeCalculate(metric, code, language)
	}

	return results
}

// CompareCode scores both snapshots and aggregates the comparison. The
// similarity metric is special-cased: the original side is its own
// reference, so it scores a perfect 100 there.
func (s *Scorer) CompareCode(originalCode, refactoredCode, language string) ScoreComparison {
	originalScores := make(map[MetricType]MetricResult)
	refactoredScores := make(map[MetricType]MetricResult)

	if s.cfg.EnableSimilarity {
		originalScores[MetricBLEU] = MetricResult{
			Type:        MetricBLEU,
			Score:       perfectScore,
			Description: s.similarity.Description(),
		}
		refactoredScores[MetricBLEU] = s.similarity.Score(originalCode, refactoredCode, language)
	}

	for _, metric := range s.metrics {
		original, refactored := s.safeCompare(metric, originalCode, refactoredCode, language)
		originalScores[metric.Type()] = original
		refactoredScores[metric.Type()] = refactored
	}

	originalOverall := s.overallScore(originalScores)
	refactoredOverall := s.overallScore(refactoredScores)

	return ScoreComparison{
		OriginalScores:     originalScores,
		RefactoredScores:   refactoredScores,
		OverallScore:       refactoredOverall,
		OverallImprovement: percentChange(originalOverall, refactoredOverall),
		Diff:               CompareLines(originalCode, refactoredCode),
	}
}

func (s *Scorer) safeCalculate(metric Metric, code, language string) (result MetricResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("metric failed", "metric", metric.Type(), "error", r)

			result = errorResult(metric, r)
		}
	}()

	return metric.Calculate(code, language)
}

func (s *Scorer) safeCompare(metric Metric, originalCode, refactoredCode, language string) (original, refactored MetricResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("metric comparison failed", "metric", metric.Type(), "error", r)

			original = errorResult(metric, r)
			refactored = errorResult(metric, r)
		}
	}()

	original, refactored = Compare(metric, originalCode, refactoredCode, language)

	return original, refactored
}

func errorResult(metric Metric, recovered any) MetricResult {
	return MetricResult{
		Type:        metric.Type(),
		Score:       0,
		Description: metric.Description(),
		Details:     map[string]any{"error": recovered},
	}
}

// overallScore maps every present metric onto the common 0-100 scale,
// weights it, and divides by the total weight present. Zero-weight metrics
// contribute nothing without distorting the denominator.
func (s *Scorer) overallScore(scores map[MetricType]MetricResult) float64 {
	if len(scores) == 0 {
		return 0
	}

	weightedSum := 0.0
	totalWeight := 0.0

	for _, metricType := range metricOrder {
		result, ok := scores[metricType]
		if !ok {
			continue
		}

		weight := s.cfg.Weights[metricType]

		weightedSum += Normalize(metricType, result.Score) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	return weightedSum / totalWeight
}

// Normalize maps a raw metric score onto the common 0-100 higher-is-better
// scale using the metric's fixed inversion rule.
func Normalize(metricType MetricType, score float64) float64 {
	switch metricType {
	case MetricBLEU, MetricMaintainabilityIndex:
		return mathutil.Clamp(score, 0, 100)
	case MetricCyclomaticComplexity:
		return mathutil.Clamp(100-score*complexityScaleFactor, 0, 100)
	case MetricPerplexity:
		return mathutil.Clamp(100-score, 0, 100)
	case MetricLinesOfCode:
		return mathutil.Clamp(100-score/locScaleDivisor, 0, 100)
	default:
		return score
	}
}

// percentChange is the relative change from original to refactored,
// special-cased for a zero original.
func percentChange(original, refactored float64) float64 {
	if original == 0 {
		if refactored > 0 {
			return 100.0
		}

		return 0
	}

	return (refactored - original) / original * 100
}
