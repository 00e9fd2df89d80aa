package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/internal/scoring"
)

func TestSimilarityReflexive(t *testing.T) {
	t.Parallel()

	codes := []string{
		"def f():\n    return 1\n",
		"x = 1\ny = x + 2\nprint(y)\n",
		"func main() {\n\tfmt.Println(\"hi\")\n}\n",
	}

	metric := scoring.SimilarityMetric{}

	for _, code := range codes {
		result := metric.Score(code, code, "python")
		assert.InDelta(t, 100.0, result.Score, 1e-9, code)
	}
}

func TestSimilarityReflexiveShortSnippets(t *testing.T) {
	t.Parallel()

	// Fewer tokens than the largest n-gram order must still self-score 100.
	metric := scoring.SimilarityMetric{}

	for _, code := range []string{"x=1", "pass", "a"} {
		result := metric.Score(code, code, "python")
		assert.InDelta(t, 100.0, result.Score, 1e-9, code)
	}
}

func TestSimilarityEmptyCode(t *testing.T) {
	t.Parallel()

	metric := scoring.SimilarityMetric{}

	result := metric.Score("", "x = 1", "python")
	assert.InDelta(t, 0.0, result.Score, 0)
	assert.Contains(t, result.Details, "error")

	result = metric.Score("x = 1", "", "python")
	assert.InDelta(t, 0.0, result.Score, 0)
}

func TestSimilarityBrevityPenalty(t *testing.T) {
	t.Parallel()

	reference := "a = 1\nb = 2\nc = 3\nd = 4\n"
	candidate := "a = 1\nb = 2\n"

	metric := scoring.SimilarityMetric{}
	result := metric.Score(reference, candidate, "python")

	require.Contains(t, result.Details, "brevity_penalty")

	penalty, ok := result.Details["brevity_penalty"].(float64)
	require.True(t, ok)
	assert.Less(t, penalty, 1.0)
}

func TestSimilarityIgnoresComments(t *testing.T) {
	t.Parallel()

	plain := "x = 1\ny = 2\n"
	commented := "x = 1  # tracker\ny = 2\n"

	metric := scoring.SimilarityMetric{}
	result := metric.Score(plain, commented, "python")

	assert.InDelta(t, 100.0, result.Score, 1e-9)
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	t.Parallel()

	metric := scoring.SimilarityMetric{}
	result := metric.Score("VALUE = 1\n", "value = 1\n", "python")

	assert.InDelta(t, 100.0, result.Score, 1e-9)
}

func TestSimilarityDissimilarCode(t *testing.T) {
	t.Parallel()

	metric := scoring.SimilarityMetric{}
	result := metric.Score("a b c d e f g h", "q w e r t y u i", "python")

	assert.Less(t, result.Score, 50.0)
}

func TestSimilarityCalculatePlaceholder(t *testing.T) {
	t.Parallel()

	metric := scoring.SimilarityMetric{}
	result := metric.Calculate("x = 1", "python")

	assert.InDelta(t, 0.0, result.Score, 0)
	assert.Contains(t, result.Details, "note")
}
