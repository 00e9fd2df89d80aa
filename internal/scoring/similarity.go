package scoring

import (
	"math"
	"regexp"
	"slices"
	"strings"
)

// Comment-stripping patterns applied before tokenization. Hash and
// double-slash comments run to end of line; block comments may span lines.
var (
	hashCommentRE  = regexp.MustCompile(`(?m)#.*$`)
	slashCommentRE = regexp.MustCompile(`(?m)//.*$`)
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)

	tokenRE = regexp.MustCompile(`\w+|[^\s\w]`)
)

const similarityMaxN = 4

// SimilarityMetric scores how much of a reference's token structure a
// candidate preserves, using clipped n-gram precision with a brevity
// penalty.
type SimilarityMetric struct{}

// Type implements Metric.
func (SimilarityMetric) Type() MetricType { return MetricBLEU }

// Description implements Metric.
func (SimilarityMetric) Description() string {
	return "Measures code similarity (0-100, higher = more similar)"
}

// HigherIsBetter implements Metric.
func (SimilarityMetric) HigherIsBetter() bool { return true }

// Calculate implements Metric. Similarity needs a reference, so the
// single-snapshot form is a placeholder; use Score for comparisons.
func (m SimilarityMetric) Calculate(_, _ string) MetricResult {
	return MetricResult{
		Type:        m.Type(),
		Score:       0,
		Description: m.Description(),
		Details:     map[string]any{"note": "similarity requires a reference snapshot"},
	}
}

// Score computes the similarity of candidate code against reference code
// on a 0-100 scale.
func (m SimilarityMetric) Score(referenceCode, candidateCode, _ string) MetricResult {
	refTokens := tokenizeCode(referenceCode)
	candTokens := tokenizeCode(candidateCode)

	if len(refTokens) == 0 || len(candTokens) == 0 {
		return MetricResult{
			Type:        m.Type(),
			Score:       0,
			Description: m.Description(),
			Details:     map[string]any{"error": "empty code"},
		}
	}

	// Self-similarity is exactly 100 by definition. Snippets shorter than
	// the largest n-gram order would otherwise zero out on precision.
	if slices.Equal(refTokens, candTokens) {
		return MetricResult{
			Type:        m.Type(),
			Score:       100,
			Description: m.Description(),
			Details: map[string]any{
				"identical":  true,
				"ref_tokens": len(refTokens),
			},
		}
	}

	precisions := make([]float64, 0, similarityMaxN)
	for n := 1; n <= similarityMaxN; n++ {
		precisions = append(precisions, ngramPrecision(refTokens, candTokens, n))
	}

	score := geometricMean(precisions)

	penalty := brevityPenalty(len(refTokens), len(candTokens))
	score *= penalty

	return MetricResult{
		Type:        m.Type(),
		Score:       score * 100,
		Description: m.Description(),
		Details: map[string]any{
			"precisions":      precisions,
			"brevity_penalty": penalty,
			"ref_tokens":      len(refTokens),
			"cand_tokens":     len(candTokens),
		},
	}
}

// tokenizeCode strips comments, then splits code into lowercased words and
// individual punctuation characters.
func tokenizeCode(code string) []string {
	code = hashCommentRE.ReplaceAllString(code, "")
	code = slashCommentRE.ReplaceAllString(code, "")
	code = blockCommentRE.ReplaceAllString(code, "")

	matches := tokenRE.FindAllString(code, -1)

	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		if strings.TrimSpace(match) != "" {
			tokens = append(tokens, strings.ToLower(match))
		}
	}

	return tokens
}

// ngramPrecision is the fraction of candidate n-grams that also occur in
// the reference, each match clipped at the reference's count.
func ngramPrecision(reference, candidate []string, n int) float64 {
	if len(candidate) < n {
		return 0
	}

	refCounts := countNgrams(reference, n)
	candCounts := countNgrams(candidate, n)

	if len(candCounts) == 0 {
		return 0
	}

	matched := 0
	total := 0

	for ngram, count := range candCounts {
		total += count

		refCount := refCounts[ngram]
		if count < refCount {
			matched += count
		} else {
			matched += refCount
		}
	}

	if total == 0 {
		return 0
	}

	return float64(matched) / float64(total)
}

func countNgrams(tokens []string, n int) map[string]int {
	counts := make(map[string]int)

	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], "\x00")]++
	}

	return counts
}

// geometricMean combines precisions; any zero precision zeroes the result.
func geometricMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	logSum := 0.0

	for _, v := range values {
		if v <= 0 {
			return 0
		}

		logSum += math.Log(v)
	}

	return math.Exp(logSum / float64(len(values)))
}

// brevityPenalty discounts candidates shorter than their reference so
// trivially short output cannot score well.
func brevityPenalty(refLen, candLen int) float64 {
	if candLen >= refLen {
		return 1.0
	}

	if candLen == 0 {
		return 0
	}

	return math.Exp(1 - float64(refLen)/float64(candLen))
}
