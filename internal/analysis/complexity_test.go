package analysis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/internal/analysis"
	"github.com/refgauge/refgauge/pkg/syntax"
)

func TestCyclomaticNilTree(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, analysis.Cyclomatic(nil))
}

func TestCyclomaticFlatCode(t *testing.T) {
	t.Parallel()

	tree := parsePython(t, "x = 1\ny = 2\n")
	assert.Equal(t, 1, analysis.Cyclomatic(tree))
}

func TestCyclomaticControlFlow(t *testing.T) {
	t.Parallel()

	code := "if a:\n    pass\nfor i in r:\n    pass\nwhile b:\n    pass\n"
	tree := parsePython(t, code)

	assert.Equal(t, 4, analysis.Cyclomatic(tree))
}

func TestCyclomaticBooleanOperators(t *testing.T) {
	t.Parallel()

	// One if plus one boolean operator: 1 + 2.
	code := "if a and b:\n    pass\n"
	tree := parsePython(t, code)

	assert.Equal(t, 3, analysis.Cyclomatic(tree))
}

func TestCyclomaticArithmeticDoesNotCount(t *testing.T) {
	t.Parallel()

	code := "let x = a + b * c;\n"

	tree, err := syntax.Parse(code, "javascript")
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.Cyclomatic(tree))
}

func TestCyclomaticLogicalOperatorJavaScript(t *testing.T) {
	t.Parallel()

	code := "if (a && b) { f(); }\n"

	tree, err := syntax.Parse(code, "javascript")
	require.NoError(t, err)

	// One if plus one logical operator.
	assert.Equal(t, 3, analysis.Cyclomatic(tree))
}

func TestCyclomaticAlwaysAtLeastOne(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"x = 1", "pass", "# only a comment"} {
		tree := parsePython(t, code)
		assert.GreaterOrEqual(t, analysis.Cyclomatic(tree), 1, code)
	}
}

func TestCountLOC(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		code string
		want int
	}{
		{"empty", "", 0},
		{"single", "x = 1", 1},
		{"blank lines skipped", "x = 1\n\n\ny = 2\n", 2},
		{"whitespace only is blank", "x = 1\n   \t\ny = 2", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, analysis.CountLOC(tc.code))
		})
	}
}

func TestLOCNeverExceedsPhysicalLines(t *testing.T) {
	t.Parallel()

	code := "a = 1\n\nb = 2\n\n\nc = 3\n"
	physical := len(strings.Split(code, "\n"))

	assert.LessOrEqual(t, analysis.CountLOC(code), physical)
}

func TestNestingDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, analysis.NestingDepth(nil))

	flat := parsePython(t, "x = 1\n")
	assert.Equal(t, 0, analysis.NestingDepth(flat))

	nested := parsePython(t, "def f():\n    if a:\n        for i in r:\n            pass\n")
	assert.Equal(t, 3, analysis.NestingDepth(nested))
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	code := "if a:\n    pass\n"
	tree := parsePython(t, code)

	metrics := analysis.Measure(tree, code)
	assert.Equal(t, 2, metrics.Cyclomatic)
	assert.Equal(t, 2, metrics.LOC)
	assert.Equal(t, 1, metrics.Nesting)
}

func TestMeasureNilTree(t *testing.T) {
	t.Parallel()

	metrics := analysis.Measure(nil, "")
	assert.Equal(t, 1, metrics.Cyclomatic)
	assert.Equal(t, 0, metrics.LOC)
	assert.Equal(t, 0, metrics.Nesting)
}
