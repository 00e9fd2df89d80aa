package analysis

import (
	"strings"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// ComplexityMetrics are the raw complexity measurements for one source unit.
type ComplexityMetrics struct {
	// Cyclomatic is the decision-point count plus one. Minimum 1.
	Cyclomatic int `json:"cyclomatic_complexity" yaml:"cyclomatic_complexity"`
	// LOC is the count of non-blank source lines.
	LOC int `json:"lines_of_code" yaml:"lines_of_code"`
	// Nesting is the maximum nesting depth reached, 0 for flat code.
	Nesting int `json:"nesting_depth" yaml:"nesting_depth"`
}

// Measure computes all complexity metrics for a source unit. A nil tree
// yields the neutral baseline (cyclomatic 1, nesting 0).
func Measure(tree *syntax.Tree, code string) ComplexityMetrics {
	return ComplexityMetrics{
		Cyclomatic: Cyclomatic(tree),
		LOC:        CountLOC(code),
		Nesting:    NestingDepth(tree),
	}
}

// Cyclomatic computes cyclomatic complexity: 1 plus one per decision-point
// node. Binary-operator nodes count only when their operator is a logical
// AND/OR, so arithmetic expressions never inflate the result.
func Cyclomatic(tree *syntax.Tree) int {
	if tree == nil || tree.Root == nil {
		return 1
	}

	decisionNodes := syntax.ComplexityNodes(tree.Language)
	complexity := 1

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if !n.Named || !decisionNodes.Contains(n.Type) {
			return true
		}

		if syntax.OperatorChecked(n.Type) {
			op := n.ChildByField("operator")
			if op != nil && syntax.IsLogicalOperator(op.Token) {
				complexity++
			}

			return true
		}

		complexity++

		return true
	})

	return complexity
}

// CountLOC counts the non-blank lines in code.
func CountLOC(code string) int {
	if code == "" {
		return 0
	}

	count := 0

	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return count
}

// NestingDepth returns the maximum nesting depth reached anywhere in the
// tree. The root sits at depth 0; a nil tree yields 0.
func NestingDepth(tree *syntax.Tree) int {
	if tree == nil || tree.Root == nil {
		return 0
	}

	nesting := syntax.NestingNodes(tree.Language)
	maxDepth := 0

	syntax.WalkNested(tree.Root, nesting.Contains, func(_ *syntax.Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})

	return maxDepth
}
