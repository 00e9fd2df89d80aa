package analysis

import (
	"fmt"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// FunctionLength reports function definitions spanning more lines than the
// configured maximum. Length is the difference between end and start lines,
// so a one-line function has length 0.
func FunctionLength(tree *syntax.Tree, _ string, cfg Config) []Issue {
	if tree == nil {
		return nil
	}

	functions := syntax.FunctionNodes(tree.Language)

	issues := make([]Issue, 0)

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if !n.Named || !functions.Contains(n.Type) {
			return true
		}

		length := n.EndLine - n.StartLine
		if length > cfg.MaxFunctionLength {
			issues = append(issues, Issue{
				Line: n.StartLine,
				Type: "Function Length",
				Message: fmt.Sprintf(
					"Function exceeds maximum length of %d lines (%d lines)",
					cfg.MaxFunctionLength, length,
				),
				Severity: SeverityWarning,
			})
		}

		return true
	})

	return issues
}
