package analysis

import (
	"fmt"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// DeepNesting reports every nesting construct entered beyond the configured
// maximum depth. The issue is attached to the node that crossed the
// threshold, with the depth it reached.
func DeepNesting(tree *syntax.Tree, _ string, cfg Config) []Issue {
	if tree == nil {
		return nil
	}

	nesting := syntax.NestingNodes(tree.Language)

	issues := make([]Issue, 0)

	syntax.WalkNested(tree.Root, nesting.Contains, func(n *syntax.Node, depth int) {
		if !n.Named || !nesting.Contains(n.Type) {
			return
		}

		if depth > cfg.MaxNestingDepth {
			issues = append(issues, Issue{
				Line: n.StartLine,
				Type: "deep nesting",
				Message: fmt.Sprintf(
					"Nesting depth of %d exceeds maximum of %d",
					depth, cfg.MaxNestingDepth,
				),
				Severity: SeverityWarning,
			})
		}
	})

	return issues
}
