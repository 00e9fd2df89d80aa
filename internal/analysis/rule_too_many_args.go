package analysis

import (
	"fmt"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// TooManyArgs reports function definitions whose parameter count exceeds the
// configured maximum. Parameters are the named children of the definition's
// parameter-list child, so punctuation never inflates the count.
func TooManyArgs(tree *syntax.Tree, _ string, cfg Config) []Issue {
	if tree == nil {
		return nil
	}

	functions := syntax.FunctionNodes(tree.Language)
	paramLists := syntax.ParameterListNodes(tree.Language)

	issues := make([]Issue, 0)

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if !n.Named || !functions.Contains(n.Type) {
			return true
		}

		for _, child := range n.Children {
			if !paramLists.Contains(child.Type) {
				continue
			}

			count := len(child.NamedChildren())
			if count > cfg.MaxArgs {
				issues = append(issues, Issue{
					Line: n.StartLine,
					Type: "Too Many Args",
					Message: fmt.Sprintf(
						"Function has %d arguments, which exceeds the maximum of %d",
						count, cfg.MaxArgs,
					),
					Severity: SeverityWarning,
				})
			}

			break
		}

		return true
	})

	return issues
}
