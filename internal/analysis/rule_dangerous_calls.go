package analysis

import (
	"fmt"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// dangerousFunctions are the bare callee names flagged as code-injection
// risks.
var dangerousFunctions = map[string]struct{}{
	"eval": {},
	"exec": {},
}

// DangerousCalls reports every call whose callee is a bare identifier named
// eval or exec. Method calls and attribute access are not flagged.
func DangerousCalls(tree *syntax.Tree, _ string, _ Config) []Issue {
	if tree == nil {
		return nil
	}

	calls := syntax.CallFields(tree.Language)

	issues := make([]Issue, 0)

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		field, ok := calls[n.Type]
		if !ok || !n.Named {
			return true
		}

		callee := n.ChildByField(field)
		if callee == nil || callee.Type != "identifier" {
			return true
		}

		if _, dangerous := dangerousFunctions[callee.Token]; dangerous {
			issues = append(issues, Issue{
				Line:     n.StartLine,
				Type:     "dangerous function",
				Message:  fmt.Sprintf("Use of dangerous function '%s'", callee.Token),
				Severity: SeverityError,
			})
		}

		return true
	})

	return issues
}
