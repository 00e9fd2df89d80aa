package analysis

import (
	"fmt"
	"strings"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// classNodes are type-definition node types whose name child is a binding,
// not a use. Kept local to the unused-variable heuristic.
var classNodes = map[string]struct{}{
	"class_definition":  {},
	"class_declaration": {},
	"class_specifier":   {},
	"class":             {},
	"module":            {},
	"struct_item":       {},
	"enum_item":         {},
}

// UnusedVariables reports assignment targets and parameters whose name never
// occurs in use position. Identifier occurrence stands in for scope analysis,
// so shadowed names can produce false results; this is a known approximation.
func UnusedVariables(tree *syntax.Tree, _ string, _ Config) []Issue {
	if tree == nil {
		return nil
	}

	assignFields := syntax.AssignmentFields(tree.Language)
	functions := syntax.FunctionNodes(tree.Language)
	paramLists := syntax.ParameterListNodes(tree.Language)

	bindings := make(map[string]int)
	bindingOrder := make([]string, 0)
	usages := make(map[string]struct{})

	recordBinding := func(name string, line int) {
		if _, seen := bindings[name]; !seen {
			bindingOrder = append(bindingOrder, name)
		}

		bindings[name] = line
	}

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if field, ok := assignFields[n.Type]; ok && n.Named {
			if target := n.ChildByField(field); target != nil && target.Type == "identifier" {
				recordBinding(target.Token, target.StartLine)
			}
		}

		if n.Type == "identifier" {
			if isBindingPosition(n, assignFields, functions, paramLists) {
				if n.Parent != nil && paramLists.Contains(n.Parent.Type) {
					recordBinding(n.Token, n.StartLine)
				}
			} else {
				usages[n.Token] = struct{}{}
			}
		}

		return true
	})

	issues := make([]Issue, 0)

	for _, name := range bindingOrder {
		if _, used := usages[name]; used {
			continue
		}

		if name == "_" || strings.HasPrefix(name, "__") {
			continue
		}

		issues = append(issues, Issue{
			Line:     bindings[name],
			Type:     "Unused Variable",
			Message:  fmt.Sprintf("Variable '%s' assigned but not used", name),
			Severity: SeverityWarning,
		})
	}

	return issues
}

// isBindingPosition reports whether an identifier is a declaration site
// rather than a use, judged by its parent node.
func isBindingPosition(n *syntax.Node, assignFields map[string]string, functions, paramLists syntax.NodeSet) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}

	if field, ok := assignFields[parent.Type]; ok && parent.ChildByField(field) == n {
		return true
	}

	if functions.Contains(parent.Type) && parent.ChildByField("name") == n {
		return true
	}

	if _, ok := classNodes[parent.Type]; ok && parent.ChildByField("name") == n {
		return true
	}

	return paramLists.Contains(parent.Type)
}
