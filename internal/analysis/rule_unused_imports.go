package analysis

import (
	"fmt"
	"strings"

	"github.com/refgauge/refgauge/pkg/syntax"
)

type importBinding struct {
	name string
	line int
}

// UnusedImports reports imported names that never occur as an identifier
// outside an import line. Import lines are recognized textually; usage is
// judged from the tree, so commented-out references do not count as uses.
// Only "import X"/"from X import Y" forms are recognized, so the rule is
// effectively scoped to Python-style imports; other languages yield no
// findings from it.
func UnusedImports(tree *syntax.Tree, code string, _ Config) []Issue {
	if tree == nil {
		return nil
	}

	imports, importLines := collectImports(code)
	if len(imports) == 0 {
		return nil
	}

	used := make(map[string]struct{})

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if n.Type != "identifier" {
			return true
		}

		if _, onImportLine := importLines[n.StartLine]; onImportLine {
			return true
		}

		used[n.Token] = struct{}{}

		return true
	})

	issues := make([]Issue, 0)

	for _, imp := range imports {
		if _, ok := used[imp.name]; ok {
			continue
		}

		issues = append(issues, Issue{
			Line:     imp.line,
			Type:     "unused import",
			Message:  fmt.Sprintf("Module '%s' imported but not used", imp.name),
			Severity: SeverityWarning,
		})
	}

	return issues
}

// collectImports scans source lines for import declarations and returns the
// bound names with their line numbers, plus the set of import line numbers.
func collectImports(code string) ([]importBinding, map[int]struct{}) {
	var imports []importBinding

	importLines := make(map[int]struct{})
	seen := make(map[string]struct{})

	for i, line := range strings.Split(code, "\n") {
		lineNo := i + 1

		trimmed := strings.TrimSpace(line)

		isImport := strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ")
		if !isImport {
			continue
		}

		importLines[lineNo] = struct{}{}

		name := importedName(trimmed)
		if name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		imports = append(imports, importBinding{name: name, line: lineNo})
	}

	return imports, importLines
}

// importedName extracts the name an import line binds: the alias after "as"
// when present, the imported member of a from-import, or the module itself.
func importedName(line string) string {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return ""
	}

	for i := len(parts) - 2; i > 0; i-- {
		if parts[i] == "as" {
			return cleanImportToken(parts[i+1])
		}
	}

	if parts[0] == "from" && len(parts) > 3 && parts[2] == "import" {
		return cleanImportToken(parts[3])
	}

	return cleanImportToken(parts[1])
}

func cleanImportToken(token string) string {
	token = strings.Trim(token, `"';,()`)

	// Path-style imports bind their last segment.
	if idx := strings.LastIndex(token, "/"); idx >= 0 {
		token = token[idx+1:]
	}

	return token
}
