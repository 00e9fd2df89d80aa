package analysis

import (
	"log/slog"

	"github.com/refgauge/refgauge/pkg/syntax"
)

// CheckFunc inspects one parsed tree and returns its findings. A nil tree
// means the source could not be parsed; checks return no issues for it.
type CheckFunc func(tree *syntax.Tree, code string, cfg Config) []Issue

// Rule is a named lint check.
type Rule struct {
	Name  string
	Check CheckFunc
}

// DefaultRules returns the built-in rules in their fixed execution order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "unused-variables", Check: UnusedVariables},
		{Name: "unused-imports", Check: UnusedImports},
		{Name: "too-many-args", Check: TooManyArgs},
		{Name: "dangerous-calls", Check: DangerousCalls},
		{Name: "function-length", Check: FunctionLength},
		{Name: "deep-nesting", Check: DeepNesting},
	}
}

// Linter runs a fixed rule set over a tree and concatenates the findings.
type Linter struct {
	rules []Rule
	cfg   Config
	log   *slog.Logger
}

// NewLinter creates a Linter with the default rules and the given thresholds.
func NewLinter(cfg Config, log *slog.Logger) *Linter {
	if log == nil {
		log = slog.Default()
	}

	return &Linter{rules: DefaultRules(), cfg: cfg, log: log}
}

// WithRules replaces the linter's rule set, preserving the given order.
func (l *Linter) WithRules(rules []Rule) *Linter {
	l.rules = rules

	return l
}

// Run executes every rule over the tree and returns all issues in rule
// order, then per-rule discovery order. A rule that panics is logged and
// contributes no issues; the remaining rules still run.
func (l *Linter) Run(tree *syntax.Tree, code string) []Issue {
	issues := make([]Issue, 0)

	for _, rule := range l.rules {
		issues = append(issues, l.runRule(rule, tree, code)...)
	}

	return issues
}

func (l *Linter) runRule(rule Rule, tree *syntax.Tree, code string) (issues []Issue) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Warn("rule failed", "rule", rule.Name, "error", r)

			issues = nil
		}
	}()

	return rule.Check(tree, code, l.cfg)
}
