// Package analysis runs static-analysis rules and complexity measurements
// over parsed source trees.
package analysis

// Severity classifies how serious an issue is.
type Severity string

// Issue severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single finding reported by a rule.
type Issue struct {
	// Line is the 1-based source line the issue was found at.
	Line int `json:"line" yaml:"line"`
	// Type is the short rule category, e.g. "Unused Variable".
	Type string `json:"type" yaml:"type"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Severity is warning or error.
	Severity Severity `json:"severity" yaml:"severity"`
}

// Config holds the thresholds the rules check against.
type Config struct {
	// MaxFunctionLength is the longest allowed function body in lines.
	MaxFunctionLength int
	// MaxArgs is the largest allowed parameter count.
	MaxArgs int
	// MaxNestingDepth is the deepest allowed nesting level.
	MaxNestingDepth int
}

// Default rule thresholds.
const (
	DefaultMaxFunctionLength = 50
	DefaultMaxArgs           = 3
	DefaultMaxNestingDepth   = 3
)

// DefaultConfig returns the default rule thresholds.
func DefaultConfig() Config {
	return Config{
		MaxFunctionLength: DefaultMaxFunctionLength,
		MaxArgs:           DefaultMaxArgs,
		MaxNestingDepth:   DefaultMaxNestingDepth,
	}
}
