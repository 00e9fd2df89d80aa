package syntax

import (
	"strings"
	"sync"
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	c "github.com/alexaandru/go-sitter-forest/c"
	cpp "github.com/alexaandru/go-sitter-forest/cpp"
	golang "github.com/alexaandru/go-sitter-forest/go"
	java "github.com/alexaandru/go-sitter-forest/java"
	javascript "github.com/alexaandru/go-sitter-forest/javascript"
	python "github.com/alexaandru/go-sitter-forest/python"
	ruby "github.com/alexaandru/go-sitter-forest/ruby"
	rust "github.com/alexaandru/go-sitter-forest/rust"
)

// languageFuncs maps canonical language names to their tree-sitter
// GetLanguage functions. This is the closed set of supported grammars.
var languageFuncs = map[string]func() unsafe.Pointer{
	"c":          c.GetLanguage,
	"cpp":        cpp.GetLanguage,
	"go":         golang.GetLanguage,
	"java":       java.GetLanguage,
	"javascript": javascript.GetLanguage,
	"python":     python.GetLanguage,
	"ruby":       ruby.GetLanguage,
	"rust":       rust.GetLanguage,
}

// languageAliases maps common alternate spellings to canonical names.
var languageAliases = map[string]string{
	"c++":     "cpp",
	"cc":      "cpp",
	"cxx":     "cpp",
	"golang":  "go",
	"js":      "javascript",
	"jsx":     "javascript",
	"node":    "javascript",
	"py":      "python",
	"python3": "python",
	"rb":      "ruby",
	"rs":      "rust",
}

var languageCache sync.Map

// NormalizeLanguage lowercases a language tag and resolves common aliases
// ("js" to "javascript", "c++" to "cpp"). Unrecognized tags are returned
// lowercased so table lookups can fall back to the generic entry.
func NormalizeLanguage(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := languageAliases[lower]; ok {
		return canonical
	}

	return lower
}

// Supported returns true if a grammar is available for the given language tag.
func Supported(name string) bool {
	_, ok := languageFuncs[NormalizeLanguage(name)]

	return ok
}

// SupportedLanguages returns the canonical names of all available grammars.
func SupportedLanguages() []string {
	names := make([]string, 0, len(languageFuncs))
	for name := range languageFuncs {
		names = append(names, name)
	}

	return names
}

// GetLanguage returns the tree-sitter Language for the given tag, or nil if
// not supported. Languages are cached after first construction.
func GetLanguage(name string) *sitter.Language {
	canonical := NormalizeLanguage(name)

	if cached, ok := languageCache.Load(canonical); ok {
		lang, castOK := cached.(*sitter.Language)
		if castOK {
			return lang
		}
	}

	fn, ok := languageFuncs[canonical]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(canonical, lang)

	return lang
}
