// Package syntax parses source code into owned, language-tagged parse trees
// and classifies grammar node types into language-independent categories.
package syntax

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Sentinel errors for parse operations.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptySource         = errors.New("empty source")
)

// Tree is an owned parse tree. Unlike raw tree-sitter trees it carries no
// native resources, so it needs no Close and can outlive the parser.
type Tree struct {
	// Root is the top-level node, usually a "module" or "program" node.
	Root *Node
	// Language is the canonical language tag the tree was parsed with.
	Language string

	source []byte
}

// Source returns the source bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	if t == nil {
		return nil
	}

	return t.source
}

// NodeText returns the source text covered by a node of this tree.
func (t *Tree) NodeText(n *Node) string {
	if t == nil || n == nil {
		return ""
	}

	return n.Text(t.source)
}

// Parse parses code in the given language into an owned tree. The language
// tag is normalized first, so "js" and "JavaScript" both select the
// javascript grammar. Empty or whitespace-only code and unsupported
// languages yield a nil tree with a sentinel error; callers treat a nil
// tree as "nothing to analyze" rather than a failure.
func Parse(code, language string) (*Tree, error) {
	canonical := NormalizeLanguage(language)

	lang := GetLanguage(canonical)
	if lang == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	if len(code) == 0 {
		return nil, ErrEmptySource
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	source := []byte(code)

	tsTree, err := parser.ParseString(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", canonical, err)
	}
	defer tsTree.Close()

	root := tsTree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("parse %s: %w", canonical, ErrEmptySource)
	}

	return &Tree{
		Root:     convertNode(root, source, nil),
		Language: canonical,
		source:   source,
	}, nil
}
