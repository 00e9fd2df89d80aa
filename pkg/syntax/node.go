package syntax

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/refgauge/refgauge/pkg/safeconv"
)

// fieldNames is the set of grammar field names captured during conversion.
// These are the fields the rule engine inspects (assignment targets, call
// callees, import aliases, binary operators).
var fieldNames = []string{
	"left",
	"name",
	"function",
	"method",
	"operator",
	"alias",
	"pattern",
	"path",
	"declarator",
}

// Node is an immutable view of one parse-tree node. Nodes own their data and
// remain valid after the underlying tree-sitter tree is released.
type Node struct {
	// Type is the grammar node type, e.g. "if_statement".
	Type string
	// Token is the source text covered by the node. Populated only for
	// leaf nodes to keep trees compact.
	Token string
	// StartLine and EndLine are 1-based source line numbers.
	StartLine int
	EndLine   int
	// StartCol and EndCol are 0-based column offsets.
	StartCol int
	EndCol   int
	// StartByte and EndByte delimit the node's span in the source.
	StartByte int
	EndByte   int
	// Named reports whether the node is a named grammar rule rather than
	// an anonymous token.
	Named bool

	Parent   *Node
	Children []*Node

	fields map[string]*Node
}

// ChildByField returns the child occupying the given grammar field, or nil.
// Only the fields relevant to analysis are captured during conversion.
func (n *Node) ChildByField(name string) *Node {
	if n == nil || n.fields == nil {
		return nil
	}

	return n.fields[name]
}

// NamedChildren returns the node's named children in source order.
func (n *Node) NamedChildren() []*Node {
	if n == nil {
		return nil
	}

	named := make([]*Node, 0, len(n.Children))

	for _, child := range n.Children {
		if child.Named {
			named = append(named, child)
		}
	}

	return named
}

// Text returns the source text covered by the node. For leaves this is the
// captured token; for interior nodes it is sliced from the tree's source.
func (n *Node) Text(source []byte) string {
	if n == nil {
		return ""
	}

	if n.Token != "" || len(n.Children) == 0 {
		return n.Token
	}

	if n.StartByte < 0 || n.EndByte > len(source) || n.StartByte > n.EndByte {
		return ""
	}

	return string(source[n.StartByte:n.EndByte])
}

// convertNode builds an owned Node from a tree-sitter node. The source slice
// is used to capture leaf tokens; field links are resolved against the
// converted children by byte span.
func convertNode(tsNode sitter.Node, source []byte, parent *Node) *Node {
	startPoint := tsNode.StartPoint()
	endPoint := tsNode.EndPoint()

	owned := &Node{
		Type:      tsNode.Type(),
		StartLine: safeconv.MustUintToInt(startPoint.Row) + 1,
		EndLine:   safeconv.MustUintToInt(endPoint.Row) + 1,
		StartCol:  safeconv.MustUintToInt(startPoint.Column),
		EndCol:    safeconv.MustUintToInt(endPoint.Column),
		StartByte: safeconv.MustUintToInt(tsNode.StartByte()),
		EndByte:   safeconv.MustUintToInt(tsNode.EndByte()),
		Named:     tsNode.IsNamed(),
		Parent:    parent,
	}

	childCount := tsNode.ChildCount()
	if childCount == 0 {
		owned.Token = sliceSource(source, owned.StartByte, owned.EndByte)

		return owned
	}

	owned.Children = make([]*Node, 0, childCount)

	for i := range childCount {
		child := tsNode.Child(i)
		if child.IsNull() {
			continue
		}

		owned.Children = append(owned.Children, convertNode(child, source, owned))
	}

	owned.fields = resolveFields(tsNode, owned.Children)

	return owned
}

// resolveFields maps captured grammar fields to their converted children.
// Matching is by byte span and type because the tree-sitter node handles are
// not comparable to the owned nodes.
func resolveFields(tsNode sitter.Node, children []*Node) map[string]*Node {
	var fields map[string]*Node

	for _, name := range fieldNames {
		fieldNode := tsNode.ChildByFieldName(name)
		if fieldNode.IsNull() {
			continue
		}

		start := safeconv.MustUintToInt(fieldNode.StartByte())
		end := safeconv.MustUintToInt(fieldNode.EndByte())
		fieldType := fieldNode.Type()

		for _, child := range children {
			if child.StartByte == start && child.EndByte == end && child.Type == fieldType {
				if fields == nil {
					fields = make(map[string]*Node, 2)
				}

				fields[name] = child

				break
			}
		}
	}

	return fields
}

func sliceSource(source []byte, start, end int) string {
	if start < 0 || end > len(source) || start > end {
		return ""
	}

	return string(source[start:end])
}
