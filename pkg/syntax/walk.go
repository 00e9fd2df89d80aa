package syntax

// Walk visits every node reachable from root in pre-order (a node before its
// children). A nil root is a no-op. Visiting continues while visit returns
// true; returning false prunes the node's subtree.
func Walk(root *Node, visit func(*Node) bool) {
	if root == nil {
		return
	}

	if !visit(root) {
		return
	}

	for _, child := range root.Children {
		Walk(child, visit)
	}
}

// WalkNested visits every node in pre-order together with its nesting depth.
// Depth starts at 0 at the root and increments when descending into a node
// whose type the nests predicate accepts. The predicate is consulted for
// named nodes only.
func WalkNested(root *Node, nests func(nodeType string) bool, visit func(n *Node, depth int)) {
	walkNested(root, 0, nests, visit)
}

func walkNested(n *Node, depth int, nests func(string) bool, visit func(*Node, int)) {
	if n == nil {
		return
	}

	if n.Named && nests(n.Type) {
		depth++
	}

	visit(n, depth)

	for _, child := range n.Children {
		walkNested(child, depth, nests, visit)
	}
}

// Collect returns every node in the subtree whose type matches the predicate,
// in pre-order.
func Collect(root *Node, match func(*Node) bool) []*Node {
	var nodes []*Node

	Walk(root, func(n *Node) bool {
		if match(n) {
			nodes = append(nodes, n)
		}

		return true
	})

	return nodes
}
