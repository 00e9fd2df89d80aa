package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refgauge/refgauge/pkg/syntax"
)

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	t.Parallel()

	tree, err := syntax.Parse("x = 1\nif x:\n    print(x)\n", "python")
	require.NoError(t, err)

	seen := make(map[*syntax.Node]int)

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		seen[n]++

		return true
	})

	assert.NotEmpty(t, seen)

	for node, count := range seen {
		assert.Equal(t, 1, count, node.Type)
	}
}

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	tree, err := syntax.Parse("x = 1\n", "python")
	require.NoError(t, err)

	var order []string

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		order = append(order, n.Type)

		return true
	})

	require.NotEmpty(t, order)
	assert.Equal(t, "module", order[0])
}

func TestWalkPrunesOnFalse(t *testing.T) {
	t.Parallel()

	tree, err := syntax.Parse("x = 1\n", "python")
	require.NoError(t, err)

	count := 0

	syntax.Walk(tree.Root, func(*syntax.Node) bool {
		count++

		return false
	})

	assert.Equal(t, 1, count)
}

func TestWalkNilRoot(t *testing.T) {
	t.Parallel()

	called := false

	syntax.Walk(nil, func(*syntax.Node) bool {
		called = true

		return true
	})

	assert.False(t, called)
}

func TestWalkNestedDepthTracking(t *testing.T) {
	t.Parallel()

	code := "if a:\n    if b:\n        pass\n"

	tree, err := syntax.Parse(code, "python")
	require.NoError(t, err)

	nesting := syntax.NestingNodes("python")
	maxDepth := 0

	syntax.WalkNested(tree.Root, nesting.Contains, func(n *syntax.Node, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})

	assert.Equal(t, 2, maxDepth)
}

func TestWalkNestedRootDepthZero(t *testing.T) {
	t.Parallel()

	tree, err := syntax.Parse("x = 1\n", "python")
	require.NoError(t, err)

	nesting := syntax.NestingNodes("python")

	var rootDepth int

	first := true

	syntax.WalkNested(tree.Root, nesting.Contains, func(n *syntax.Node, depth int) {
		if first {
			rootDepth = depth
			first = false
		}
	})

	assert.Equal(t, 0, rootDepth)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	tree, err := syntax.Parse("a = 1\nb = 2\n", "python")
	require.NoError(t, err)

	assignments := syntax.Collect(tree.Root, func(n *syntax.Node) bool {
		return n.Type == "assignment"
	})

	assert.Len(t, assignments, 2)
}
