package depgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcyclicOrder(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	require.Equal(t, [][]string{{"c"}, {"b"}, {"a"}}, g.SCC())
}

func TestCycleIsOneComponent(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	require.Equal(t, [][]string{{"a", "b"}}, g.SCC())
}

func TestMixedComponents(t *testing.T) {
	// expr -> term -> factor -> expr cycle, plus leaf "num" and root "start"
	g := New()
	g.AddEdge("start", "expr")
	g.AddEdge("expr", "term")
	g.AddEdge("term", "factor")
	g.AddEdge("factor", "expr")
	g.AddEdge("factor", "num")

	components := g.SCC()
	require.Len(t, components, 3)

	position := make(map[string]int)
	for i, c := range components {
		for _, name := range c {
			position[name] = i
		}
	}

	require.Equal(t, position["expr"], position["term"])
	require.Equal(t, position["expr"], position["factor"])
	require.Less(t, position["num"], position["expr"])
	require.Less(t, position["expr"], position["start"])
}

func TestSelfLoop(t *testing.T) {
	g := New()
	g.AddEdge("a", "a")
	g.Node("b")

	require.True(t, g.Recursive("a"))
	require.False(t, g.Recursive("b"))
}

func TestReaches(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b")

	require.True(t, g.Reaches("a", "c"))
	require.False(t, g.Reaches("c", "a"))
	require.False(t, g.Reaches("a", "a"))
	require.True(t, g.Reaches("b", "b"))
	require.True(t, g.Recursive("c"))
	require.False(t, g.Recursive("a"))
	require.False(t, g.Reaches("a", "missing"))
}

func TestIsolatedNode(t *testing.T) {
	g := New()
	g.Node("lonely")

	require.Equal(t, [][]string{{"lonely"}}, g.SCC())
	require.False(t, g.Recursive("lonely"))
}
