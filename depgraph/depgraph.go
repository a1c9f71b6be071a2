// Package depgraph defines the non-terminal dependency graph.
//
// Nodes are non-terminal names; an edge runs from a definition to every
// non-terminal it references. The graph answers two questions: the
// strongly-connected components in topological order (for conversion order)
// and single-node reachability (for recursion detection; the inliner reuses
// the same routine for its eligibility check).
package depgraph

import (
	"sort"

	"github.com/syndiag/yacc2ebnf/internal/ints"
	"github.com/syndiag/yacc2ebnf/internal/queue"
)

// Graph is a directed graph over names. The zero value is not usable,
// create with New.
type Graph struct {
	names []string
	index map[string]int
	edges []*ints.Set
}

func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Node returns the index of name, adding the node if needed.
func (g *Graph) Node(name string) int {
	i, has := g.index[name]
	if has {
		return i
	}

	i = len(g.names)
	g.index[name] = i
	g.names = append(g.names, name)
	g.edges = append(g.edges, ints.NewSet())
	return i
}

// AddEdge adds the edge from → to, creating missing nodes.
func (g *Graph) AddEdge(from, to string) {
	f := g.Node(from)
	t := g.Node(to)
	g.edges[f].Add(t)
}

// Reaches reports whether to is reachable from from via at least one edge.
// Reaches(x, x) is true only for nodes on a cycle.
func (g *Graph) Reaches(from, to string) bool {
	f, hasFrom := g.index[from]
	t, hasTo := g.index[to]
	if !hasFrom || !hasTo {
		return false
	}

	visited := ints.NewSet()
	search := queue.New[int]()
	for _, next := range g.edges[f].ToSlice() {
		search.Append(next)
	}

	for {
		i, fetched := search.First()
		if !fetched {
			return false
		}

		if i == t {
			return true
		}
		if visited.Contains(i) {
			continue
		}

		visited.Add(i)
		for _, next := range g.edges[i].ToSlice() {
			search.Append(next)
		}
	}
}

// Recursive reports whether name can derive itself, directly or indirectly.
func (g *Graph) Recursive(name string) bool {
	return g.Reaches(name, name)
}

// SCC returns the strongly-connected components in topological order:
// no component has an edge to a later-listed component, so least-depended-upon
// components come first. Names inside a component keep insertion order.
func (g *Graph) SCC() [][]string {
	t := &tarjan{g: g, next: 1}
	t.lowlink = make([]int, len(g.names))
	t.found = make([]int, len(g.names))

	for i := range g.names {
		if t.found[i] == 0 {
			t.visit(i)
		}
	}

	return t.components
}

type tarjan struct {
	g          *Graph
	next       int
	found      []int // discovery order, 0 for unvisited
	lowlink    []int
	stack      []int
	onStack    ints.Set
	components [][]string
}

func (t *tarjan) visit(i int) {
	t.found[i] = t.next
	t.lowlink[i] = t.next
	t.next++
	t.stack = append(t.stack, i)
	t.onStack.Add(i)

	for _, next := range t.g.edges[i].ToSlice() {
		if t.found[next] == 0 {
			t.visit(next)
			if t.lowlink[next] < t.lowlink[i] {
				t.lowlink[i] = t.lowlink[next]
			}
		} else if t.onStack.Contains(next) && t.found[next] < t.lowlink[i] {
			t.lowlink[i] = t.found[next]
		}
	}

	if t.lowlink[i] != t.found[i] {
		return
	}

	members := make([]int, 0, 1)
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack.Remove(top)
		members = append(members, top)
		if top == i {
			break
		}
	}

	sort.Ints(members)
	names := make([]string, len(members))
	for j, m := range members {
		names[j] = t.g.names[m]
	}
	t.components = append(t.components, names)
}
