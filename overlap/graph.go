package overlap

import (
	"fmt"

	"github.com/katalvlaran/kmerasm/core"
)

// Graph is an immutable overlap graph over a fragment list.
type Graph struct {
	k     int
	nodes []Node         // input order
	index map[string]int // label → position in nodes
	store *core.Graph    // directed, loop-free, insertion order = input order
}

// NewGraph builds the overlap graph of fragments.
//
// Implementation:
//   - Stage 1: validate the list (non-empty, uniform length k ≥ 2).
//   - Stage 2: add one vertex per fragment, labelled "<fragment>-<i+1>".
//   - Stage 3: compare every ordered pair of distinct nodes and add u→v when
//     suffix(u) == prefix(v).
//
// Complexity: Time O(n²·k), Memory O(n + E).
func NewGraph(fragments []string) (*Graph, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}
	k := len(fragments[0])
	if k < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrFragmentTooShort, k)
	}

	g := &Graph{
		k:     k,
		nodes: make([]Node, len(fragments)),
		index: make(map[string]int, len(fragments)),
		store: core.NewGraph(core.WithDirected(true)),
	}

	for i, f := range fragments {
		n := Node{Fragment: f, Index: i + 1}
		if len(f) != k {
			return nil, fmt.Errorf("%w: %s has length %d, want %d", ErrInconsistentLength, n.Label(), len(f), k)
		}
		g.nodes[i] = n
		g.index[n.Label()] = i
		if err := g.store.AddVertex(n.Label()); err != nil {
			return nil, fmt.Errorf("overlap: add node %s: %w", n.Label(), err)
		}
	}

	for i, u := range g.nodes {
		suffix := u.Fragment[1:]
		for j, v := range g.nodes {
			if i == j || v.Fragment[:k-1] != suffix {
				continue
			}
			if _, err := g.store.AddEdge(u.Label(), v.Label()); err != nil {
				return nil, fmt.Errorf("overlap: add edge %s→%s: %w", u.Label(), v.Label(), err)
			}
		}
	}

	return g, nil
}

// K returns the fragment length.
func (g *Graph) K() int { return g.k }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of overlap edges.
func (g *Graph) EdgeCount() int { return g.store.EdgeCount() }

// Nodes returns a copy of the node list in input order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Labels returns every node label in input order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label()
	}

	return out
}

// Node looks up the node behind label.
func (g *Graph) Node(label string) (Node, bool) {
	i, ok := g.index[label]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Successors returns the labels reachable from label in one edge, in input order.
func (g *Graph) Successors(label string) ([]string, error) {
	if _, ok := g.index[label]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, label)
	}

	return g.store.NeighborIDs(label)
}

// HasEdge reports whether from→to is an overlap edge.
func (g *Graph) HasEdge(from, to string) bool {
	return g.store.HasEdge(from, to)
}
