// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in creation order (numeric Edge.ID order).
//
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from 'from' to 'to' and returns its unique Edge.ID.
// Missing endpoints are added first, in argument order.
//
// Implementation:
//   - Stage 1: Validate IDs and the loop policy.
//   - Stage 2: Ensure both endpoints exist (idempotent AddVertex).
//   - Stage 3: Under muEdgeAdj, enforce the multi-edge policy, allocate an ID,
//     register the edge and insert it into adjacency (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	directed := g.Directed()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.adjacency[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
		// an undirected edge already covers the reverse orientation
		if !directed && len(g.adjacency[to][from]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(seq, 10),
		From:     from,
		To:       to,
		Directed: directed,
		seq:      seq,
	}
	g.edges[e.ID] = e

	ensureAdjacencyPair(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if !directed && from != to {
		ensureAdjacencyPair(g, to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// HasEdge reports true if at least one edge lets a walk step from 'from' to 'to'.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in creation order.
// Returned pointers are live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges in the catalog.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
