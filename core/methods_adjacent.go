// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
//
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() returns unique IDs sorted by the neighbor's insertion rank.
//
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.
package core

import "sort"

// Neighbors returns all edges a walk can leave id by.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency); self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID) and existence (ErrVertexNotFound)
//     under muVert, then snapshot adjacency under muEdgeAdj.
//   - Stage 2: Collect the edges and sort them by creation order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacency[id] {
		for eid = range edgeSet {
			e, ok := g.edges[eid]
			if !ok {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id in one step,
// ordered by the neighbors' insertion rank.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound.
//
// Complexity:
//   - Time O(d + k log k), Space O(k), where k is the number of unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for to, edgeSet := range g.adjacency[id] {
		if len(edgeSet) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.vertices[ids[i]].rank < g.vertices[ids[j]].rank
	})

	return ids, nil
}

// ensureAdjacency bootstraps the outer adjacency bucket for id.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacencyPair bootstraps adjacency[from][to].
// Caller must hold muEdgeAdj write lock.
func ensureAdjacencyPair(g *Graph, from, to string) {
	ensureAdjacency(g, from)
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
