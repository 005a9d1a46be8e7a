// Package core provides the thread-safe, insertion-ordered in-memory graph that
// backs the overlap graph and the traversal algorithms of kmerasm.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Every enumeration follows insertion order. Vertices() lists vertices in the
//	order they were first added, Edges() and Neighbors() list edges in creation
//	order, and NeighborIDs() lists adjacent vertices by their insertion rank.
//	Callers that add vertices in input order (the overlap graph adds one vertex
//	per fragment, first to last) therefore get traversals that follow input order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool         // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique
//	Vertices() []string                      // O(V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (in, out int, err error)
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
