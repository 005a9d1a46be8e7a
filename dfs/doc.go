// Package dfs implements depth‑first search traversal and exhaustive
// Hamiltonian path enumeration on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Full (forest) traversal
//   - HamiltonianPaths: lists every simple path that visits all vertices
//     exactly once, using backtracking over an explicit stack of frames
//     {vertex, next-successor cursor}. Start vertices and successors are tried
//     in vertex insertion order, so the output order is a pure function of how
//     the graph was built.
//
// Why:
//   - Reachability checks that prune impossible search roots
//   - Fragment assembly: on an overlap graph, every Hamiltonian path spells a
//     sequence consistent with the full fragment set
//
// Pruning (exact, never drops a path):
//
//   - more than one vertex without predecessors, or more than one without
//     successors ⇒ no Hamiltonian path exists;
//   - a vertex without predecessors must be the first vertex of every path;
//   - a start that cannot reach every vertex is skipped.
//
// Complexity:
//
//   - DFS:              Time O(V+E), Memory O(V)
//   - HamiltonianPaths: Time exponential in V in the worst case (bounded by the
//     product of out-degrees along explored branches), Memory O(V) for the search
//     state plus the output
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrNegativeLimit        WithMaxPaths received a negative limit
//   - context.Canceled        search canceled via context
//   - hook errors             propagated from OnVisit, OnExit or OnPath
package dfs
