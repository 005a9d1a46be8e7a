// Package overlap builds the k-mer overlap graph used for fragment assembly and
// answers path questions about it.
//
// What:
//
//   - NewGraph assigns every input fragment a node identity (fragment, 1-based
//     input index), rendered as a label "<fragment>-<index>" such as "CAT-5".
//     Duplicate fragments stay distinct nodes.
//   - An edge u→v exists iff the last k−1 symbols of u equal the first k−1
//     symbols of v, for every ordered pair of distinct identities. No node has
//     an edge to itself.
//   - ValidPath, IsHamiltonian and Reconstruct answer questions about a label
//     sequence; they never fail, they answer false (or "", false).
//   - HamiltonianPaths enumerates every Hamiltonian path (always a list) and
//     Assemble reduces them to the distinct sequences they spell.
//
// Determinism:
//
//	Nodes, successors and enumerated paths all follow input fragment order.
//
// Immutability:
//
//	A Graph is never modified after NewGraph returns, so it may be shared by
//	concurrent readers.
//
// Complexity:
//
//   - NewGraph:         Time O(n²·k), Memory O(n + E)
//   - ValidPath:        Time O(p)
//   - IsHamiltonian:    Time O(p)
//   - HamiltonianPaths: exponential in n in the worst case
//
// Errors:
//
//   - ErrNoFragments         empty fragment list
//   - ErrFragmentTooShort    fragment length below 2
//   - ErrInconsistentLength  fragments of different lengths
//   - ErrBadLabel            ParseLabel input is not "<fragment>-<index>"
//   - ErrUnknownNode         Successors for a label not in the graph
package overlap
