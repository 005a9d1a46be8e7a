// Package kmerasm reconstructs sequences from overlapping fixed-length
// fragments (k-mers) by exhaustive Hamiltonian path search on an overlap graph.
//
// What is kmerasm?
//
//	A small, deterministic library and command line that bring together:
//		• k-mer windowing and composition checks (kmer/)
//		• a thread-safe, insertion-ordered graph store (core/)
//		• DFS and explicit-stack Hamiltonian path enumeration (dfs/)
//		• the overlap graph, path checks and reconstruction (overlap/)
//		• FASTA and line-oriented fragment input (internal/fragio/)
//		• the kmerasm command (cmd/kmerasm, internal/cli/)
//
// Node identity:
//
//	Every input fragment is a distinct node, labelled "<fragment>-<index>" with a
//	1-based input index. Three copies of "CAT" at positions 5, 6 and 7 are the
//	nodes CAT-5, CAT-6 and CAT-7.
//
// Overlap:
//
//	u → v  ⇔  u[1:] == v[:k-1]
//
//	    ACC-2 → CCA-8 → CAT-5 → ATG-3 → …
//
// Reconstruction takes the first fragment of a Hamiltonian path and appends the
// last symbol of every following fragment:
//
//	ACC + A + T + G + … = ACCATG…
//
// Quick start:
//
//	frags, _ := kmer.Kmerize("CAATCATGATGATGATC", 3)
//	g, _ := overlap.NewGraph(frags)
//	seqs, _ := g.Assemble()
//
// Search cost is exponential in the number of fragments in the worst case; the
// package targets small inputs where every consistent sequence is wanted.
package kmerasm
