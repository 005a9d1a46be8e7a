package overlap

import (
	"fmt"

	"github.com/katalvlaran/kmerasm/dfs"
)

// HamiltonianPaths returns every Hamiltonian path of g as label sequences.
// Starts and successors are tried in input order. The result is always a
// list; nil means no Hamiltonian path exists.
func (g *Graph) HamiltonianPaths(opts ...dfs.PathOption) ([][]string, error) {
	paths, err := dfs.HamiltonianPaths(g.store, opts...)
	if err != nil {
		return paths, fmt.Errorf("overlap: enumerate paths: %w", err)
	}

	return paths, nil
}

// Assemble reconstructs every Hamiltonian path and returns the distinct
// sequences in the order they were first produced. Repeated fragments permute
// into several paths that spell the same sequence; those collapse here.
func (g *Graph) Assemble(opts ...dfs.PathOption) ([]string, error) {
	paths, err := g.HamiltonianPaths(opts...)

	var out []string
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		seq, ok := g.Reconstruct(p)
		if !ok {
			continue
		}
		if _, dup := seen[seq]; dup {
			continue
		}
		seen[seq] = struct{}{}
		out = append(out, seq)
	}

	return out, err
}
