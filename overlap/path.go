package overlap

import "strings"

// ValidPath reports whether every consecutive pair of path is an overlap edge.
// Nodes may repeat. An empty path is valid; a path naming an unknown node,
// even a single-element one, is not.
func (g *Graph) ValidPath(path []string) bool {
	for i, label := range path {
		if _, ok := g.index[label]; !ok {
			return false
		}
		if i > 0 && !g.store.HasEdge(path[i-1], label) {
			return false
		}
	}

	return true
}

// IsHamiltonian reports whether path is valid and visits every node exactly once.
func (g *Graph) IsHamiltonian(path []string) bool {
	if len(path) != len(g.nodes) || !g.ValidPath(path) {
		return false
	}
	seen := make(map[string]struct{}, len(path))
	for _, label := range path {
		if _, dup := seen[label]; dup {
			return false
		}
		seen[label] = struct{}{}
	}

	return true
}

// Reconstruct spells the sequence of a Hamiltonian path: the first fragment
// followed by the last symbol of every later fragment. It returns ("", false)
// when path is not Hamiltonian.
func (g *Graph) Reconstruct(path []string) (string, bool) {
	if !g.IsHamiltonian(path) {
		return "", false
	}

	var b strings.Builder
	b.Grow(g.k + len(path) - 1)
	for i, label := range path {
		f := g.nodes[g.index[label]].Fragment
		if i == 0 {
			b.WriteString(f)
			continue
		}
		b.WriteByte(f[g.k-1])
	}

	return b.String(), true
}
