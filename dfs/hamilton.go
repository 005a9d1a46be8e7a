// Package dfs: exhaustive Hamiltonian path enumeration.
//
// HamiltonianPaths lists every simple path that visits all vertices of a
// core.Graph exactly once. The search is a backtracking DFS over an explicit
// stack of frames, one per path position; each frame remembers which successor
// of its vertex to try next. A frame whose successors are exhausted is popped
// (backtrack) and its vertex leaves the visited set.
//
// Determinism:
//   - Start vertices are tried in insertion order; successors in insertion order.
//   - For a fixed construction order the output order is fixed.
//
// Complexity:
//   - Worst case exponential in V; only edge-connected extensions are explored.
//   - Memory: O(V) search state (stack, path, visited) plus the output.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/kmerasm/core"
)

// frame is one position of the current partial path.
type frame struct {
	v    int // vertex index
	next int // cursor into succ[v]
}

// hamiltonEngine holds the dense search state.
type hamiltonEngine struct {
	graph *core.Graph
	opts  PathOptions

	ids  []string // vertex index → ID, insertion order
	succ [][]int  // out-neighbors per vertex, insertion order, no self-loops
	n    int

	onPath []bool  // vertices on the current partial path
	path   []int   // current partial path
	stack  []frame // explicit search stack, parallel to path

	paths [][]string
	done  bool // MaxPaths reached
}

// HamiltonianPaths returns every Hamiltonian path of g as a list of vertex-ID
// sequences. The result is always a list: a graph with exactly one Hamiltonian
// path yields a one-element list, a graph with none yields nil.
//
// Errors:
//   - ErrGraphNil if g is nil; ErrNegativeLimit for WithMaxPaths(n<0).
//   - Context errors and OnPath hook errors abort the search; the paths found
//     so far are returned together with the error.
func HamiltonianPaths(g *core.Graph, opts ...PathOption) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	popts := DefaultPathOptions()
	var fn PathOption
	for _, fn = range opts {
		fn(&popts)
	}
	if popts.MaxPaths < 0 {
		return nil, ErrNegativeLimit
	}

	e, err := newHamiltonEngine(g, popts)
	if err != nil {
		return nil, err
	}

	starts, err := e.startCandidates()
	if err != nil {
		return nil, err
	}

	for _, s := range starts {
		if err = e.search(s); err != nil {
			return e.paths, err
		}
		if e.done {
			break
		}
	}

	return e.paths, nil
}

// newHamiltonEngine snapshots g into dense index form.
func newHamiltonEngine(g *core.Graph, opts PathOptions) (*hamiltonEngine, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	succ := make([][]int, len(ids))
	for i, id := range ids {
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
		out := make([]int, 0, len(nbs))
		for _, nid := range nbs {
			j, ok := index[nid]
			if !ok || j == i {
				continue
			}
			out = append(out, j)
		}
		succ[i] = out
	}

	return &hamiltonEngine{
		graph:  g,
		opts:   opts,
		ids:    ids,
		succ:   succ,
		n:      len(ids),
		onPath: make([]bool, len(ids)),
		path:   make([]int, 0, len(ids)),
		stack:  make([]frame, 0, len(ids)),
	}, nil
}

// startCandidates applies the degree and reachability pruning rules and
// returns the admissible first vertices in insertion order.
func (e *hamiltonEngine) startCandidates() ([]int, error) {
	if e.n == 0 {
		return nil, nil
	}

	indeg := make([]int, e.n)
	for _, out := range e.succ {
		for _, j := range out {
			indeg[j]++
		}
	}

	var sources, sinks []int
	for i := 0; i < e.n; i++ {
		if indeg[i] == 0 {
			sources = append(sources, i)
		}
		if len(e.succ[i]) == 0 {
			sinks = append(sinks, i)
		}
	}
	if e.n > 1 && (len(sources) > 1 || len(sinks) > 1) {
		return nil, nil
	}

	candidates := make([]int, 0, e.n)
	if len(sources) == 1 {
		candidates = append(candidates, sources[0])
	} else {
		for i := 0; i < e.n; i++ {
			candidates = append(candidates, i)
		}
	}

	starts := candidates[:0]
	for _, s := range candidates {
		res, err := DFS(e.graph, e.ids[s], WithContext(e.opts.Ctx))
		if err != nil {
			return nil, err
		}
		if len(res.Order) == e.n {
			starts = append(starts, s)
		}
	}

	return starts, nil
}

// search enumerates every Hamiltonian path that begins at s.
func (e *hamiltonEngine) search(s int) error {
	defer e.reset()

	e.push(s)
	for len(e.stack) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		if len(e.path) == e.n {
			if err := e.record(); err != nil {
				return err
			}
			if e.done {
				return nil
			}
			e.pop()
			continue
		}

		top := &e.stack[len(e.stack)-1]
		advanced := false
		for top.next < len(e.succ[top.v]) {
			w := e.succ[top.v][top.next]
			top.next++
			if !e.onPath[w] {
				e.push(w) // invalidates top
				advanced = true
				break
			}
		}
		if !advanced {
			e.pop()
		}
	}

	return nil
}

func (e *hamiltonEngine) push(v int) {
	e.onPath[v] = true
	e.path = append(e.path, v)
	e.stack = append(e.stack, frame{v: v})
}

func (e *hamiltonEngine) pop() {
	top := e.stack[len(e.stack)-1]
	e.onPath[top.v] = false
	e.path = e.path[:len(e.path)-1]
	e.stack = e.stack[:len(e.stack)-1]
}

// reset clears the search state after an early exit.
func (e *hamiltonEngine) reset() {
	for len(e.stack) > 0 {
		e.pop()
	}
}

// record copies the current complete path into the result.
func (e *hamiltonEngine) record() error {
	labels := make([]string, len(e.path))
	for i, v := range e.path {
		labels[i] = e.ids[v]
	}

	if e.opts.OnPath != nil {
		if err := e.opts.OnPath(labels); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}

	e.paths = append(e.paths, labels)
	if e.opts.MaxPaths > 0 && len(e.paths) >= e.opts.MaxPaths {
		e.done = true
	}

	return nil
}
