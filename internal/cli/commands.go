package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/kmerasm/dfs"
	"github.com/katalvlaran/kmerasm/internal/fragio"
	"github.com/katalvlaran/kmerasm/kmer"
	"github.com/katalvlaran/kmerasm/overlap"
)

// KmersCmd splits a sequence into k-mers.
type KmersCmd struct {
	Sequence string `arg:"" optional:"" help:"Sequence to split"`
	File     string `short:"f" type:"existingfile" help:"Read the sequence from a FASTA or plain file"`
	K        int    `short:"k" default:"3" help:"k-mer length"`
}

// Run executes the kmers command.
func (c *KmersCmd) Run(g *Globals) error {
	seq := strings.ToUpper(c.Sequence)
	switch {
	case c.File != "" && seq != "":
		return errors.New("give either a sequence or --file, not both")
	case c.File != "":
		rs, err := fragio.ReadFile(c.File)
		if err != nil {
			return err
		}
		seq = rs.Sequence()
	}

	kmers, err := kmer.Kmerize(seq, c.K)
	if err != nil {
		return err
	}
	for _, km := range kmers {
		fmt.Fprintln(g.out(), km)
	}
	if g.Verbose {
		g.detail("%d %d-mers from %d symbols", len(kmers), c.K, len(seq))
	}

	return nil
}

// GraphCmd prints the overlap graph as an adjacency list.
type GraphCmd struct {
	Source
}

// Run executes the graph command.
func (c *GraphCmd) Run(g *Globals) error {
	og, err := c.graph()
	if err != nil {
		return err
	}

	arrow := g.paint(color.Faint).Sprint("->")
	for _, label := range og.Labels() {
		succ, err := og.Successors(label)
		if err != nil {
			return err
		}
		fmt.Fprintf(g.out(), "%s %s %s\n", label, arrow, strings.Join(succ, " "))
	}
	g.success("%d nodes, %d edges (k=%d)", og.Len(), og.EdgeCount(), og.K())

	return nil
}

// PathsCmd lists Hamiltonian paths as they are found.
type PathsCmd struct {
	Source
	Max int `short:"n" default:"0" env:"KMERASM_MAX_PATHS" help:"Stop after this many paths (0 = all)"`
}

// Run executes the paths command.
func (c *PathsCmd) Run(g *Globals) error {
	og, err := c.graph()
	if err != nil {
		return err
	}

	count := 0
	onPath := func(p []string) error {
		count++
		fmt.Fprintln(g.out(), strings.Join(p, " "))
		if g.Verbose {
			seq, _ := og.Reconstruct(p)
			g.detail("  #%d spells %s", count, seq)
		}

		return nil
	}

	_, err = og.HamiltonianPaths(
		dfs.WithPathContext(g.context()),
		dfs.WithMaxPaths(c.Max),
		dfs.WithOnPath(onPath),
	)
	if err != nil {
		return err
	}

	if count == 0 {
		g.warn("no Hamiltonian path")
		return nil
	}
	g.success("%d Hamiltonian path(s)", count)

	return nil
}

// CheckCmd reports whether a label sequence is a valid and Hamiltonian path.
type CheckCmd struct {
	Source
	Path []string `arg:"" help:"Node labels such as CAT-5, in path order"`
}

// Run executes the check command.
func (c *CheckCmd) Run(g *Globals) error {
	og, err := c.graph()
	if err != nil {
		return err
	}

	valid := og.ValidPath(c.Path)
	fmt.Fprintf(g.out(), "valid:       %s\n", g.verdict(valid))
	fmt.Fprintf(g.out(), "hamiltonian: %s\n", g.verdict(og.IsHamiltonian(c.Path)))

	seq, ok := og.Reconstruct(c.Path)
	if !ok {
		fmt.Fprintf(g.out(), "sequence:    %s\n", g.paint(color.FgRed).Sprint("none"))
		if !valid && g.Verbose {
			c.explain(g, og)
		}

		return nil
	}
	fmt.Fprintf(g.out(), "sequence:    %s\n", seq)

	return nil
}

// explain names the first broken step of an invalid path.
func (c *CheckCmd) explain(g *Globals, og *overlap.Graph) {
	for i, label := range c.Path {
		if _, ok := og.Node(label); !ok {
			g.detail("  unknown node %s at position %d", label, i+1)
			return
		}
		if i > 0 && !og.HasEdge(c.Path[i-1], label) {
			g.detail("  no edge %s -> %s at position %d", c.Path[i-1], label, i+1)
			return
		}
	}
}

func (g *Globals) verdict(ok bool) string {
	if ok {
		return g.paint(color.FgGreen).Sprint("yes")
	}

	return g.paint(color.FgRed).Sprint("no")
}

// AssembleCmd prints every distinct sequence spelled by a Hamiltonian path.
type AssembleCmd struct {
	Source
	Max int `short:"n" default:"0" env:"KMERASM_MAX_PATHS" help:"Stop after this many paths (0 = all)"`
}

// Run executes the assemble command.
func (c *AssembleCmd) Run(g *Globals) error {
	og, err := c.graph()
	if err != nil {
		return err
	}

	paths := 0
	seqs, err := og.Assemble(
		dfs.WithPathContext(g.context()),
		dfs.WithMaxPaths(c.Max),
		dfs.WithOnPath(func([]string) error {
			paths++
			if g.Verbose && paths%1000 == 0 {
				g.detail("  %d paths found", paths)
			}

			return nil
		}),
	)
	if err != nil {
		return err
	}

	if len(seqs) == 0 {
		g.warn("no sequence is consistent with the fragments")
		return nil
	}
	for _, s := range seqs {
		fmt.Fprintln(g.out(), s)
	}
	g.success("%d sequence(s) from %d path(s)", len(seqs), paths)

	return nil
}
