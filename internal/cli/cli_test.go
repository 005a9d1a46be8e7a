package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleFragments = []string{
	"ATA", "ACC", "ATG", "ATT", "CAT", "CAT", "CAT", "CCA",
	"GCA", "GGC", "TAA", "TCA", "TGG", "TTC", "TTT",
}

func newGlobals() (*Globals, *bytes.Buffer) {
	var buf bytes.Buffer

	return &Globals{NoColor: true, Out: &buf}, &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestKmersCmd_Run(t *testing.T) {
	t.Parallel()

	g, buf := newGlobals()
	cmd := &KmersCmd{Sequence: "acgt", K: 3}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "ACG\nCGT\n", buf.String())

	g, _ = newGlobals()
	cmd = &KmersCmd{Sequence: "ACGT", K: 5}
	assert.Error(t, cmd.Run(g))
}

func TestKmersCmd_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seq.fa")
	require.NoError(t, os.WriteFile(path, []byte(">s\nCAAT\nCA\n"), 0o600))

	g, buf := newGlobals()
	require.NoError(t, (&KmersCmd{File: path, K: 4}).Run(g))
	assert.Equal(t, []string{"CAAT", "AATC", "ATCA"}, lines(buf))

	g, _ = newGlobals()
	assert.Error(t, (&KmersCmd{File: path, Sequence: "ACGT", K: 2}).Run(g))
}

func TestGraphCmd_Run(t *testing.T) {
	t.Parallel()

	g, buf := newGlobals()
	cmd := &GraphCmd{Source: Source{Fragments: []string{"ATG", "TGA", "GAC"}}}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, []string{
		"ATG-1 -> TGA-2",
		"TGA-2 -> GAC-3",
		"GAC-3 -> ",
		"3 nodes, 2 edges (k=3)",
	}, lines(buf))
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	g, _ := newGlobals()
	err := (&GraphCmd{}).Run(g)
	assert.ErrorIs(t, err, errSource)

	err = (&GraphCmd{Source: Source{Sequence: "ACGT", K: 2, Fragments: []string{"AC"}}}).Run(g)
	assert.ErrorIs(t, err, errSource)

	err = (&GraphCmd{Source: Source{Fragments: []string{"AC", "GU"}}}).Run(g)
	assert.ErrorContains(t, err, "--fragment")
}

func TestPathsCmd_Run(t *testing.T) {
	t.Parallel()

	g, buf := newGlobals()
	cmd := &PathsCmd{Source: Source{Fragments: exampleFragments}, Max: 1}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, []string{
		"ACC-2 CCA-8 CAT-5 ATG-3 TGG-13 GGC-10 GCA-9 CAT-6 ATT-4 TTT-15 TTC-14 TCA-12 CAT-7 ATA-1 TAA-11",
		"1 Hamiltonian path(s)",
	}, lines(buf))
}

func TestPathsCmd_VerboseAndNone(t *testing.T) {
	t.Parallel()

	g, buf := newGlobals()
	g.Verbose = true
	cmd := &PathsCmd{Source: Source{Sequence: "ACGT", K: 2}}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, []string{
		"AC-1 CG-2 GT-3",
		"  #1 spells ACGT",
		"1 Hamiltonian path(s)",
	}, lines(buf))

	g, buf = newGlobals()
	cmd = &PathsCmd{Source: Source{Fragments: []string{"ACG", "TTT"}}}
	require.NoError(t, cmd.Run(g))
	assert.Equal(t, "no Hamiltonian path\n", buf.String())
}

func TestPathsCmd_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newGlobals()
	g.Ctx = ctx
	err := (&PathsCmd{Source: Source{Fragments: exampleFragments}}).Run(g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	full := strings.Fields("ACC-2 CCA-8 CAT-5 ATG-3 TGG-13 GGC-10 GCA-9 CAT-6 ATT-4 TTT-15 TTC-14 TCA-12 CAT-7 ATA-1 TAA-11")

	g, buf := newGlobals()
	require.NoError(t, (&CheckCmd{Source: Source{Fragments: exampleFragments}, Path: full}).Run(g))
	assert.Equal(t, []string{
		"valid:       yes",
		"hamiltonian: yes",
		"sequence:    ACCATGGCATTTCATAA",
	}, lines(buf))

	g, buf = newGlobals()
	require.NoError(t, (&CheckCmd{Source: Source{Fragments: exampleFragments}, Path: full[:4]}).Run(g))
	assert.Equal(t, []string{
		"valid:       yes",
		"hamiltonian: no",
		"sequence:    none",
	}, lines(buf))

	g, buf = newGlobals()
	g.Verbose = true
	require.NoError(t, (&CheckCmd{
		Source: Source{Fragments: exampleFragments},
		Path:   []string{"ACC-2", "CAT-5"},
	}).Run(g))
	assert.Equal(t, []string{
		"valid:       no",
		"hamiltonian: no",
		"sequence:    none",
		"  no edge ACC-2 -> CAT-5 at position 2",
	}, lines(buf))
}

func TestAssembleCmd_Run(t *testing.T) {
	t.Parallel()

	g, buf := newGlobals()
	require.NoError(t, (&AssembleCmd{Source: Source{Fragments: exampleFragments}}).Run(g))
	assert.Equal(t, []string{
		"ACCATGGCATTTCATAA",
		"ACCATTTCATGGCATAA",
		"2 sequence(s) from 12 path(s)",
	}, lines(buf))
}

func TestAssembleCmd_WholeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "genome.fa")
	require.NoError(t, os.WriteFile(path, []byte(">genome\nCAATCATGAT\nGATGATC\n"), 0o600))

	g, buf := newGlobals()
	cmd := &AssembleCmd{Source: Source{File: path, Whole: true, K: 3}}
	require.NoError(t, cmd.Run(g))
	out := lines(buf)
	require.Len(t, out, 9)
	assert.Equal(t, "CAATCATGATGATGATC", out[0])
	assert.Equal(t, "8 sequence(s) from 3456 path(s)", out[8])
}

func TestExecute(t *testing.T) {
	var buf bytes.Buffer
	err := Execute([]string{"kmers", "ACGT", "-k", "2", "--no-color"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "AC\nCG\nGT\n", buf.String())
}

func TestExecute_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frags.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(exampleFragments, "\n")), 0o600))

	var buf bytes.Buffer
	err := Execute([]string{"assemble", "--file", path, "--no-color"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ACCATTTCATGGCATAA\n")
}

func TestExecute_MaxPathsFromEnv(t *testing.T) {
	t.Setenv("KMERASM_MAX_PATHS", "2")
	t.Setenv("KMERASM_NO_COLOR", "true")

	var buf bytes.Buffer
	err := Execute([]string{"paths", "--fragment", strings.Join(exampleFragments, ",")}, &buf)
	require.NoError(t, err)
	out := lines(&buf)
	require.Len(t, out, 3)
	assert.Equal(t, "2 Hamiltonian path(s)", out[2])
}

func TestExecute_ParseError(t *testing.T) {
	var buf bytes.Buffer
	err := Execute([]string{"paths", "--no-such-flag"}, &buf)
	assert.Error(t, err)
}
