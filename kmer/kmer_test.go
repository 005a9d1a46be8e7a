package kmer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerasm/kmer"
)

func TestKmerize_Basic(t *testing.T) {
	got, err := kmer.Kmerize("ACGT", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACG", "CGT"}, got)
}

func TestKmerize_WindowProperties(t *testing.T) {
	seqs := []string{"A", "CAATCATGATGATGATC", "ACCATGGCATTTCATAA", "GGGG"}
	for _, seq := range seqs {
		for k := 1; k <= len(seq); k++ {
			got, err := kmer.Kmerize(seq, k)
			require.NoError(t, err, "seq=%s k=%d", seq, k)
			require.Len(t, got, len(seq)-k+1)
			for i, w := range got {
				assert.Len(t, w, k)
				assert.Equal(t, seq[i:i+k], w)
			}
		}
	}
}

func TestKmerize_KeepsDuplicates(t *testing.T) {
	got, err := kmer.Kmerize("AAAA", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "AA", "AA"}, got)
}

func TestKmerize_Errors(t *testing.T) {
	_, err := kmer.Kmerize("", 1)
	assert.ErrorIs(t, err, kmer.ErrEmptySequence)

	for _, k := range []int{0, -1, 5} {
		_, err = kmer.Kmerize("ACGT", k)
		assert.ErrorIs(t, err, kmer.ErrInvalidK, "k=%d", k)
	}
	assert.ErrorContains(t, err, "k=5, sequence length 4")
}

func TestComposition(t *testing.T) {
	counts := kmer.Composition([]string{"CAT", "ATG", "CAT"})
	assert.Equal(t, map[string]int{"CAT": 2, "ATG": 1}, counts)
}

func TestSameComposition(t *testing.T) {
	assert.True(t, kmer.SameComposition([]string{"A", "B", "A"}, []string{"A", "A", "B"}))
	assert.True(t, kmer.SameComposition(nil, []string{}))
	assert.False(t, kmer.SameComposition([]string{"A", "B"}, []string{"A", "A"}))
	assert.False(t, kmer.SameComposition([]string{"A"}, []string{"A", "A"}))
}
