// Package kmer splits sequences into overlapping fixed-length windows (k-mers)
// and compares fragment multisets.
//
// Kmerize is the fragment source for the overlap graph: every window of length k,
// at every offset from 0 to len(seq)-k, left to right, duplicates retained.
//
// Complexity:
//
//   - Kmerize:         Time O(n), Memory O(n) (windows share the input's backing array)
//   - Composition:     Time O(m), Memory O(m)
//   - SameComposition: Time O(m), Memory O(m)
package kmer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when Kmerize receives an empty sequence.
	ErrEmptySequence = errors.New("kmer: sequence is empty")

	// ErrInvalidK is returned when k is outside [1, len(sequence)].
	ErrInvalidK = errors.New("kmer: k out of range")
)

// Kmerize returns every contiguous substring of seq of length k, in order.
// The result has len(seq)-k+1 elements; element i is seq[i:i+k].
func Kmerize(seq string, k int) ([]string, error) {
	if seq == "" {
		return nil, ErrEmptySequence
	}
	if k <= 0 || k > len(seq) {
		return nil, fmt.Errorf("%w: k=%d, sequence length %d", ErrInvalidK, k, len(seq))
	}

	n := len(seq) - k + 1
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = seq[i : i+k]
	}

	return out, nil
}

// Composition counts how many times each fragment value occurs.
func Composition(fragments []string) map[string]int {
	counts := make(map[string]int, len(fragments))
	for _, f := range fragments {
		counts[f]++
	}

	return counts
}

// SameComposition reports whether a and b hold the same fragments with the
// same multiplicities, ignoring order.
func SameComposition(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := Composition(a)
	for _, f := range b {
		counts[f]--
		if counts[f] < 0 {
			return false
		}
	}

	return true
}
