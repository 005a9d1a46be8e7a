package overlap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoFragments is returned by NewGraph for an empty fragment list.
	ErrNoFragments = errors.New("overlap: no fragments")

	// ErrFragmentTooShort is returned when fragments are shorter than two symbols;
	// a (k−1)-overlap needs k ≥ 2.
	ErrFragmentTooShort = errors.New("overlap: fragment length must be at least 2")

	// ErrInconsistentLength is returned when fragments differ in length.
	ErrInconsistentLength = errors.New("overlap: fragments differ in length")

	// ErrBadLabel is returned by ParseLabel for malformed labels.
	ErrBadLabel = errors.New("overlap: malformed node label")

	// ErrUnknownNode is returned when a label names no node of the graph.
	ErrUnknownNode = errors.New("overlap: unknown node")
)

// Node is the identity of one input fragment.
type Node struct {
	// Fragment is the k-mer itself.
	Fragment string

	// Index is the 1-based position of the fragment in the input list.
	Index int
}

// Label renders the node as "<fragment>-<index>".
func (n Node) Label() string {
	return n.Fragment + "-" + strconv.Itoa(n.Index)
}

// String implements fmt.Stringer.
func (n Node) String() string { return n.Label() }

// ParseLabel is the inverse of Node.Label. It splits on the last '-', so the
// fragment part may itself contain dashes.
func ParseLabel(label string) (Node, error) {
	i := strings.LastIndexByte(label, '-')
	if i <= 0 || i == len(label)-1 {
		return Node{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	idx, err := strconv.Atoi(label[i+1:])
	if err != nil || idx < 1 {
		return Node{}, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return Node{Fragment: label[:i], Index: idx}, nil
}
