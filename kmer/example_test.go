package kmer_test

import (
	"fmt"

	"github.com/katalvlaran/kmerasm/kmer"
)

func ExampleKmerize() {
	frags, err := kmer.Kmerize("ACGT", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(frags)

	// Output:
	// [ACG CGT]
}

func ExampleSameComposition() {
	a, _ := kmer.Kmerize("ACCATGGCATTTCATAA", 3)
	b, _ := kmer.Kmerize("ACCATTTCATGGCATAA", 3)
	fmt.Println(kmer.SameComposition(a, b))

	// Output:
	// true
}
