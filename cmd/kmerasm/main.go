// kmerasm reconstructs sequences from overlapping k-mer fragments.
//
// It builds the overlap graph of a fragment set, enumerates its Hamiltonian
// paths and prints the sequences they spell.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kmerasm/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
