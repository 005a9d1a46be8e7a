package core_test

import (
	"fmt"

	"github.com/katalvlaran/kmerasm/core"
)

// ExampleGraph demonstrates insertion-ordered enumeration on a directed graph.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true))

	// AddEdge auto-adds its endpoints in argument order.
	_, _ = g.AddEdge("ACC-2", "CCA-8")
	_, _ = g.AddEdge("CCA-8", "CAT-5")
	_, _ = g.AddEdge("CCA-8", "CAT-6")

	fmt.Println("Vertices:", g.Vertices())
	next, _ := g.NeighborIDs("CCA-8")
	fmt.Println("After CCA-8:", next)
	fmt.Println("Edge CAT-5→CCA-8 exists?", g.HasEdge("CAT-5", "CCA-8"))

	// Output:
	// Vertices: [ACC-2 CCA-8 CAT-5 CAT-6]
	// After CCA-8: [CAT-5 CAT-6]
	// Edge CAT-5→CCA-8 exists? false
}
