package graph_test

import (
	"fmt"

	"github.com/tincaMatei/dopecomp/graph"
)

// ExampleFromEdges builds an undirected square and walks one node's
// incident edges through the Other capability.
func ExampleFromEdges() {
	//  0───1
	//  │   │
	//  3───2
	edges := []graph.Pair{
		{U: 0, V: 1},
		{U: 1, V: 2},
		{U: 2, V: 3},
		{U: 3, V: 0},
	}

	g, _ := graph.FromEdges[struct{}](4, edges, graph.Keep, true)

	fmt.Println("nodes:", g.VertexCount(), "edges:", g.EdgeCount())
	for _, id := range g.Adj[0] {
		fmt.Println("edge", id, "leads to", g.Edges[id].Other(0))
	}

	// Output:
	// nodes: 4 edges: 4
	// edge 0 leads to 1
	// edge 3 leads to 3
}
