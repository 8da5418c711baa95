package euler_test

import (
	"fmt"

	"github.com/tincaMatei/dopecomp/euler"
	"github.com/tincaMatei/dopecomp/graph"
)

// ExampleCycle finds the closed walk of a directed triangle.
func ExampleCycle() {
	//  0 → 1 → 2 → 0
	edges := []graph.Pair{
		{U: 0, V: 1},
		{U: 1, V: 2},
		{U: 2, V: 0},
	}
	g, _ := graph.FromEdges[struct{}](3, edges, graph.AsArc, false)

	seq, _ := euler.Cycle(g)
	fmt.Println(seq)

	// Output:
	// [0 1 2 0]
}

// ExamplePath reports infeasibility as a value, not a failure.
func ExamplePath() {
	// Two separate directed edges cannot be one walk.
	edges := []graph.Pair{
		{U: 0, V: 1},
		{U: 2, V: 3},
	}
	g, _ := graph.FromEdges[struct{}](4, edges, graph.AsArc, false)

	if _, err := euler.Path(g); err != nil {
		fmt.Println(err)
	}

	// Output:
	// euler: no eulerian path or cycle
}
