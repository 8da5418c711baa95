package graph

import (
	"errors"
	"fmt"
)

// ErrVertexRange indicates an edge endpoint outside [0, V) during
// construction.
var ErrVertexRange = errors.New("graph: vertex out of range")

// Graph is an edge-list multigraph over nodes 0..V-1.
//
// Nodes holds one payload per node (often struct{}), Edges the storage
// representation of every edge, and Adj one ordered slice of edge ids per
// node (ids index into Edges, in input/insertion order restricted to the
// edges touching that node). Undirected fixes how adjacency and degrees are
// interpreted for the whole structure.
//
// The fields are exported for algorithms to walk directly, but the content
// is immutable after construction by contract: consumers read, never write.
type Graph[N any, E Edge] struct {
	Nodes      []N
	Edges      []E
	Adj        [][]int
	Undirected bool
}

// checkVertex validates a node index against an order of v.
func checkVertex(node, v int) error {
	if node < 0 || node >= v {
		return fmt.Errorf("graph: vertex %d with order %d: %w", node, v, ErrVertexRange)
	}

	return nil
}

// FromEdges builds a graph with v nodes from a bulk edge list.
//
// The input edges must expose their endpoint pair so adjacency is known;
// transform then maps each edge to its storage representation E (for a
// directed graph, typically AsArc, which drops the implicit source to save
// space; for undirected, Keep). Edge ids equal input positions, and each
// node's adjacency list preserves input order.
//
// One counting pass pre-sizes every adjacency list, so construction does no
// slice reallocation.
// Complexity: O(v + len(edges))
func FromEdges[N any, B BidirectionalEdge, E Edge](
	v int,
	edges []B,
	transform func(B) E,
	undirected bool,
) (*Graph[N, E], error) {
	degree := make([]int, v)
	for _, e := range edges {
		a, b := e.Endpoints()
		if err := checkVertex(a, v); err != nil {
			return nil, err
		}
		if err := checkVertex(b, v); err != nil {
			return nil, err
		}

		degree[a]++
		if undirected {
			degree[b]++
		}
	}

	adj := make([][]int, v)
	for node := range adj {
		adj[node] = make([]int, 0, degree[node])
	}

	for id, e := range edges {
		a, b := e.Endpoints()
		adj[a] = append(adj[a], id)
		if undirected {
			adj[b] = append(adj[b], id)
		}
	}

	stored := make([]E, len(edges))
	for id, e := range edges {
		stored[id] = transform(e)
	}

	return &Graph[N, E]{
		Nodes:      make([]N, v),
		Edges:      stored,
		Adj:        adj,
		Undirected: undirected,
	}, nil
}

// WithCapacity returns an empty graph with v nodes and room for e edges,
// ready for incremental pushes.
func WithCapacity[N any, E Edge](v, e int, undirected bool) *Graph[N, E] {
	return &Graph[N, E]{
		Nodes:      make([]N, v),
		Edges:      make([]E, 0, e),
		Adj:        make([][]int, v),
		Undirected: undirected,
	}
}

// PushDirected appends a directed edge leaving from; the new edge id is
// registered in from's adjacency list only.
func (g *Graph[N, E]) PushDirected(from int, e E) error {
	if err := checkVertex(from, g.VertexCount()); err != nil {
		return err
	}
	if err := checkVertex(e.Other(from), g.VertexCount()); err != nil {
		return err
	}

	id := len(g.Edges)
	g.Edges = append(g.Edges, e)
	g.Adj[from] = append(g.Adj[from], id)

	return nil
}

// PushUndirected appends an undirected edge, registering the new edge id in
// both endpoints' adjacency lists (twice in the same list for a self-loop).
func PushUndirected[N any, E BidirectionalEdge](g *Graph[N, E], e E) error {
	a, b := e.Endpoints()
	if err := checkVertex(a, g.VertexCount()); err != nil {
		return err
	}
	if err := checkVertex(b, g.VertexCount()); err != nil {
		return err
	}

	id := len(g.Edges)
	g.Edges = append(g.Edges, e)
	g.Adj[a] = append(g.Adj[a], id)
	g.Adj[b] = append(g.Adj[b], id)

	return nil
}

// VertexCount returns the number of nodes.
func (g *Graph[N, E]) VertexCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int { return len(g.Edges) }
