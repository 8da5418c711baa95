package euler

import "github.com/tincaMatei/dopecomp/graph"

// walker holds the transient traversal state of one solve call.
type walker[N any, E graph.Edge] struct {
	g      *graph.Graph[N, E] // graph under traversal, read-only
	used   []bool             // consumed edge ids
	cursor []int              // per-node next untried adjacency index, monotonic
	order  []int              // visited nodes, appended in post-order
}

// Path returns the ordered node sequence of an Eulerian path in g
// (EdgeCount+1 nodes, consecutive pairs tracing every edge exactly once),
// or ErrNotEulerian when none exists.
func Path[N any, E graph.Edge](g *graph.Graph[N, E], opts ...Option) ([]int, error) {
	return solve(g, false, opts)
}

// Cycle is Path restricted to closed walks: the sequence additionally
// starts and ends on the same node.
func Cycle[N any, E graph.Edge](g *graph.Graph[N, E], opts ...Option) ([]int, error) {
	return solve(g, true, opts)
}

// solve runs the feasibility test, the edge-consuming walk, and the
// completeness check for one call.
func solve[N any, E graph.Edge](g *graph.Graph[N, E], cycle bool, opts []Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var so solveOptions
	for _, opt := range opts {
		opt(&so)
	}
	undirected := g.Undirected
	if so.hasDirection {
		undirected = so.undirected
	}

	// No node to start from; no walk of length EdgeCount+1 exists.
	if g.VertexCount() == 0 {
		return nil, ErrNotEulerian
	}

	start, ok := feasibleStart(g, undirected, cycle)
	if !ok {
		return nil, ErrNotEulerian
	}

	w := &walker[N, E]{
		g:      g,
		used:   make([]bool, g.EdgeCount()),
		cursor: make([]int, g.VertexCount()),
		order:  make([]int, 0, g.EdgeCount()+1),
	}
	w.run(start)

	// Shorter means unreachable edges remain: the only disconnection guard.
	if len(w.order) != g.EdgeCount()+1 {
		return nil, ErrNotEulerian
	}

	// Post-order emits a directed walk back to front.
	if !undirected {
		reverse(w.order)
	}

	return w.order, nil
}

// feasibleStart applies the degree condition and picks the start node.
//
// Degrees are counted by resolving the opposite endpoint of every adjacency
// entry. For undirected graphs that lands on each endpoint once per side,
// double-counting every edge — the parity test is unaffected, and this exact
// counting is kept deliberately. For directed graphs the same loop yields
// in-degree, compared against the adjacency length (out-degree).
func feasibleStart[N any, E graph.Edge](g *graph.Graph[N, E], undirected, cycle bool) (int, bool) {
	degree := make([]int, g.VertexCount())
	for node := range g.Adj {
		for _, id := range g.Adj[node] {
			degree[g.Edges[id].Other(node)]++
		}
	}

	start := 0
	var odd, pos, neg int
	for node := range degree {
		switch {
		case undirected && degree[node]%2 == 1:
			start = node
			odd++
		case !undirected && degree[node] < len(g.Adj[node]):
			start = node
			pos++
		case !undirected && degree[node] > len(g.Adj[node]):
			neg++
		}
	}

	if undirected {
		if odd > 2 || (cycle && odd > 0) {
			return 0, false
		}
	} else {
		if pos > 1 || neg > 1 || (cycle && (pos > 0 || neg > 0)) {
			return 0, false
		}
	}

	return start, true
}

// run performs the Hierholzer walk from start.
//
// The recursion of the classical formulation is replaced by an explicit
// node stack: the top node advances its cursor past used edges, consumes
// the first unused one and pushes the opposite endpoint; once no unused
// incident edge remains it is appended to the order and popped. Revisiting
// a consumed edge after returning to a node advances the cursor exactly
// where the post-recursion increment would, so the emitted order matches
// the recursive version. The cursor never decreases, keeping the whole walk
// amortized linear in E.
func (w *walker[N, E]) run(start int) {
	stack := make([]int, 0, len(w.used)+1)
	stack = append(stack, start)

	for len(stack) > 0 {
		node := stack[len(stack)-1]

		descended := false
		for w.cursor[node] < len(w.g.Adj[node]) {
			id := w.g.Adj[node][w.cursor[node]]
			if w.used[id] {
				w.cursor[node]++
				continue
			}

			w.used[id] = true
			stack = append(stack, w.g.Edges[id].Other(node))
			descended = true

			break
		}

		if !descended {
			w.order = append(w.order, node)
			stack = stack[:len(stack)-1]
		}
	}
}

// reverse flips s in place.
func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
