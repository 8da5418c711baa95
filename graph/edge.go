package graph

// Edge is the capability every stored edge must offer: resolving the
// endpoint opposite to the node the edge was reached from. Directed edges
// may ignore from entirely.
type Edge interface {
	// Other returns the node on the far side of the edge relative to from.
	// For a self-loop both sides are the same node.
	Other(from int) int
}

// BidirectionalEdge is an Edge that additionally exposes its unordered
// endpoint pair. Bulk construction and undirected pushes need it to know
// which adjacency lists to register the edge in.
type BidirectionalEdge interface {
	Edge

	// Endpoints returns the two endpoints of the edge.
	Endpoints() (int, int)
}

// Arc is a directed edge storing only its destination; the source node is
// implicit in whichever adjacency list references the arc.
type Arc int

// Other returns the arc's destination regardless of from.
func (a Arc) Other(_ int) int { return int(a) }

// Pair is an undirected edge storing both endpoints.
type Pair struct {
	U, V int
}

// Other resolves the endpoint opposite to from. u^v^from recovers the
// non-from endpoint, and maps a self-loop back onto its own node.
func (p Pair) Other(from int) int { return p.U ^ p.V ^ from }

// Endpoints returns the unordered endpoint pair.
func (p Pair) Endpoints() (int, int) { return p.U, p.V }

// AsArc compresses a Pair read as source→destination down to an Arc,
// dropping the implicit source. Handy as a FromEdges transform for directed
// graphs.
func AsArc(p Pair) Arc { return Arc(p.V) }

// Keep is the identity transform for FromEdges when the input representation
// is also the storage representation.
func Keep[E Edge](e E) E { return e }
