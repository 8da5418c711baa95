// Package graph provides a compact, index-based multigraph container for
// algorithmic use: nodes are integers 0..V-1, edges live in one flat slice,
// and each node carries an ordered list of incident edge ids.
//
// The container is deliberately minimal. Edges are a one-method capability:
// given the node you arrived from, Other resolves the opposite endpoint.
// Two stock implementations cover the common cases:
//
//   - Arc — a directed edge storing only its destination (the source is
//     implicit in the adjacency entry that references it)
//   - Pair — an undirected edge storing both endpoints, resolving the other
//     side with the XOR trick u^v^from
//
// Construction is either bulk (FromEdges: one counting pass pre-sizes every
// adjacency list, then adjacency is filled in input order, then each edge is
// mapped through a transform to its storage representation) or incremental
// (WithCapacity + PushDirected/PushUndirected, ids assigned in insertion
// order). After construction the structure is read-only by contract; there
// is no locking and no defensive copying.
//
// Invariant: every edge id appears in Adj exactly once per direction it is
// traversable — once for a directed edge, twice (once per endpoint) for an
// undirected one. Self-loops are ordinary edges.
//
// Errors:
//
//   - ErrVertexRange — an endpoint outside [0, V) during construction.
package graph
