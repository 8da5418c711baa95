// Package euler finds Eulerian paths and cycles — walks traversing every
// edge of a graph exactly once — over any graph.Graph.
//
// Two entry points, Path and Cycle, run the same pipeline:
//
//  1. Feasibility: degrees are computed by resolving the opposite endpoint
//     of every adjacency entry. Undirected graphs need at most two
//     odd-degree nodes (zero for a cycle); directed graphs need at most one
//     node of positive and one of negative in/out imbalance (zero for a
//     cycle). Connectivity is NOT checked here.
//  2. Traversal: Hierholzer's algorithm with a per-node monotonic cursor
//     into the adjacency list and a global used-edge set, driven by an
//     explicit node stack (so the walk never deepens the call stack).
//     A node with no unused incident edge left is appended to the result
//     and popped; for directed graphs the result is reversed at the end.
//  3. Completeness: a result shorter than EdgeCount+1 means some edges were
//     unreachable (a disconnected graph can pass the degree test); the
//     attempt is then declared infeasible.
//
// Infeasibility is an expected outcome, reported as ErrNotEulerian — branch
// on it with errors.Is, it is never a fatal condition.
//
// Complexity: O(V + E) time, O(V + E) memory per call. Self-loops are valid
// edges and consume one traversal step without changing the current node.
package euler
