// Package euler defines the options and sentinel outcomes for the Eulerian
// path/cycle solver.
package euler

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to Path or Cycle.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrNotEulerian reports that no Eulerian path/cycle exists: the degree
	// condition failed, or the traversal could not cover every edge. It is
	// a first-class negative result, not a failure of the solver.
	ErrNotEulerian = errors.New("euler: no eulerian path or cycle")
)

// Option configures a single solve call. Use with Path(g, opts...) or
// Cycle(g, opts...).
type Option func(*solveOptions)

// solveOptions holds per-call knobs. The zero value means "follow the
// graph's own Undirected flag".
type solveOptions struct {
	undirected   bool
	hasDirection bool
}

// WithUndirected overrides the graph's Undirected flag for this call,
// forcing the undirected (true) or directed (false) feasibility rules and
// result ordering.
func WithUndirected(undirected bool) Option {
	return func(o *solveOptions) {
		o.undirected = undirected
		o.hasDirection = true
	}
}
