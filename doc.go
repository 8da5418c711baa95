// Package dopecomp is a small toolbox of competitive-programming building
// blocks: a generic Fenwick tree, a compact index-based graph container,
// an Eulerian path/cycle solver, and fast token-oriented contest I/O.
//
// What is in the box?
//
//	A minimal, dependency-light library that brings together:
//		• fenwick    — point updates and prefix aggregates over any monoid,
//		               a numeric convenience layer, and a 2-D variant
//		• graph      — an immutable-after-build edge-list multigraph with
//		               per-node adjacency indices
//		• euler      — Eulerian path/cycle feasibility + Hierholzer traversal
//		• contestio  — whitespace tokenizer and chained buffered writer for
//		               contest-style stdin/stdout
//
// Why this shape?
//
//   - Contest-friendly — integer node ids, preallocated slices, no locks
//   - Predictable — every operation runs to completion on the calling
//     goroutine; structures are exclusively owned by their caller
//   - Generic — aggregation works over any associative operation, edges are
//     a one-method capability interface
//
// Everything is organized under four subpackages:
//
//	fenwick/   — PrefixAggregateTree: Update, Query, BinSearch, 2-D nesting
//	graph/     — Graph, Edge, Arc, Pair + bulk and incremental construction
//	euler/     — Path and Cycle over any graph.Graph
//	contestio/ — Reader and Writer adapters around bufio
//
// Quick usage sketch:
//
//	in := contestio.NewReader(os.Stdin)
//	out := contestio.NewWriter(os.Stdout)
//	defer out.Flush()
//
//	n, _ := in.Int()
//	ft := fenwick.New[int64](n)
//
//	go get github.com/tincaMatei/dopecomp
package dopecomp
