package fenwick

import (
	"fmt"
	"math/bits"
)

// Tree is a 1-indexed Fenwick tree over elements of type T.
//
// data[i] holds the combined aggregate of the semi-open element range
// (i-lsb(i), i]; data[0] is an unused sentinel. The backing slice is sized
// once at construction and never grows.
//
// T is unconstrained: aggregation semantics are supplied per call through
// mutator and composition functions. The caller is responsible for keeping
// those consistent with one associative operation.
type Tree[T any] struct {
	data []T
}

// lsb isolates the value of the lowest set bit of v.
func lsb(v int) int {
	return v & (-v)
}

// New returns a Tree with n zero-valued slots, addressable at positions 1..n.
// Complexity: O(n)
func New[T any](n int) *Tree[T] {
	return &Tree[T]{data: make([]T, n+1)}
}

// FromData adopts data as the tree's backing storage without copying.
//
// data must be laid out 1-indexed (length = capacity+1, slot 0 unused) and
// must already satisfy the Fenwick covering invariant; no aggregation is
// recomputed. Use it to bypass repeated single-element updates when the
// caller builds the node array by other means.
func FromData[T any](data []T) *Tree[T] {
	return &Tree[T]{data: data}
}

// Len returns the tree's capacity (the highest addressable position).
func (t *Tree[T]) Len() int {
	return len(t.data) - 1
}

// Update applies mutate to every tree node covering pos, walking
// pos += lsb(pos) up to the capacity.
//
// mutate must be consistent with the associative operation the tree is
// queried with; this is not checked. Returns ErrOutOfRange when pos is 0 or
// exceeds the capacity, without touching any node.
// Complexity: O(log n)
func (t *Tree[T]) Update(pos int, mutate func(*T)) error {
	if pos <= 0 || pos >= len(t.data) {
		return fmt.Errorf("fenwick: update at %d with capacity %d: %w", pos, t.Len(), ErrOutOfRange)
	}

	for ; pos < len(t.data); pos += lsb(pos) {
		mutate(&t.data[pos])
	}

	return nil
}

// Query folds comb over the nodes covering the prefix [1, pos], walking
// pos -= lsb(pos) down to 0, starting from neutral.
//
// The accumulator type Q is independent of the element type T, which is why
// Query is a package-level function. Querying position 0 returns neutral
// (the empty prefix). Returns ErrOutOfRange when pos is negative or exceeds
// the capacity.
// Complexity: O(log n)
func Query[T, Q any](t *Tree[T], pos int, neutral Q, comb func(Q, T) Q) (Q, error) {
	if pos < 0 || pos >= len(t.data) {
		return neutral, fmt.Errorf("fenwick: query at %d with capacity %d: %w", pos, t.Len(), ErrOutOfRange)
	}

	res := neutral
	for ; pos > 0; pos -= lsb(pos) {
		res = comb(res, t.data[pos])
	}

	return res, nil
}

// BinSearch binary searches the prefix aggregates of t.
//
// It greedily descends powers of two from the highest bit below the
// capacity: at each level it tentatively extends the current prefix by 2^l
// and commits the extension iff pred holds for the extended aggregate.
// Returns (x, x+1) where x is the largest prefix length whose aggregate
// satisfies pred and x+1 the smallest that fails it.
//
// pred must be monotonic over prefix aggregates — true on the empty prefix,
// false past the end; behavior is unspecified otherwise.
// Complexity: O(log n)
func BinSearch[T, Q any](t *Tree[T], neutral Q, comb func(Q, T) Q, pred func(Q) bool) (int, int) {
	pos := 0
	acc := neutral

	for l := bits.Len(uint(t.Len())); l >= 0; l-- {
		next := pos + 1<<l
		if next >= len(t.data) {
			continue
		}

		if ext := comb(acc, t.data[next]); pred(ext) {
			pos = next
			acc = ext
		}
	}

	return pos, pos + 1
}
