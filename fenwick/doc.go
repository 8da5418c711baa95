// Package fenwick implements a generic Fenwick tree (binary indexed tree):
// an array-backed structure supporting O(log n) point updates and prefix
// aggregates over any associative operation, plus a greedy binary search
// over prefix aggregates and a 2-D nested variant.
//
// The tree stores an extra array data[1..n] where data[i] combines the
// elements of the semi-open range (i-lsb(i), i] of the conceptual underlying
// array, lsb(i) being the value of the lowest set bit of i. Everything is
// 1-indexed; index 0 is an unused sentinel and queries at position 0 return
// the neutral element (the empty prefix).
//
// Three layers:
//
//   - Tree[T] with Update, Query, BinSearch: works over any monoid. Query and
//     BinSearch are package-level functions because the accumulator type Q is
//     independent of the element type T.
//   - The Number layer (AddValue, PrefixSum, RangeSum, BinSearchSum,
//     FromValues): arithmetic convenience for element types with + and -.
//     RangeSum relies on subtraction being the inverse of addition; it is not
//     valid for non-invertible operations such as min or max — use Query
//     directly for those.
//   - Tree2D[T]: a Tree whose elements are Trees, giving rectangle updates
//     and inclusion-exclusion rectangle sums.
//
// Complexity:
//
//   - Update/Query/AddValue/PrefixSum/RangeSum: O(log n)
//   - BinSearch: O(log n) combine calls
//   - 2-D variants: O(log rows · log cols)
//
// Errors:
//
//   - ErrOutOfRange — position 0 on update, or any position beyond capacity.
package fenwick
