package fenwick

import "golang.org/x/exp/constraints"

// Number bounds the arithmetic convenience layer: element types with native
// + and - whose subtraction inverts addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromValues builds a sum-tree over vals in O(n), skipping the O(n log n) of
// repeated AddValue calls. vals[0] corresponds to position 1.
func FromValues[T Number](vals []T) *Tree[T] {
	data := make([]T, len(vals)+1)
	copy(data[1:], vals)

	// Push each partial aggregate into its parent covering node.
	for i := 1; i < len(data); i++ {
		if p := i + lsb(i); p < len(data) {
			data[p] += data[i]
		}
	}

	return FromData(data)
}

// AddValue adds delta to the element at pos.
// Complexity: O(log n)
func AddValue[T Number](t *Tree[T], pos int, delta T) error {
	return t.Update(pos, func(e *T) { *e += delta })
}

// PrefixSum returns the sum of elements at positions 1..pos.
// Complexity: O(log n)
func PrefixSum[T Number](t *Tree[T], pos int) (T, error) {
	var zero T

	return Query(t, pos, zero, func(s, e T) T { return s + e })
}

// RangeSum returns the sum of elements at positions start..end inclusive.
// Returns ErrOutOfRange when start is 0 (positions are 1-indexed) or either
// bound exceeds the capacity.
// Complexity: O(log n)
func RangeSum[T Number](t *Tree[T], start, end int) (T, error) {
	var zero T

	hi, err := PrefixSum(t, end)
	if err != nil {
		return zero, err
	}

	lo, err := PrefixSum(t, start-1)
	if err != nil {
		return zero, err
	}

	return hi - lo, nil
}

// BinSearchSum runs BinSearch over plain prefix sums.
func BinSearchSum[T Number](t *Tree[T], pred func(T) bool) (int, int) {
	var zero T

	return BinSearch(t, zero, func(s, e T) T { return s + e }, pred)
}
