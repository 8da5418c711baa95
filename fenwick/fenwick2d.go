package fenwick

import "fmt"

// Tree2D is a Fenwick tree whose element type is itself a Fenwick tree: the
// outer dimension indexes rows, each outer node holding an inner tree over
// columns. The covering invariant applies per dimension, composed.
//
// All inner trees share one column capacity fixed at construction.
type Tree2D[T any] struct {
	rows Tree[Tree[T]]
	cols int
}

// New2D returns a Tree2D addressable at positions (1..rows, 1..cols).
// Complexity: O(rows · cols)
func New2D[T any](rows, cols int) *Tree2D[T] {
	data := make([]Tree[T], rows+1)
	for i := range data {
		data[i] = Tree[T]{data: make([]T, cols+1)}
	}

	return &Tree2D[T]{rows: Tree[Tree[T]]{data: data}, cols: cols}
}

// Rows returns the outer capacity.
func (t *Tree2D[T]) Rows() int { return t.rows.Len() }

// Cols returns the inner capacity shared by every row.
func (t *Tree2D[T]) Cols() int { return t.cols }

// checkCol validates a column position against the shared inner capacity so
// that 2-D walks fail before mutating or folding anything.
func (t *Tree2D[T]) checkCol(y int) error {
	if y < 0 || y > t.cols {
		return fmt.Errorf("fenwick: column %d with capacity %d: %w", y, t.cols, ErrOutOfRange)
	}

	return nil
}

// Update applies mutate at coordinates (x, y): the outer walk covers x, and
// each covering row applies an inner walk covering y.
// Complexity: O(log rows · log cols)
func (t *Tree2D[T]) Update(x, y int, mutate func(*T)) error {
	if y == 0 {
		return fmt.Errorf("fenwick: update at column 0: %w", ErrOutOfRange)
	}
	if err := t.checkCol(y); err != nil {
		return err
	}

	return t.rows.Update(x, func(row *Tree[T]) {
		// y was validated against the shared capacity above.
		_ = row.Update(y, mutate)
	})
}

// Query2D folds comb over the rectangle (1,1)..(x,y), threading the
// accumulator through the inner query of every covering row.
// Complexity: O(log rows · log cols)
func Query2D[T, Q any](t *Tree2D[T], x, y int, neutral Q, comb func(Q, T) Q) (Q, error) {
	if err := t.checkCol(y); err != nil {
		return neutral, err
	}

	return Query(&t.rows, x, neutral, func(acc Q, row Tree[T]) Q {
		acc, _ = Query(&row, y, acc, comb)

		return acc
	})
}

// AddValue2D adds delta to the element at (x, y).
func AddValue2D[T Number](t *Tree2D[T], x, y int, delta T) error {
	return t.Update(x, y, func(e *T) { *e += delta })
}

// PrefixRectangleSum returns the sum of the rectangle (1,1)..(x,y).
func PrefixRectangleSum[T Number](t *Tree2D[T], x, y int) (T, error) {
	var zero T

	return Query2D(t, x, y, zero, func(s, e T) T { return s + e })
}

// RectangleSum returns the sum of the rectangle with top-left corner
// (x1, y1) and bottom-right corner (x2, y2), by inclusion-exclusion over
// four prefix rectangles. Returns ErrOutOfRange when x1 or y1 is 0
// (coordinates are 1-indexed) or any bound exceeds a capacity.
func RectangleSum[T Number](t *Tree2D[T], x1, y1, x2, y2 int) (T, error) {
	var zero T

	if x1 == 0 || y1 == 0 {
		return zero, fmt.Errorf("fenwick: rectangle corner (%d,%d): %w", x1, y1, ErrOutOfRange)
	}

	whole, err := PrefixRectangleSum(t, x2, y2)
	if err != nil {
		return zero, err
	}
	left, err := PrefixRectangleSum(t, x1-1, y2)
	if err != nil {
		return zero, err
	}
	top, err := PrefixRectangleSum(t, x2, y1-1)
	if err != nil {
		return zero, err
	}
	corner, err := PrefixRectangleSum(t, x1-1, y1-1)
	if err != nil {
		return zero, err
	}

	return whole - left - top + corner, nil
}
