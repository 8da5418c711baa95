package fenwick

import "errors"

var (
	// ErrOutOfRange indicates an update or query position outside the tree:
	// position 0 on a mutating walk, a negative position, or a position
	// beyond the capacity fixed at construction.
	ErrOutOfRange = errors.New("fenwick: position out of range")
)
