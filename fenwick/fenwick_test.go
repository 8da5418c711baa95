package fenwick_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tincaMatei/dopecomp/fenwick"
)

// TestUpdate_OutOfRange verifies that misuse positions are rejected before
// any node is touched.
func TestUpdate_OutOfRange(t *testing.T) {
	ft := fenwick.New[int](10)

	cases := []struct {
		name string
		pos  int
	}{
		{"Zero", 0},
		{"Negative", -3},
		{"PastCapacity", 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ft.Update(tc.pos, func(e *int) { *e++ })
			if !errors.Is(err, fenwick.ErrOutOfRange) {
				t.Errorf("Update(%d) error = %v; want ErrOutOfRange", tc.pos, err)
			}
		})
	}

	// No partial mutation leaked through the failed calls.
	sum, err := fenwick.PrefixSum(ft, 10)
	require.NoError(t, err)
	require.Zero(t, sum)
}

// TestQuery_OutOfRange verifies query bounds; position 0 is the empty
// prefix, not an error.
func TestQuery_OutOfRange(t *testing.T) {
	ft := fenwick.New[int](4)

	_, err := fenwick.PrefixSum(ft, 5)
	require.ErrorIs(t, err, fenwick.ErrOutOfRange)

	_, err = fenwick.PrefixSum(ft, -1)
	require.ErrorIs(t, err, fenwick.ErrOutOfRange)

	empty, err := fenwick.PrefixSum(ft, 0)
	require.NoError(t, err)
	require.Zero(t, empty, "position 0 must fold to the neutral element")
}

// TestAddition locks the node layout and prefix sums of a tiny tree.
func TestAddition(t *testing.T) {
	ft := fenwick.New[int](5)

	require.NoError(t, fenwick.AddValue(ft, 2, 5))
	require.NoError(t, fenwick.AddValue(ft, 3, 4))

	for pos, want := range map[int]int{2: 5, 3: 9, 5: 9} {
		got, err := fenwick.PrefixSum(ft, pos)
		require.NoError(t, err)
		require.Equal(t, want, got, "PrefixSum(%d)", pos)
	}
}

// TestRangeSum_Law checks rangeSum(a,b) == prefixSum(b) - prefixSum(a-1)
// over every admissible pair on a small tree.
func TestRangeSum_Law(t *testing.T) {
	const n = 16
	ft := fenwick.New[int](n)
	rng := rand.New(rand.NewSource(42))
	for pos := 1; pos <= n; pos++ {
		require.NoError(t, fenwick.AddValue(ft, pos, rng.Intn(1000)-500))
	}

	for a := 1; a <= n; a++ {
		for b := a; b <= n; b++ {
			hi, err := fenwick.PrefixSum(ft, b)
			require.NoError(t, err)
			lo, err := fenwick.PrefixSum(ft, a-1)
			require.NoError(t, err)

			got, err := fenwick.RangeSum(ft, a, b)
			require.NoError(t, err)
			require.Equal(t, hi-lo, got, "RangeSum(%d,%d)", a, b)
		}
	}

	_, err := fenwick.RangeSum(ft, 0, 3)
	require.ErrorIs(t, err, fenwick.ErrOutOfRange, "RangeSum with start 0")
}

// TestAdditive_Randomized cross-checks thousands of update/range-sum
// operations against a naive running-sum reference.
func TestAdditive_Randomized(t *testing.T) {
	const (
		n   = 100
		ops = 10000
	)

	ft := fenwick.New[int64](n)
	ref := make([]int64, n+1)
	rng := rand.New(rand.NewSource(269696969))

	for i := 0; i < ops; i++ {
		if rng.Intn(2) == 0 {
			pos := 1 + rng.Intn(n)
			val := int64(rng.Intn(2001) - 1000)
			ref[pos] += val
			require.NoError(t, fenwick.AddValue(ft, pos, val))

			continue
		}

		a, b := 1+rng.Intn(n), 1+rng.Intn(n)
		if a > b {
			a, b = b, a
		}

		var want int64
		for p := a; p <= b; p++ {
			want += ref[p]
		}

		got, err := fenwick.RangeSum(ft, a, b)
		require.NoError(t, err)
		require.Equal(t, want, got, "RangeSum(%d,%d) after %d ops", a, b, i)
	}
}

// TestBinSearchSum locks the concrete descent vectors:
// prefix sums 0,0,3,4,6,12,16,16,20,20,25 over capacity 10.
func TestBinSearchSum(t *testing.T) {
	ft := fenwick.New[int](10)
	for _, upd := range []struct{ pos, val int }{
		{2, 3}, {3, 1}, {4, 2}, {5, 6}, {6, 4}, {8, 4}, {10, 5},
	} {
		require.NoError(t, fenwick.AddValue(ft, upd.pos, upd.val))
	}

	cases := []struct {
		name  string
		limit int
		x, y  int
	}{
		{"Mid", 12, 5, 6},
		{"BelowAll", -1, 0, 1},
		{"AboveAll", 26, 10, 11},
		{"Plateau", 16, 7, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := fenwick.BinSearchSum(ft, func(v int) bool { return v <= tc.limit })
			if x != tc.x || y != tc.y {
				t.Errorf("BinSearchSum(<=%d) = (%d,%d); want (%d,%d)", tc.limit, x, y, tc.x, tc.y)
			}
		})
	}
}

// TestBinSearch_MatchesLinearScan compares the greedy descent with a linear
// scan over randomized non-negative elements (non-decreasing prefix sums).
func TestBinSearch_MatchesLinearScan(t *testing.T) {
	const n = 64
	rng := rand.New(rand.NewSource(7))

	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(10)
	}
	ft := fenwick.FromValues(vals)

	for trial := 0; trial < 200; trial++ {
		limit := rng.Intn(n*10 + 2)

		wantX := 0
		run := 0
		for p := 1; p <= n; p++ {
			run += vals[p-1]
			if run <= limit {
				wantX = p
			} else {
				break
			}
		}

		x, y := fenwick.BinSearchSum(ft, func(v int) bool { return v <= limit })
		require.Equal(t, wantX, x, "limit %d", limit)
		require.Equal(t, wantX+1, y, "limit %d", limit)
	}
}

// TestFromValues checks the O(n) build against repeated single updates.
func TestFromValues(t *testing.T) {
	vals := []int{3, 0, 1, 2, 6, 4, 0, 4, 0, 5}

	fast := fenwick.FromValues(vals)
	slow := fenwick.New[int](len(vals))
	for i, v := range vals {
		require.NoError(t, fenwick.AddValue(slow, i+1, v))
	}

	for pos := 0; pos <= len(vals); pos++ {
		a, err := fenwick.PrefixSum(fast, pos)
		require.NoError(t, err)
		b, err := fenwick.PrefixSum(slow, pos)
		require.NoError(t, err)
		require.Equal(t, b, a, "PrefixSum(%d)", pos)
	}
}

// TestFromData adopts a backing slice already in covering layout.
func TestFromData(t *testing.T) {
	// Covering layout for elements 5@2, 4@3: node 4 aggregates positions 1..4.
	ft := fenwick.FromData([]int{0, 0, 5, 4, 9, 0})

	require.Equal(t, 5, ft.Len())

	sum, err := fenwick.PrefixSum(ft, 3)
	require.NoError(t, err)
	require.Equal(t, 9, sum)
}

// TestQuery_MaxComposition exercises the generic layer with a
// non-invertible monoid: prefix maxima via a set-to-max mutator.
func TestQuery_MaxComposition(t *testing.T) {
	ft := fenwick.New[int](8)
	neutral := math.MinInt

	setMax := func(pos, v int) {
		require.NoError(t, ft.Update(pos, func(e *int) {
			if v > *e {
				*e = v
			}
		}))
	}

	// Zero-valued nodes would win over negatives; raise the floor first.
	for pos := 1; pos <= 8; pos++ {
		require.NoError(t, ft.Update(pos, func(e *int) { *e = neutral }))
	}

	setMax(3, 7)
	setMax(5, -2)
	setMax(8, 11)

	maxComb := func(s, e int) int {
		if e > s {
			return e
		}

		return s
	}

	for pos, want := range map[int]int{2: neutral, 3: 7, 7: 7, 8: 11} {
		got, err := fenwick.Query(ft, pos, neutral, maxComb)
		require.NoError(t, err)
		require.Equal(t, want, got, "prefix max at %d", pos)
	}
}
