package fenwick_test

import (
	"math/rand"
	"testing"

	"github.com/tincaMatei/dopecomp/fenwick"
)

const benchSize = 1 << 16

func BenchmarkAddValue(b *testing.B) {
	ft := fenwick.New[int64](benchSize)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fenwick.AddValue(ft, 1+rng.Intn(benchSize), 1)
	}
}

func BenchmarkPrefixSum(b *testing.B) {
	ft := fenwick.New[int64](benchSize)
	rng := rand.New(rand.NewSource(2))
	for pos := 1; pos <= benchSize; pos++ {
		_ = fenwick.AddValue(ft, pos, int64(rng.Intn(100)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fenwick.PrefixSum(ft, 1+rng.Intn(benchSize))
	}
}

func BenchmarkBinSearchSum(b *testing.B) {
	vals := make([]int, benchSize)
	for i := range vals {
		vals[i] = i % 7
	}
	ft := fenwick.FromValues(vals)
	rng := rand.New(rand.NewSource(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limit := rng.Intn(benchSize * 3)
		_, _ = fenwick.BinSearchSum(ft, func(v int) bool { return v <= limit })
	}
}
