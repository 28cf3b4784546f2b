// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matview/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
)

func randomDense(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFilled[float64](matrix.DynamicShape, n, n, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := range m.Data() {
		m.Data()[i] = rng.Float64()*2 - 1
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randomDense(b, n, 1337), randomDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add[float64](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randomDense(b, n, 1337), randomDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul[float64](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddInPlace_StridedView(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := randomDense(b, n, 1337), randomDense(b, n, 4242)
			half := n / 2
			dst, err := matrix.Slice[float64](A, matrix.DynamicSlicer, 0, 0, half, half)
			if err != nil {
				b.Fatal(err)
			}
			src, err := matrix.SliceConst[float64](B, matrix.DynamicSlicer, half, half, half, half)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err = dst.AddInPlace(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkIterator_View(b *testing.B) {
	b.ReportAllocs()
	A := randomDense(b, 256, 7)
	v, err := matrix.SliceConst[float64](A, matrix.DynamicSlicer, 64, 64, 128, 128)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0.0
		for it, end := v.CBegin(), v.CEnd(); !it.Equal(end); it.Next() {
			sum += it.Value()
		}
		sinkF = sum
	}
}
