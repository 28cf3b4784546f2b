// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all data finite and integral where possible so expectations are exact.

package matrix_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/matview/matrix"
	"github.com/katalvlaran/matview/numeric"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from a nested literal or fails the test.
func mustRows[T numeric.Number](tb testing.TB, decl matrix.Shape, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(decl, rows, opts...)
	require.NoError(tb, err)

	return m
}

// mustFlat builds a vector from a flat literal or fails the test.
func mustFlat[T numeric.Number](tb testing.TB, decl matrix.Shape, values ...T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromFlat(decl, values)
	require.NoError(tb, err)

	return m
}

// counting returns a dynamic rows×cols matrix holding 0, 1, 2, ... in row-major order.
func counting(tb testing.TB, rows, cols int) *matrix.Matrix[int] {
	tb.Helper()
	m, err := matrix.NewFilled[int](matrix.DynamicShape, rows, cols, 0)
	require.NoError(tb, err)
	require.NoError(tb, m.Apply(func(r, c, _ int) int { return r*cols + c }))

	return m
}

// valuesOf collects the row-major elements of any variant.
func valuesOf[T numeric.Number](r matrix.Reader[T]) []T {
	return slices.Collect(r.Values())
}

// walk collects the elements between it and end using the cursor API.
func walk[T numeric.Number](it, end matrix.ConstIterator[T]) []T {
	var out []T
	for ; !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}

	return out
}
