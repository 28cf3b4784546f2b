// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matview/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := counting(t, 2, 2)
	b, err := matrix.Convert[int](matrix.FixedShape(2, 2), a)
	require.NoError(t, err)
	eq, err := matrix.Equal[int](a, b)
	require.NoError(t, err)
	require.True(t, eq)

	require.NoError(t, b.Set(1, 1, 0))
	eq, err = matrix.Equal[int](a, b)
	require.NoError(t, err)
	require.False(t, eq)
	ne, err := matrix.NotEqual[int](a, b)
	require.NoError(t, err)
	require.True(t, ne)

	// Dynamic operands of different extents simply differ.
	eq, err = matrix.Equal[int](a, counting(t, 2, 3))
	require.NoError(t, err)
	require.False(t, eq)

	// Static operands that can never match are an error.
	s := mustRows(t, matrix.FixedShape(1, 2), [][]int{{0, 1}})
	_, err = matrix.Equal[int](b, s)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	ne, err = matrix.NotEqual[int](b, s)
	require.Error(t, err)
	require.False(t, ne)
}

func TestEqual_AcrossVariants(t *testing.T) {
	t.Parallel()

	m := counting(t, 3, 3)
	row, err := matrix.SliceRowConst[int](m, 2)
	require.NoError(t, err)
	lit := mustFlat(t, matrix.RowVectorShape(3), 6, 7, 8)
	eq, err := matrix.Equal[int](row, lit)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestClose(t *testing.T) {
	t.Parallel()

	a := mustFlat(t, matrix.DynamicShape, 1.0, 2.0)
	b := mustFlat(t, matrix.DynamicShape, 1.0+1e-10, 2.0-1e-10)
	ok, err := matrix.Close[float64](a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.Close[float64](a, b, -1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.Close[float64](a, b, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	nan := mustFlat(t, matrix.DynamicShape, math.NaN(), 2.0)
	ok, err = matrix.Close[float64](nan, nan, 1)
	require.NoError(t, err)
	require.False(t, ok)
}
