// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matview/matrix"
	"github.com/stretchr/testify/require"
)

func samples(t *testing.T) *matrix.Matrix[float64] {
	t.Helper()

	return mustRows(t, matrix.Shape{Rows: dyn, Cols: 2}, [][]float64{{1, 2}, {3, 4}, {5, 6}})
}

func TestColumnMeansAndCentering(t *testing.T) {
	t.Parallel()

	X := samples(t)
	means, err := matrix.ColumnMeans[float64](X)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, means)

	Xc, means, err := matrix.CenterColumns[float64](X)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, means)
	require.Equal(t, []float64{-2, -2, 0, 0, 2, 2}, Xc.Data())
	require.Equal(t, X.Declared(), Xc.Declared())
	// X is not modified.
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, X.Data())

	_, err = matrix.ColumnMeans[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRowsL2(t *testing.T) {
	t.Parallel()

	X := mustRows(t, matrix.DynamicShape, [][]float64{{3, 4}, {0, 0}})
	Y, norms, err := matrix.NormalizeRowsL2[float64](X)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 0}, norms)
	require.InDelta(t, 0.6, Y.Data()[0], 1e-12)
	require.InDelta(t, 0.8, Y.Data()[1], 1e-12)
	require.Equal(t, []float64{0, 0}, Y.Data()[2:])
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	cov, means, err := matrix.Covariance[float64](samples(t))
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, means)
	require.Equal(t, []float64{4, 4, 4, 4}, cov.Data())

	one := mustRows(t, matrix.DynamicShape, [][]float64{{1, 2}})
	_, _, err = matrix.Covariance[float64](one)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}
