// SPDX-License-Identifier: MIT
package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matview/matrix"
	"github.com/katalvlaran/matview/permutation"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	p, err := permutation.Identity(5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, p)

	p, err = permutation.Identity(0)
	require.NoError(t, err)
	require.Empty(t, p)

	_, err = permutation.Identity(-2)
	require.ErrorIs(t, err, permutation.ErrNegativeLength)
}

func TestInverted(t *testing.T) {
	t.Parallel()

	q, err := permutation.Inverted([]int{4, 0, 2, 5, 1, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 2, 5, 0, 3}, q)

	back, err := permutation.Inverted(q)
	require.NoError(t, err)
	require.Equal(t, []int{4, 0, 2, 5, 1, 3}, back)

	_, err = permutation.Inverted([]int{0, 0})
	require.ErrorIs(t, err, permutation.ErrNotPermutation)
	_, err = permutation.Inverted([]int{0, 2})
	require.ErrorIs(t, err, permutation.ErrNotPermutation)
}

func TestInverted_UndoesRowReordering(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows(matrix.DynamicShape, [][]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	p := []int{2, 0, 3, 1}
	shuffled, err := matrix.Induced[int](m, p, nil)
	require.NoError(t, err)
	q, err := permutation.Inverted(p)
	require.NoError(t, err)
	restored, err := matrix.Induced[int](shuffled, q, nil)
	require.NoError(t, err)
	eq, err := matrix.Equal[int](m, restored)
	require.NoError(t, err)
	require.True(t, eq)
}
