// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for views, the slicer and the
// staleness lease.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matview/matrix"
	"github.com/stretchr/testify/require"
)

func TestView_AliasesOwner(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 2)
	v := m.View()
	require.Equal(t, matrix.StorageMutableView, v.Kind())
	require.NoError(t, v.Set(0, 0, 9))
	got, _ := m.At(0, 0)
	require.Equal(t, 9, got)

	ro := v.ReadOnly()
	require.Equal(t, matrix.StorageReadOnlyView, ro.Kind())
	require.NoError(t, v.Set(1, 1, 7))
	got, _ = ro.At(1, 1)
	require.Equal(t, 7, got)
	require.Equal(t, matrix.StorageReadOnlyView, m.ConstView().Kind())

	// Inline storage is aliased the same way.
	small := mustRows(t, matrix.FixedShape(2, 2), [][]int32{{1, 2}, {3, 4}})
	require.NoError(t, small.View().Set(1, 0, 30))
	require.Equal(t, []int32{1, 2, 30, 4}, small.Data())
}

func TestSlice_Region(t *testing.T) {
	t.Parallel()

	m := counting(t, 4, 4)
	v, err := matrix.Slice[int](m, matrix.DynamicSlicer, 1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 9, 10}, valuesOf[int](v))
	require.Equal(t, 4, matrix.StrideOf_TestOnly[int](v))
	sr, sc := v.SourceShape()
	require.Equal(t, [2]int{4, 4}, [2]int{sr, sc})
	require.Equal(t, matrix.DynamicShape, v.Declared())

	require.NoError(t, v.Set(1, 0, -9))
	got, _ := m.At(2, 1)
	require.Equal(t, -9, got)

	static, err := matrix.Slice[int](m, matrix.NewSlicer(1, 1, 2, 2))
	require.NoError(t, err)
	require.Equal(t, matrix.FixedShape(2, 2), static.Declared())
	require.Equal(t, valuesOf[int](v), valuesOf[int](static))

	mixed, err := matrix.SliceConst[int](m, matrix.NewSlicer(dyn, 2, 1, 2), 3)
	require.NoError(t, err)
	require.Equal(t, []int{14, 15}, valuesOf[int](mixed))
	require.Equal(t, 1, matrix.NewSlicer(dyn, 2, 1, 2).Arity())
	require.Equal(t, "[?:1, 2:2]", matrix.NewSlicer(dyn, 2, 1, 2).String())
}

func TestSlice_OfSliceKeepsStride(t *testing.T) {
	t.Parallel()

	m := counting(t, 4, 4)
	outer, err := matrix.Slice[int](m, matrix.DynamicSlicer, 1, 1, 3, 3)
	require.NoError(t, err)
	inner, err := matrix.Slice[int](outer, matrix.DynamicSlicer, 1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{10, 11, 14, 15}, valuesOf[int](inner))
	require.Equal(t, 4, matrix.StrideOf_TestOnly[int](inner))

	require.NoError(t, inner.Set(0, 1, 100))
	got, _ := m.At(2, 3)
	require.Equal(t, 100, got)

	// Region outside the parent view, though inside the owner.
	_, err = matrix.Slice[int](outer, matrix.DynamicSlicer, 2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)
}

func TestSlice_Errors(t *testing.T) {
	t.Parallel()

	dynamic := counting(t, 4, 4)
	_, err := matrix.Slice[int](dynamic, matrix.DynamicSlicer, 0, 0, 2)
	require.ErrorIs(t, err, matrix.ErrSliceArity)
	_, err = matrix.Slice[int](dynamic, matrix.NewSlicer(0, 0, 2, 2), 1)
	require.ErrorIs(t, err, matrix.ErrSliceArity)
	_, err = matrix.Slice[int](dynamic, matrix.DynamicSlicer, 3, 0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)
	_, err = matrix.Slice[int](dynamic, matrix.DynamicSlicer, 0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)
	_, err = matrix.Slice[int](dynamic, matrix.DynamicSlicer, -1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)

	// Static members are checked against the declared source shape first.
	static, err := matrix.Convert[int](matrix.FixedShape(4, 4), dynamic)
	require.NoError(t, err)
	_, err = matrix.Slice[int](static, matrix.NewSlicer(3, 0, 2, 1), 1)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)

	_, err = matrix.Slice[int](nil, matrix.DynamicSlicer, 0, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSliceRowAndColumn(t *testing.T) {
	t.Parallel()

	m := counting(t, 4, 4)
	row, err := matrix.SliceRow[int](m, 1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6, 7}, valuesOf[int](row))
	require.Equal(t, matrix.RowVectorShape(dyn), row.Declared())
	n, err := row.Length()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	col, err := matrix.SliceColumn[int](m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 6, 10, 14}, valuesOf[int](col))
	require.NoError(t, col.SetIndex(3, -1))
	got, _ := m.At(3, 2)
	require.Equal(t, -1, got)
	z, err := col.Z()
	require.NoError(t, err)
	require.Equal(t, 10, z)

	_, err = matrix.SliceRow[int](m, 4)
	require.ErrorIs(t, err, matrix.ErrSliceOutOfBounds)

	fixed := mustRows(t, matrix.FixedShape(2, 3), [][]int{{1, 2, 3}, {4, 5, 6}})
	crow, err := matrix.SliceRowConst[int](fixed, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.FixedShape(1, 3), crow.Declared())
	require.Equal(t, []int{4, 5, 6}, valuesOf[int](crow))
	ccol, err := matrix.SliceColumnConst[int](fixed, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, valuesOf[int](ccol))
}

func TestAsView(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 3)
	v, err := matrix.AsView[int](matrix.FixedShape(2, 3), m)
	require.NoError(t, err)
	require.Equal(t, matrix.FixedShape(2, 3), v.Declared())

	_, err = matrix.AsView[int](matrix.FixedShape(3, 2), m)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	row, err := matrix.SliceRowConst[int](m, 0)
	require.NoError(t, err)
	vec, err := row.As(matrix.RowVectorShape(3))
	require.NoError(t, err)
	x, err := vec.X()
	require.NoError(t, err)
	require.Equal(t, 0, x)

	ro, err := matrix.AsConstView[int](matrix.DynamicShape, v)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageReadOnlyView, ro.Kind())
}

func TestMaterialize_IsIndependent(t *testing.T) {
	t.Parallel()

	m := counting(t, 3, 3)
	v, err := matrix.Slice[int](m, matrix.NewSlicer(0, 1, 2, 2))
	require.NoError(t, err)
	own, err := v.Materialize()
	require.NoError(t, err)
	require.Equal(t, matrix.FixedShape(2, 2), own.Declared())
	require.Equal(t, []int{1, 2, 4, 5}, own.Data())

	require.NoError(t, v.Set(0, 0, 99))
	require.Equal(t, 1, own.Data()[0])

	cown, err := v.ReadOnly().Materialize(matrix.WithStorage(matrix.StorageHeap))
	require.NoError(t, err)
	require.Equal(t, matrix.StorageHeap, cown.Kind())
	require.Equal(t, 99, cown.Data()[0])
}

func TestStaleView_Surface(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 2)
	v := m.View()
	cv, err := matrix.SliceConst[int](m, matrix.DynamicSlicer, 0, 0, 1, 2)
	require.NoError(t, err)
	require.NoError(t, v.Valid())
	m.Move()

	for _, r := range []matrix.Reader[int]{v, cv} {
		_, err := r.At(0, 0)
		require.ErrorIs(t, err, matrix.ErrStaleView)
		require.Empty(t, valuesOf(r))
		require.Equal(t, "{}", r.String())
		require.True(t, r.CBegin().Equal(r.CEnd()))
	}
	require.ErrorIs(t, v.Set(0, 0, 1), matrix.ErrStaleView)
	require.ErrorIs(t, v.Apply(func(_, _, x int) int { return x }), matrix.ErrStaleView)
	_, err = cv.X()
	require.ErrorIs(t, err, matrix.ErrStaleView)

	_, err = matrix.Slice[int](v, matrix.DynamicSlicer, 0, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrStaleView)
	_, err = v.Materialize()
	require.ErrorIs(t, err, matrix.ErrStaleView)
	require.ErrorIs(t, v.AddInPlace(counting(t, 2, 2)), matrix.ErrStaleView)
}

func TestErrorPriority(t *testing.T) {
	t.Parallel()

	m := counting(t, 2, 2)
	stale := m.View()
	require.NoError(t, m.Resize(3, 3))

	// nil before stale
	_, err := matrix.Add[int](nil, stale)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Matrix[int]
	_, err = matrix.Add[int](typedNil, stale)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// stale before shape
	_, err = matrix.Add[int](stale, counting(t, 5, 1))
	require.ErrorIs(t, err, matrix.ErrStaleView)
	require.NotErrorIs(t, err, matrix.ErrShapeMismatch)

	// declared shape before resolved shape
	a := mustRows(t, matrix.FixedShape(1, 2), [][]int{{1, 2}})
	b := mustRows(t, matrix.FixedShape(2, 1), [][]int{{1}, {2}})
	_, err = matrix.Add[int](a, b)
	var se *matrix.ShapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, matrix.FixedShape(1, 2), se.Left)
}

func TestCopyFrom_OverlappingViews(t *testing.T) {
	t.Parallel()

	m := mustRows(t, matrix.DynamicShape, [][]int{{1, 2, 3, 4}})
	dst, err := matrix.Slice[int](m, matrix.DynamicSlicer, 0, 1, 1, 3)
	require.NoError(t, err)
	src, err := matrix.SliceConst[int](m, matrix.DynamicSlicer, 0, 0, 1, 3)
	require.NoError(t, err)
	require.True(t, matrix.Overlaps_TestOnly[int](dst, src))
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, []int{1, 1, 2, 3}, m.Data())

	other := mustRows(t, matrix.DynamicShape, [][]int{{7, 8, 9}})
	require.False(t, matrix.Overlaps_TestOnly[int](dst, other))
	require.NoError(t, dst.CopyFrom(other))
	require.Equal(t, []int{1, 7, 8, 9}, m.Data())
}
