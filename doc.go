// SPDX-License-Identifier: MIT

// Package matview is a generic dense matrix library with static and dynamic
// shapes, inline or heap storage, and aliasing views.
//
// What is in the box:
//
//	matrix/       Matrix, View and ConstView; shapes, slicing, iterators,
//	              element-wise and in-place arithmetic, products, vector
//	              geometry and column statistics
//	numeric/      element constraints, identities, scalar functors, quadratic roots
//	permutation/  identity and inverse permutations (pair with matrix.Induced)
//	clustering/   k-means over the rows of any matrix or view
//	gonumx/       copies to and from gonum's mat.Dense for decompositions and solvers
//	cmd/matview-kmeans/
//	              CSV in, centroids and labels out (text or CBOR)
//
// Shapes:
//
//	A declared Shape fixes none, one or both dimensions. Fixed dimensions are
//	checked whenever a value is built or combined, and a mismatch is reported as a
//	*matrix.ShapeError before any element is touched.
//
// Views:
//
//	Slice and SliceConst alias a rectangular region without copying. Moving or
//	resizing the owner invalidates its views; a stale view reports
//	matrix.ErrStaleView instead of reading freed storage.
//
// Quick start:
//
//	m := matrix.MustFromRows(matrix.DynamicShape, [][]float64{{1, 2, 3}, {4, 5, 6}})
//	v, _ := matrix.Slice[float64](m, matrix.DynamicSlicer, 0, 1, 2, 2)
//	_ = v.ScaleInPlace(10) // m is now {{1, 20, 30}, {4, 50, 60}}
package matview
