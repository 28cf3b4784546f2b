// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matview/numeric"

// Test-Bridge (White-Box) for private storage internals.
//
// Purpose:
//   - Expose the storage-policy decision and the raw window of a facade to
//     matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - The file name ends in _test.go, so it exists only in test builds.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across files.

// StrideOf_TestOnly returns the source column count (stride) behind r.
func StrideOf_TestOnly[T numeric.Number](r Reader[T]) int {
	b, err := r.backing()
	if err != nil {
		return -1
	}

	return b.srcCols
}

// ResolveStorage_TestOnly exposes the storage decision for decl with opts.
func ResolveStorage_TestOnly[T numeric.Number](decl Shape, rows, cols int, opts ...Option) (StorageKind, error) {
	return resolveStorage[T](gatherOptions(opts...), decl, rows, cols)
}

// Overlaps_TestOnly reports whether the windows behind a and b share memory.
func Overlaps_TestOnly[T numeric.Number](a, b Reader[T]) bool {
	ab, errA := a.backing()
	bb, errB := b.backing()

	return errA == nil && errB == nil && overlaps(ab.window, bb.window)
}
