// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matview/numeric"

// heapStorage is the resizable owning variant: a row-major slice of rows*cols
// elements. Chosen when any dimension is dynamic or the footprint exceeds the
// inline threshold.
type heapStorage[T numeric.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// reset reallocates the storage for rows×cols zero elements.
// Stage 1 (Prepare): reuse the backing array when its capacity suffices.
// Stage 2 (Finalize): clear the addressable prefix.
// Complexity: O(rows*cols).
func (s *heapStorage[T]) reset(rows, cols int) {
	n := rows * cols
	if cap(s.data) >= n && n > 0 {
		s.data = s.data[:n]
		clear(s.data)
	} else {
		s.data = make([]T, n)
	}
	s.r, s.c = rows, cols
}

// resize changes the extent to rows×cols, keeping the overlapping top-left
// block and zero-filling the rest. Always allocates a fresh buffer so slices
// taken before the call never alias the new elements.
// Complexity: O(rows*cols).
func (s *heapStorage[T]) resize(rows, cols int) {
	next := make([]T, rows*cols)
	keepR, keepC := min(rows, s.r), min(cols, s.c)
	for r := 0; r < keepR; r++ {
		copy(next[r*cols:r*cols+keepC], s.data[r*s.c:r*s.c+keepC])
	}
	s.r, s.c, s.data = rows, cols, next
}

// clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (s *heapStorage[T]) clone() heapStorage[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)

	return heapStorage[T]{r: s.r, c: s.c, data: data}
}

func (s *heapStorage[T]) kind() StorageKind { return StorageHeap }
func (s *heapStorage[T]) rowCount() int { return s.r }
func (s *heapStorage[T]) columnCount() int { return s.c }
func (s *heapStorage[T]) sourceRowCount() int { return s.r }
func (s *heapStorage[T]) sourceColumnCount() int { return s.c }
func (s *heapStorage[T]) unsafeAt(row, col int) T { return s.data[row*s.c+col] }
func (s *heapStorage[T]) unsafeAtIndex(i int) T { return s.data[i] }
func (s *heapStorage[T]) unsafeSet(row, col int, v T) { s.data[row*s.c+col] = v }
func (s *heapStorage[T]) unsafeSetIndex(i int, v T) { s.data[i] = v }
func (s *heapStorage[T]) valid() error { return nil }
func (s *heapStorage[T]) elems() []T { return s.data }
func (s *heapStorage[T]) window() window[T] {
	return window[T]{data: s.data, rows: s.r, cols: s.c, srcRows: s.r, srcCols: s.c}
}
