// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matview/numeric"

// inlineStorage is the fixed-capacity owning variant. The block lives inside the
// Matrix value itself, so building one costs no allocation beyond the Matrix and
// copying it is a plain value copy.
type inlineStorage[T numeric.Number] struct {
	r, c int               // resolved rows and columns, r*c <= InlineCapacity
	buf  [InlineCapacity]T // row-major; elements past r*c stay zero
}

// reset zero-fills the block and records rows×cols. The caller guarantees
// rows*cols <= InlineCapacity (see resolveStorage).
func (s *inlineStorage[T]) reset(rows, cols int) {
	clear(s.buf[:])
	s.r, s.c = rows, cols
}

func (s *inlineStorage[T]) kind() StorageKind { return StorageInline }
func (s *inlineStorage[T]) rowCount() int { return s.r }
func (s *inlineStorage[T]) columnCount() int { return s.c }
func (s *inlineStorage[T]) sourceRowCount() int { return s.r }
func (s *inlineStorage[T]) sourceColumnCount() int { return s.c }
func (s *inlineStorage[T]) unsafeAt(row, col int) T { return s.buf[row*s.c+col] }
func (s *inlineStorage[T]) unsafeAtIndex(i int) T { return s.buf[i] }
func (s *inlineStorage[T]) unsafeSet(row, col int, v T) { s.buf[row*s.c+col] = v }
func (s *inlineStorage[T]) unsafeSetIndex(i int, v T) { s.buf[i] = v }
func (s *inlineStorage[T]) valid() error { return nil }
func (s *inlineStorage[T]) elems() []T { return s.buf[:s.r*s.c] }
func (s *inlineStorage[T]) window() window[T] {
	return window[T]{data: s.buf[:s.r*s.c], rows: s.r, cols: s.c, srcRows: s.r, srcCols: s.c}
}
