// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matview/numeric"

// viewStorage is the non-owning variant shared by View and ConstView. It keeps
// the window it aliases and the lease of the storage that owns the elements.
// readOnly only changes the reported kind: ConstView simply has no write method.
type viewStorage[T numeric.Number] struct {
	w        window[T]
	ref      leaseRef
	readOnly bool
}

func (s *viewStorage[T]) kind() StorageKind {
	if s.readOnly {
		return StorageReadOnlyView
	}

	return StorageMutableView
}

func (s *viewStorage[T]) rowCount() int { return s.w.rows }
func (s *viewStorage[T]) columnCount() int { return s.w.cols }
func (s *viewStorage[T]) sourceRowCount() int { return s.w.srcRows }
func (s *viewStorage[T]) sourceColumnCount() int { return s.w.srcCols }
func (s *viewStorage[T]) unsafeAt(row, col int) T { return s.w.data[s.w.offset(row, col)] }
func (s *viewStorage[T]) unsafeAtIndex(i int) T { return s.w.data[s.w.offsetOf(i)] }
func (s *viewStorage[T]) unsafeSet(row, col int, v T) {
	s.w.data[s.w.offset(row, col)] = v
}
func (s *viewStorage[T]) unsafeSetIndex(i int, v T) { s.w.data[s.w.offsetOf(i)] = v }
func (s *viewStorage[T]) window() window[T] { return s.w }
func (s *viewStorage[T]) valid() error { return s.ref.check() }
