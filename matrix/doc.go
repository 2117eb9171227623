// SPDX-License-Identifier: MIT

// Package matrix offers generic dense matrices in column-major storage and
// the strided iterators that walk them.
//
// The matrix package provides:
//
//   - Matrix[T]: an owned buffer of T with shape (rows, cols) and a stride
//     (distance between the starts of consecutive columns, stride ≥ rows).
//     Element (r, c) lives at offset c*stride + r.
//   - Vector[T]: a Matrix with exactly one column.
//   - View[T]: a read-only, no-copy window into a sub-region of a Matrix.
//   - RowIterator, ColIterator, CellIterator, DiagIterator: single-pass
//     cursors encoding the four access patterns of column-major storage.
//
// Columns are contiguous (step 1), rows step by stride and the diagonal by
// stride+1. CellIterator follows the natural buffer order and is the
// cheapest full scan.
//
// Cursors hold a slice window of the source buffer, never a copy. The
// garbage collector keeps that buffer alive as long as any cursor refers to
// it and a Matrix never reallocates, so a cursor cannot dangle; windows are
// cut with full slice expressions so a cursor cannot read past its extent.
// Values written with Set after a cursor was created are visible to it.
//
// T is unconstrained here: storage only needs copyable, default
// constructible values. Arithmetic lives in package algebra.
package matrix
