// SPDX-License-Identifier: MIT

package matrix

// View is a non-owning, read-only window into a sub-region of a Matrix.
//
// A View shares the parent's buffer and stride, so it sees later writes made
// through the parent's Set. It exposes the same accessors and iterators as
// Matrix but no mutators; Clone materializes an independent Matrix.
// Views of views are allowed and stay within the original window.
type View[T any] struct {
	layout[T]
}
