// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a generic 2-D container stored as one flat,
// row-major slice.
//
// What:
//
//   - Addressing: index = y*Width + x. Positions are signed lattice.Points and
//     may lie anywhere; indices are plain ints into the backing slice.
//   - Two independent predicates: InBounds(p) is spatial containment,
//     IsValid(i) is 0 ≤ i < Len(). Neither implies the other: in a 3×3 grid
//     the position (3,1) is out of bounds, yet its unchecked index 1*3+3 = 6
//     is a valid index (it wraps into the next row).
//   - Checked accessors (Get, GetPtr, Take, Replace, Swap, PositionToIndex)
//     report absence instead of failing. Fail-fast accessors (At, AtIndex, Put)
//     panic on out-of-range input and are meant for loops that already
//     established validity.
//   - Row views are sub-slices of the backing array and write through.
//     Columns are strided, so column mutation is index-yielding: callers get
//     backing indices (ColumnIndices) or a single-cell callback (UpdateColumn)
//     rather than several live pointers into one slice.
//
// Complexity:
//
//   - Point accessors and conversions: O(1).
//   - Blit: O(w×h) of the copy window.
//   - Full iteration, Clone, String: O(W×H).
//
// Errors:
//
//   - ErrDataLength: supplied data length differs from Width×Height.
package grid
