// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/lvlgrid/lattice"

// InBounds reports whether 0 ≤ p.X < Width and 0 ≤ p.Y < Height.
//
// A position that fails InBounds may still map, through
// PositionToIndexUnchecked, to an index that passes IsValid. Callers that need
// spatial containment must use InBounds.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p lattice.Point) bool {
	return g.size.Contains(p)
}

// IsValid reports whether i addresses a cell of the backing slice.
// It says nothing about which row or column that cell belongs to.
// Complexity: O(1).
func (g *Grid[T]) IsValid(i int) bool {
	return i >= 0 && i < len(g.data)
}

// PositionToIndex converts an in-bounds position to its row-major index.
// ok is false when p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) PositionToIndex(p lattice.Point) (idx int, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.PositionToIndexUnchecked(p), true
}

// PositionToIndexUnchecked applies y*Width + x without any validation.
// Pair it with a prior InBounds check.
// Complexity: O(1).
func (g *Grid[T]) PositionToIndexUnchecked(p lattice.Point) int {
	return p.Y*g.Width() + p.X
}

// IndexToPosition converts an index back to a position.
// ok is false when the resulting position is out of bounds
// (negative indices, indices past the last row, or a zero-width grid).
// Complexity: O(1).
func (g *Grid[T]) IndexToPosition(i int) (p lattice.Point, ok bool) {
	if g.Width() == 0 {
		return lattice.Point{}, false
	}
	p = g.IndexToPositionUnchecked(i)
	if !g.InBounds(p) {
		return lattice.Point{}, false
	}

	return p, true
}

// IndexToPositionUnchecked applies (i mod Width, i div Width) without
// validation. It panics on a zero-width grid (integer division by zero).
// Complexity: O(1).
func (g *Grid[T]) IndexToPositionUnchecked(i int) lattice.Point {
	w := g.Width()

	return lattice.Point{X: i % w, Y: i / w}
}
