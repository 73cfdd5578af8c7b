// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/lvlgrid/lattice"

// neighborOffsets lists the eight surrounding cells in row-major order.
var neighborOffsets = [8]lattice.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Blit copies a size-sized window of cells from src (starting at fromOffset)
// into dst (starting at toOffset). For every (x, y) of the window the cell is
// copied only when both the source and the destination positions are in
// bounds; anything else is skipped individually, never aborting the row.
// src and dst may be the same grid; overlapping windows then copy in
// row-major order.
// Complexity: O(size.Width × size.Height).
func Blit[T any](dst *Grid[T], toOffset lattice.Point, size lattice.Size, src *Grid[T], fromOffset lattice.Point) {
	for off := range lattice.RowMajor(size) {
		v, ok := src.Get(fromOffset.Add(off))
		if !ok {
			continue
		}
		dst.Set(toOffset.Add(off), v)
	}
}

// Neighbors returns the in-bounds positions among the up to eight cells
// surrounding p (orthogonal and diagonal), in row-major order. Nothing wraps
// around the edges, and p itself is never included.
// Complexity: O(1).
func (g *Grid[T]) Neighbors(p lattice.Point) []lattice.Point {
	out := make([]lattice.Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n := p.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}
