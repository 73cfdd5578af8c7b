// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// All yields (index, value) for every cell in backing order.
// Complexity: O(W×H).
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Enumerate yields (position, value) for every cell, row-major.
// Complexity: O(W×H).
func (g *Grid[T]) Enumerate() iter.Seq2[lattice.Point, T] {
	return func(yield func(lattice.Point, T) bool) {
		i := 0
		for p := range lattice.RowMajor(g.size) {
			if !yield(p, g.data[i]) {
				return
			}
			i++
		}
	}
}

// EnumerateIndices yields (position, index) for every cell, row-major.
// This is the mutable form of Enumerate: write through g.Values()[index]
// or GetIndexPtr(index), one cell at a time.
// Complexity: O(W×H).
func (g *Grid[T]) EnumerateIndices() iter.Seq2[lattice.Point, int] {
	return func(yield func(lattice.Point, int) bool) {
		i := 0
		for p := range lattice.RowMajor(g.size) {
			if !yield(p, i) {
				return
			}
			i++
		}
	}
}

// Positions yields every in-bounds position, row-major.
func (g *Grid[T]) Positions() iter.Seq[lattice.Point] {
	return lattice.RowMajor(g.size)
}

// Update calls f once per cell, row-major, with a pointer valid only for
// the duration of that call.
// Complexity: O(W×H).
func (g *Grid[T]) Update(f func(p lattice.Point, v *T)) {
	for p, i := range g.EnumerateIndices() {
		f(p, &g.data[i])
	}
}

// Row returns row y as a sub-slice of the backing array. Writes go through to
// the grid. ok is false when y is out of range.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) (row []T, ok bool) {
	if y < 0 || y >= g.Height() {
		return nil, false
	}
	start := y * g.Width()

	return g.data[start : start+g.Width() : start+g.Width()], true
}

// Rows yields (y, row) for every row. Each row is a capacity-capped sub-slice,
// so appending to one view can never spill into the next row.
// Complexity: O(H).
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.Height(); y++ {
			row, _ := g.Row(y)
			if !yield(y, row) {
				return
			}
		}
	}
}

// ColumnIndices returns the backing indices of column x, top row first.
// ok is false when x is out of range.
// Complexity: O(H).
func (g *Grid[T]) ColumnIndices(x int) (indices []int, ok bool) {
	if x < 0 || x >= g.Width() {
		return nil, false
	}
	indices = make([]int, g.Height())
	for y := range indices {
		indices[y] = y*g.Width() + x
	}

	return indices, true
}

// Column returns a copy of column x, top row first.
// ok is false when x is out of range.
// Complexity: O(H).
func (g *Grid[T]) Column(x int) (col []T, ok bool) {
	indices, ok := g.ColumnIndices(x)
	if !ok {
		return nil, false
	}
	col = make([]T, len(indices))
	for y, i := range indices {
		col[y] = g.data[i]
	}

	return col, true
}

// Columns yields (x, column copy) for every column.
// Complexity: O(W×H).
func (g *Grid[T]) Columns() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for x := 0; x < g.Width(); x++ {
			col, _ := g.Column(x)
			if !yield(x, col) {
				return
			}
		}
	}
}

// UpdateColumn calls f for every cell of column x, top row first, with a
// pointer valid only for that call. It returns false when x is out of range.
// Complexity: O(H).
func (g *Grid[T]) UpdateColumn(x int, f func(y int, v *T)) bool {
	indices, ok := g.ColumnIndices(x)
	if !ok {
		return false
	}
	for y, i := range indices {
		f(y, &g.data[i])
	}

	return true
}
