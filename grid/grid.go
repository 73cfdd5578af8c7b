// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Grid is a row-major W×H container.
// size is fixed at construction; data holds exactly size.Area() cells.
type Grid[T any] struct {
	size lattice.Size // width and height in cells
	data []T          // flat backing storage, len == width*height
}

// New wraps data as a grid of the given size. The slice is adopted, not copied.
// Returns ErrDataLength if len(data) != size.Area().
// Complexity: O(1).
func New[T any](size lattice.Size, data []T) (*Grid[T], error) {
	if len(data) != size.Area() {
		return nil, fmt.Errorf("grid.New(%v, len=%d): %w", size, len(data), ErrDataLength)
	}

	return &Grid[T]{size: size, data: data}, nil
}

// NewFilled creates a grid whose every cell is a copy of value.
// Reference-typed T (slices, maps, pointers) share the referenced storage;
// use NewFunc for independent per-cell values.
// Complexity: O(W×H).
func NewFilled[T any](size lattice.Size, value T) *Grid[T] {
	data := make([]T, size.Area())
	for i := range data {
		data[i] = value
	}

	return &Grid[T]{size: size, data: data}
}

// NewDefault creates a grid holding the zero value of T in every cell.
// Complexity: O(W×H).
func NewDefault[T any](size lattice.Size) *Grid[T] {
	return &Grid[T]{size: size, data: make([]T, size.Area())}
}

// NewFunc creates a grid by calling f once per cell in row-major order with
// the cell's index and position.
// Complexity: O(W×H) calls to f.
func NewFunc[T any](size lattice.Size, f func(index int, p lattice.Point) T) *Grid[T] {
	data := make([]T, 0, size.Area())
	for p := range lattice.RowMajor(size) {
		data = append(data, f(len(data), p))
	}

	return &Grid[T]{size: size, data: data}
}

// Clone returns a grid with its own copy of the backing slice.
// Cell values themselves are copied shallowly.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{size: g.size, data: data}
}

// Size returns the (width, height) of the grid.
func (g *Grid[T]) Size() lattice.Size { return g.size }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return int(g.size.Width) }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return int(g.size.Height) }

// Len returns the number of cells in the backing slice.
func (g *Grid[T]) Len() int { return len(g.data) }

// Values returns the backing slice itself. Writes go straight into the grid.
func (g *Grid[T]) Values() []T { return g.data }

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(W×H).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		sb.WriteByte('[')
		for x := 0; x < w; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, g.data[y*w+x])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
