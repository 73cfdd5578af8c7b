// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Get returns the value at p. ok is false when p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Get(p lattice.Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}

	return g.data[g.PositionToIndexUnchecked(p)], true
}

// GetPtr returns a pointer to the cell at p, or nil when p is out of bounds.
// The pointer stays valid for the lifetime of the grid (no resizing ever happens).
// Complexity: O(1).
func (g *Grid[T]) GetPtr(p lattice.Point) *T {
	if !g.InBounds(p) {
		return nil
	}

	return &g.data[g.PositionToIndexUnchecked(p)]
}

// GetIndex returns the value at index i. ok is false when !IsValid(i).
// Complexity: O(1).
func (g *Grid[T]) GetIndex(i int) (v T, ok bool) {
	if !g.IsValid(i) {
		return v, false
	}

	return g.data[i], true
}

// GetIndexPtr returns a pointer to the cell at index i, or nil when !IsValid(i).
// Complexity: O(1).
func (g *Grid[T]) GetIndexPtr(i int) *T {
	if !g.IsValid(i) {
		return nil
	}

	return &g.data[i]
}

// Set stores v at p and reports whether p was in bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(p lattice.Point, v T) bool {
	dst := g.GetPtr(p)
	if dst == nil {
		return false
	}
	*dst = v

	return true
}

// Take returns the value at p and leaves the zero value of T behind.
// ok is false, and the grid untouched, when p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Take(p lattice.Point) (v T, ok bool) {
	dst := g.GetPtr(p)
	if dst == nil {
		return v, false
	}
	var zero T
	v, *dst = *dst, zero

	return v, true
}

// Replace stores v at p and returns the previous value.
// ok is false, and the grid untouched, when p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Replace(p lattice.Point, v T) (prev T, ok bool) {
	dst := g.GetPtr(p)
	if dst == nil {
		return prev, false
	}
	prev, *dst = *dst, v

	return prev, true
}

// Swap exchanges the cell at p with *other. Out-of-bounds positions are a
// silent no-op and leave *other unchanged.
// Complexity: O(1).
func (g *Grid[T]) Swap(p lattice.Point, other *T) {
	if dst := g.GetPtr(p); dst != nil {
		*dst, *other = *other, *dst
	}
}

// At returns the value at p and panics when p is out of bounds.
// Use it only where InBounds has already been established.
func (g *Grid[T]) At(p lattice.Point) T {
	return *g.mustPtr(p)
}

// Put stores v at p and panics when p is out of bounds.
func (g *Grid[T]) Put(p lattice.Point, v T) {
	*g.mustPtr(p) = v
}

// AtIndex returns the value at index i and panics when !IsValid(i).
func (g *Grid[T]) AtIndex(i int) T {
	if !g.IsValid(i) {
		panic(fmt.Sprintf("grid: invalid index %d for length %d", i, len(g.data)))
	}

	return g.data[i]
}

func (g *Grid[T]) mustPtr(p lattice.Point) *T {
	dst := g.GetPtr(p)
	if dst == nil {
		panic(fmt.Sprintf("grid: invalid position %v for size %v", p, g.size))
	}

	return dst
}
