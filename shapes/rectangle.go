// SPDX-License-Identifier: MIT

package shapes

import (
	"iter"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Rectangle is a closed axis-aligned box. Min ≤ Max holds componentwise for
// every Rectangle built by NewRectangle or NewRectangleWithSize; the zero
// value is the single point (0,0).
type Rectangle struct {
	Min lattice.Point `json:"min" yaml:"min"`
	Max lattice.Point `json:"max" yaml:"max"`
}

// NewRectangle returns the box spanned by two corners given in any order.
// Corners are sorted per axis, never rejected.
func NewRectangle(a, b lattice.Point) Rectangle {
	return Rectangle{Min: a.Min(b), Max: a.Max(b)}
}

// NewRectangleWithSize returns the box from origin to origin+size.
func NewRectangleWithSize(origin lattice.Point, size lattice.Size) Rectangle {
	return NewRectangle(origin, lattice.Point{X: origin.X + int(size.Width), Y: origin.Y + int(size.Height)})
}

// Width returns Max.X - Min.X.
func (r Rectangle) Width() int { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rectangle) Height() int { return r.Max.Y - r.Min.Y }

// IsSquare reports whether Width equals Height.
func (r Rectangle) IsSquare() bool { return r.Width() == r.Height() }

// Center returns the integer midpoint, truncated toward zero.
func (r Rectangle) Center() lattice.Point {
	return lattice.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Left returns the smallest x.
func (r Rectangle) Left() int { return min(r.Min.X, r.Max.X) }

// Right returns the largest x.
func (r Rectangle) Right() int { return max(r.Min.X, r.Max.X) }

// Top returns the largest y.
func (r Rectangle) Top() int { return max(r.Min.Y, r.Max.Y) }

// Bottom returns the smallest y.
func (r Rectangle) Bottom() int { return min(r.Min.Y, r.Max.Y) }

// Intersects reports closed-interval overlap: touching edges or corners count.
// Complexity: O(1).
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Min.X <= o.Max.X &&
		r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y &&
		r.Max.Y >= o.Min.Y
}

// Count returns (Width+1)×(Height+1), the number of points All yields.
func (r Rectangle) Count() int {
	return (r.Width() + 1) * (r.Height() + 1)
}

// Contains reports whether p lies in the closed box [Min, Max].
// Complexity: O(1).
func (r Rectangle) Contains(p lattice.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Positions returns the points of All as a set.
func (r Rectangle) Positions() map[lattice.Point]struct{} {
	return collect(r.All(), r.Count())
}

// All yields Min + (dx, dy) for dy in 0..=Height and dx in 0..=Width,
// row-major. Both the Max column and the Max row are included.
// Complexity: O((w+1)(h+1)).
func (r Rectangle) All() iter.Seq[lattice.Point] {
	return r.walk(r.Width(), r.Height())
}

// AllHalfOpen yields the points of [Min, Max) row-major, Width×Height of them.
func (r Rectangle) AllHalfOpen() iter.Seq[lattice.Point] {
	return r.walk(r.Width()-1, r.Height()-1)
}

// ForEach calls f for every point of All.
func (r Rectangle) ForEach(f func(lattice.Point)) {
	for p := range r.All() {
		f(p)
	}
}

func (r Rectangle) walk(lastX, lastY int) iter.Seq[lattice.Point] {
	return func(yield func(lattice.Point) bool) {
		for dy := 0; dy <= lastY; dy++ {
			for dx := 0; dx <= lastX; dx++ {
				if !yield(lattice.Point{X: r.Min.X + dx, Y: r.Min.Y + dy}) {
					return
				}
			}
		}
	}
}
