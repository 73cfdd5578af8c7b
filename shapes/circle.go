// SPDX-License-Identifier: MIT

package shapes

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Circle is a lattice circle around Center. Radius is unsigned by type.
type Circle struct {
	Center lattice.Point `json:"center" yaml:"center"`
	Radius uint32        `json:"radius" yaml:"radius"`
}

// NewCircle returns the circle of the given radius around center.
func NewCircle(center lattice.Point, radius uint32) Circle {
	return Circle{Center: center, Radius: radius}
}

// Left returns the westmost extremum (cx-r, cy).
func (c Circle) Left() lattice.Point {
	return lattice.Point{X: c.Center.X - int(c.Radius), Y: c.Center.Y}
}

// Right returns the eastmost extremum (cx+r, cy).
func (c Circle) Right() lattice.Point {
	return lattice.Point{X: c.Center.X + int(c.Radius), Y: c.Center.Y}
}

// Top returns (cx, cy+r).
func (c Circle) Top() lattice.Point {
	return lattice.Point{X: c.Center.X, Y: c.Center.Y + int(c.Radius)}
}

// Bottom returns (cx, cy-r).
func (c Circle) Bottom() lattice.Point {
	return lattice.Point{X: c.Center.X, Y: c.Center.Y - int(c.Radius)}
}

// HorizontalLine returns the diameter from Left to Right.
func (c Circle) HorizontalLine() Line {
	return NewLine(c.Left(), c.Right())
}

// VerticalLine returns the diameter from Bottom to Top.
func (c Circle) VerticalLine() Line {
	return NewLine(c.Bottom(), c.Top())
}

// midpoint runs the integer midpoint circle loop and hands every (x, y)
// of the first octant, 0 ≤ x ≤ y, to visit.
//
//	d = (5 - 4r) / 4, x = 0, y = r
//	d < 0:  d += 2x + 1
//	else:   d += 2(x - y) + 1, y--
//	x++
func (c Circle) midpoint(visit func(x, y int)) {
	r := int(c.Radius)
	d := (5 - 4*r) / 4
	x, y := 0, r
	for x <= y {
		visit(x, y)
		if d < 0 {
			d += 2*x + 1
		} else {
			d += 2*(x-y) + 1
			y--
		}
		x++
	}
}

// Circumference returns the boundary points: the eight symmetric images
// (cx±x, cy±y) and (cx±y, cy±x) of every midpoint step.
// Complexity: O(r).
func (c Circle) Circumference() map[lattice.Point]struct{} {
	set := make(map[lattice.Point]struct{}, 8*(int(c.Radius)+1))
	cx, cy := c.Center.X, c.Center.Y
	c.midpoint(func(x, y int) {
		for _, p := range [8]lattice.Point{
			{X: cx + x, Y: cy + y}, {X: cx + x, Y: cy - y},
			{X: cx - x, Y: cy + y}, {X: cx - x, Y: cy - y},
			{X: cx + y, Y: cy + x}, {X: cx + y, Y: cy - x},
			{X: cx - y, Y: cy + x}, {X: cx - y, Y: cy - x},
		} {
			set[p] = struct{}{}
		}
	})

	return set
}

// Positions returns the filled disc. Each midpoint step rasterizes the four
// column spans joining its symmetric boundary pairs,
// (cx±x, cy+y)–(cx±x, cy-y) and (cx±y, cy+x)–(cx±y, cy-x), with Line; spans
// overlap near the diagonal and the result is deduplicated.
// Complexity: O(r²).
func (c Circle) Positions() map[lattice.Point]struct{} {
	side := 2*int(c.Radius) + 1
	set := make(map[lattice.Point]struct{}, side*side)
	cx, cy := c.Center.X, c.Center.Y
	c.midpoint(func(x, y int) {
		for _, span := range [4]Line{
			{Start: lattice.Point{X: cx + x, Y: cy + y}, End: lattice.Point{X: cx + x, Y: cy - y}},
			{Start: lattice.Point{X: cx - x, Y: cy + y}, End: lattice.Point{X: cx - x, Y: cy - y}},
			{Start: lattice.Point{X: cx + y, Y: cy + x}, End: lattice.Point{X: cx + y, Y: cy - x}},
			{Start: lattice.Point{X: cx - y, Y: cy + x}, End: lattice.Point{X: cx - y, Y: cy - x}},
		} {
			for p := range span.All() {
				set[p] = struct{}{}
			}
		}
	})

	return set
}

// Count returns the number of filled points. There is no closed form; the
// set is generated.
func (c Circle) Count() int {
	return len(c.Positions())
}

// Contains reports whether p is inside the filled disc.
func (c Circle) Contains(p lattice.Point) bool {
	_, ok := c.Positions()[p]
	return ok
}

// All yields the filled disc in row-major order (y, then x). The set is
// generated when iteration starts.
func (c Circle) All() iter.Seq[lattice.Point] {
	return func(yield func(lattice.Point) bool) {
		for _, p := range sortRowMajor(c.Positions()) {
			if !yield(p) {
				return
			}
		}
	}
}

// sortRowMajor flattens a point set into a deterministic y-then-x order.
func sortRowMajor(set map[lattice.Point]struct{}) []lattice.Point {
	return slices.SortedFunc(maps.Keys(set), func(a, b lattice.Point) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
}
