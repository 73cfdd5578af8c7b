// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Line is a rasterized segment between two lattice points.
// Start and End are kept as given; order only affects iteration order and String.
type Line struct {
	Start lattice.Point `json:"start" yaml:"start"`
	End   lattice.Point `json:"end" yaml:"end"`
}

// NewLine returns the line from start to end.
func NewLine(start, end lattice.Point) Line {
	return Line{Start: start, End: end}
}

// Count returns the number of steps, max(|dx|, |dy|).
// A line emits Count()+1 points; see PointCount.
// Complexity: O(1).
func (l Line) Count() int {
	return max(abs(l.End.X-l.Start.X), abs(l.End.Y-l.Start.Y))
}

// PointCount returns the number of points All yields, Count()+1.
func (l Line) PointCount() int {
	return l.Count() + 1
}

// Contains reports whether p is one of the rasterized points.
// Complexity: O(max(|dx|,|dy|)).
func (l Line) Contains(p lattice.Point) bool {
	for q := range l.All() {
		if q == p {
			return true
		}
	}

	return false
}

// Positions returns the rasterized points as a set.
func (l Line) Positions() map[lattice.Point]struct{} {
	return collect(l.All(), l.PointCount())
}

// All yields every point from Start to End inclusive, each exactly once.
func (l Line) All() iter.Seq[lattice.Point] {
	return l.walk(true)
}

// AllExclusive yields the points from Start up to, but not including, End.
// A zero-length line yields nothing.
func (l Line) AllExclusive() iter.Seq[lattice.Point] {
	return l.walk(false)
}

// walk is the octant-normalized Bresenham loop. In canonical space
// (dx ≥ dy ≥ 0) x advances by one per step and the error e accumulates dy;
// y advances when 2e reaches dx. Exact ties (2e == dx) step in octants 0..3
// and hold in octants 4..7: reversing a line adds 4 to its octant and
// negates its canonical frame, so both directions settle every tie on the
// same lattice point.
func (l Line) walk(inclusive bool) iter.Seq[lattice.Point] {
	return func(yield func(lattice.Point) bool) {
		oct := NewOctant(l.Start, l.End)
		delta := oct.ToOffset(l.End.Sub(l.Start))
		dx, dy := delta.X, delta.Y
		last := dx
		if !inclusive {
			last--
		}
		stepOnTie := oct < 4

		e, y := 0, 0
		for x := 0; x <= last; x++ {
			if !yield(l.Start.Add(oct.FromOffset(lattice.Point{X: x, Y: y}))) {
				return
			}
			e += dy
			if 2*e > dx || (stepOnTie && 2*e == dx && dy != 0) {
				y++
				e -= dx
			}
		}
	}
}

// String renders "Line {Start: (x, y), End: (x, y)}".
func (l Line) String() string {
	return fmt.Sprintf("Line {Start: %v, End: %v}", l.Start, l.End)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// collect drains seq into a set sized for n points.
func collect(seq iter.Seq[lattice.Point], n int) map[lattice.Point]struct{} {
	set := make(map[lattice.Point]struct{}, n)
	for p := range seq {
		set[p] = struct{}{}
	}

	return set
}
