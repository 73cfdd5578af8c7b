// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Octant tags one of the eight reflective/rotational transforms that carry a
// direction vector into octant 0 (dx ≥ dy ≥ 0). Valid tags are 0..7.
//
//	tag  ToOffset(x, y)
//	0    ( x,  y)
//	1    ( y,  x)
//	2    ( y, -x)
//	3    (-x,  y)
//	4    (-x, -y)
//	5    (-y, -x)
//	6    (-y,  x)
//	7    ( x, -y)
//
// Tags 4..7 are tags 0..3 composed with a half-turn.
type Octant uint8

// NewOctant returns the octant of the vector from p to q.
//
//	dy < 0       → negate both, +4
//	dx < 0       → (dx, dy) = (dy, -dx), +2
//	dx < dy      → +1
//
// Complexity: O(1).
func NewOctant(p, q lattice.Point) Octant {
	dx, dy := q.X-p.X, q.Y-p.Y
	var o Octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}

	return o
}

// ToOffset converts p into octant-0 relative coordinates.
// It panics on a tag outside 0..7.
func (o Octant) ToOffset(p lattice.Point) lattice.Point {
	switch o {
	case 0:
		return lattice.Point{X: p.X, Y: p.Y}
	case 1:
		return lattice.Point{X: p.Y, Y: p.X}
	case 2:
		return lattice.Point{X: p.Y, Y: -p.X}
	case 3:
		return lattice.Point{X: -p.X, Y: p.Y}
	case 4:
		return lattice.Point{X: -p.X, Y: -p.Y}
	case 5:
		return lattice.Point{X: -p.Y, Y: -p.X}
	case 6:
		return lattice.Point{X: -p.Y, Y: p.X}
	case 7:
		return lattice.Point{X: p.X, Y: -p.Y}
	}
	panic(fmt.Sprintf("shapes: invalid octant %d", uint8(o)))
}

// FromOffset is the inverse of ToOffset: FromOffset(ToOffset(p)) == p.
// It panics on a tag outside 0..7.
func (o Octant) FromOffset(c lattice.Point) lattice.Point {
	switch o {
	case 0:
		return lattice.Point{X: c.X, Y: c.Y}
	case 1:
		return lattice.Point{X: c.Y, Y: c.X}
	case 2:
		return lattice.Point{X: -c.Y, Y: c.X}
	case 3:
		return lattice.Point{X: -c.X, Y: c.Y}
	case 4:
		return lattice.Point{X: -c.X, Y: -c.Y}
	case 5:
		return lattice.Point{X: -c.Y, Y: -c.X}
	case 6:
		return lattice.Point{X: c.Y, Y: -c.X}
	case 7:
		return lattice.Point{X: c.X, Y: -c.Y}
	}
	panic(fmt.Sprintf("shapes: invalid octant %d", uint8(o)))
}
