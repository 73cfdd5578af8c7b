// SPDX-License-Identifier: MIT

package direction

import "github.com/katalvlaran/lvlgrid/lattice"

// Coord returns the horizontal unit offset: East=+x, West=-x, North=+y, South=-y.
// East wins over West and North over South when both are set.
func (d Direction) Coord() lattice.Point {
	return lattice.Point{X: axis(d.HasEast(), d.HasWest()), Y: axis(d.HasNorth(), d.HasSouth())}
}

// Coord3D is Coord plus z: Up=+1, Down=-1.
func (d Direction) Coord3D() (x, y, z int) {
	c := d.Coord()
	return c.X, c.Y, axis(d.HasUp(), d.HasDown())
}

// Step returns p moved one cell along d's horizontal component.
func (d Direction) Step(p lattice.Point) lattice.Point {
	return p.Add(d.Coord())
}

// FromCoord returns the horizontal Direction pointing along the signs of p.
// Magnitude is ignored: (5, -2) is SouthEast.
func FromCoord(p lattice.Point) Direction {
	return FromCoord3D(p.X, p.Y, 0)
}

// FromCoord3D returns the Direction pointing along the signs of (x, y, z).
func FromCoord3D(x, y, z int) Direction {
	return bySign(x, East, West) | bySign(y, North, South) | bySign(z, Up, Down)
}

func axis(pos, neg bool) int {
	switch {
	case pos:
		return 1
	case neg:
		return -1
	default:
		return 0
	}
}

func bySign(v int, pos, neg Direction) Direction {
	switch {
	case v > 0:
		return pos
	case v < 0:
		return neg
	default:
		return None
	}
}
