// SPDX-License-Identifier: MIT

package direction

import "github.com/katalvlaran/lvlgrid/lattice"

// ring is the compass clockwise from north, as unit offsets.
var ring = [8]lattice.Point{
	{X: 0, Y: 1},   // N
	{X: 1, Y: 1},   // NE
	{X: 1, Y: 0},   // E
	{X: 1, Y: -1},  // SE
	{X: 0, Y: -1},  // S
	{X: -1, Y: -1}, // SW
	{X: -1, Y: 0},  // W
	{X: -1, Y: 1},  // NW
}

// rotate moves d's horizontal component by steps eighths of a turn,
// clockwise for positive steps. A Direction without horizontal component
// keeps only its vertical flag.
func (d Direction) rotate(steps int) Direction {
	x, y, z := d.Coord3D()
	c := lattice.Point{X: x, Y: y}
	for i, r := range ring {
		if r == c {
			c = ring[((i+steps)%8+8)%8]
			break
		}
	}

	return FromCoord3D(c.X, c.Y, z)
}

// Left45 turns one step counterclockwise: North → NorthWest.
func (d Direction) Left45() Direction { return d.rotate(-1) }

// Left90 turns two steps counterclockwise: North → West.
func (d Direction) Left90() Direction { return d.rotate(-2) }

// Left135 turns three steps counterclockwise: North → SouthWest.
func (d Direction) Left135() Direction { return d.rotate(-3) }

// Right45 turns one step clockwise: North → NorthEast.
func (d Direction) Right45() Direction { return d.rotate(1) }

// Right90 turns two steps clockwise: North → East.
func (d Direction) Right90() Direction { return d.rotate(2) }

// Right135 turns three steps clockwise: North → SouthEast.
func (d Direction) Right135() Direction { return d.rotate(3) }

// Opposite negates every axis, vertical included: UpNorth → DownSouth.
func (d Direction) Opposite() Direction {
	x, y, z := d.Coord3D()
	return FromCoord3D(-x, -y, -z)
}
