// SPDX-License-Identifier: MIT

package direction

import "strings"

// Direction is a bitmask of compass and vertical flags.
type Direction uint8

// Single flags.
const (
	North Direction = 1 << iota
	East
	South
	West
	Up
	Down
)

// None is the empty set.
const None Direction = 0

// Compass combinations.
const (
	NorthEast = North | East
	SouthEast = South | East
	SouthWest = South | West
	NorthWest = North | West
)

// Vertical combinations.
const (
	UpNorth     = Up | North
	UpNorthEast = Up | NorthEast
	UpEast      = Up | East
	UpSouthEast = Up | SouthEast
	UpSouth     = Up | South
	UpSouthWest = Up | SouthWest
	UpWest      = Up | West
	UpNorthWest = Up | NorthWest

	DownNorth     = Down | North
	DownNorthEast = Down | NorthEast
	DownEast      = Down | East
	DownSouthEast = Down | SouthEast
	DownSouth     = Down | South
	DownSouthWest = Down | SouthWest
	DownWest      = Down | West
	DownNorthWest = Down | NorthWest
)

// Union returns d with every flag of o set.
func (d Direction) Union(o Direction) Direction { return d | o }

// Subtract returns d with every flag of o cleared.
func (d Direction) Subtract(o Direction) Direction { return d &^ o }

// Intersect returns the flags present in both.
func (d Direction) Intersect(o Direction) Direction { return d & o }

// Toggle flips every flag of o in d.
func (d Direction) Toggle(o Direction) Direction { return d ^ o }

// Has reports whether every flag of o is set in d. Has(None) is true.
func (d Direction) Has(o Direction) bool { return d&o == o }

func (d Direction) HasNorth() bool { return d&North != 0 }
func (d Direction) HasEast() bool  { return d&East != 0 }
func (d Direction) HasSouth() bool { return d&South != 0 }
func (d Direction) HasWest() bool  { return d&West != 0 }
func (d Direction) HasUp() bool    { return d&Up != 0 }
func (d Direction) HasDown() bool  { return d&Down != 0 }

// IsCardinal reports whether exactly one horizontal axis is engaged.
// Vertical flags are ignored, so UpNorth is cardinal.
func (d Direction) IsCardinal() bool {
	ns := d.HasNorth() || d.HasSouth()
	ew := d.HasEast() || d.HasWest()
	return ns != ew
}

// IsOrdinal reports whether both horizontal axes are engaged.
// Vertical flags are ignored, so UpNorthEast is ordinal.
func (d Direction) IsOrdinal() bool {
	return (d.HasNorth() || d.HasSouth()) && (d.HasEast() || d.HasWest())
}

var flagNames = [...]struct {
	flag Direction
	name string
}{
	{North, "NORTH"},
	{East, "EAST"},
	{South, "SOUTH"},
	{West, "WEST"},
	{Up, "UP"},
	{Down, "DOWN"},
}

const noneName = "NO-DIRECTION"

// String lists the set flags in N, E, S, W, UP, DOWN order, comma separated,
// or "NO-DIRECTION" for None.
func (d Direction) String() string {
	var parts []string
	for _, f := range flagNames {
		if d&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return noneName
	}
	return strings.Join(parts, ", ")
}
