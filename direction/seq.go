// SPDX-License-Identifier: MIT

package direction

import (
	"iter"
	"slices"
)

var (
	cardinal        = []Direction{North, East, South, West}
	ordinal         = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	vertical        = []Direction{Up, Down}
	cardinalOrdinal = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Cardinal yields North, East, South, West.
func Cardinal() iter.Seq[Direction] { return slices.Values(cardinal) }

// Ordinal yields NorthEast, SouthEast, SouthWest, NorthWest.
func Ordinal() iter.Seq[Direction] { return slices.Values(ordinal) }

// Vertical yields Up, Down.
func Vertical() iter.Seq[Direction] { return slices.Values(vertical) }

// CardinalOrdinal yields the 8 compass headings clockwise from North.
func CardinalOrdinal() iter.Seq[Direction] { return slices.Values(cardinalOrdinal) }

// CardinalOrdinalVertical yields CardinalOrdinal followed by Up and Down.
func CardinalOrdinalVertical() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, s := range [][]Direction{cardinalOrdinal, vertical} {
			for _, d := range s {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// All3D yields all 26 neighbors of a cell in a 3-D lattice: the 8 headings,
// then Up and the 8 headings with Up, then Down and the 8 headings with Down.
func All3D() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, layer := range [...]Direction{None, Up, Down} {
			if layer != None && !yield(layer) {
				return
			}
			for _, d := range cardinalOrdinal {
				if !yield(layer | d) {
					return
				}
			}
		}
	}
}
