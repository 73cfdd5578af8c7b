// SPDX-License-Identifier: MIT

// Package direction is a 6-flag compass bitmask covering the four horizontal
// headings plus UP and DOWN, with every meaningful combination named.
//
// What:
//
//   - Direction is a uint8; North, East, South, West, Up, Down occupy bits 0..5.
//     The 26 named values are the 8 compass headings, Up and Down alone, and
//     each heading combined with Up or Down.
//   - Set algebra is spelled out: Union, Subtract, Intersect, Toggle, Has.
//   - Coord/Coord3D map a Direction to unit offsets (East=+x, North=+y, Up=+z);
//     FromCoord/FromCoord3D go back by sign. Contradictory flags such as
//     North|South resolve North-first and East-first, as Coord does.
//   - Rotations step around the 8-way compass ring through the coordinate
//     form; vertical flags ride along unchanged. Opposite negates all three axes.
//   - Text form is the comma list "NORTH, EAST" or "NO-DIRECTION"; JSON and
//     YAML use it through MarshalText/UnmarshalText.
//
// Errors:
//
//   - ErrUnknownName: a text token is not one of the six flag names.
package direction
