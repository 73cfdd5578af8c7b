// SPDX-License-Identifier: MIT

package lattice

import (
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Size is a (width, height) extent in cells.
type Size struct {
	Width, Height uint32
}

// Sz is a convenience constructor for Size.
func Sz(w, h uint32) Size {
	return Size{Width: w, Height: h}
}

// Area returns Width*Height.
// Complexity: O(1).
func (s Size) Area() int {
	return int(s.Width) * int(s.Height)
}

// Contains reports whether 0 ≤ p.X < Width and 0 ≤ p.Y < Height.
// Complexity: O(1).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < int(s.Width) && p.Y >= 0 && p.Y < int(s.Height)
}

// String renders s as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// RowMajor yields every position inside s, row by row: (0,0), (1,0), ...
// (w-1,0), (0,1), ... The sequence is empty when either side is zero.
// Complexity: O(W×H) over the full sequence, O(1) memory.
func RowMajor(s Size) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < int(s.Height); y++ {
			for x := 0; x < int(s.Width); x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// MarshalJSON encodes s as [w, h].
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32{s.Width, s.Height})
}

// UnmarshalJSON decodes [w, h].
func (s *Size) UnmarshalJSON(b []byte) error {
	var pair []uint32
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("Size.UnmarshalJSON: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("Size.UnmarshalJSON(%s): %w", b, ErrBadTuple)
	}
	s.Width, s.Height = pair[0], pair[1]

	return nil
}

// MarshalYAML encodes s as a flow sequence [w, h].
func (s Size) MarshalYAML() (interface{}, error) {
	return flowPair(s.Width, s.Height), nil
}

// UnmarshalYAML decodes [w, h].
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var pair []uint32
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("Size.UnmarshalYAML: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("Size.UnmarshalYAML(line %d): %w", node.Line, ErrBadTuple)
	}
	s.Width, s.Height = pair[0], pair[1]

	return nil
}
