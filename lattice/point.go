// SPDX-License-Identifier: MIT

package lattice

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point is a 2-D lattice point (a "position").
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Min returns the componentwise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MarshalJSON encodes p as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes [x, y].
func (p *Point) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("Point.UnmarshalJSON: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("Point.UnmarshalJSON(%s): %w", b, ErrBadTuple)
	}
	p.X, p.Y = pair[0], pair[1]

	return nil
}

// MarshalYAML encodes p as a flow sequence [x, y].
func (p Point) MarshalYAML() (interface{}, error) {
	return flowPair(p.X, p.Y), nil
}

// UnmarshalYAML decodes [x, y].
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("Point.UnmarshalYAML: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("Point.UnmarshalYAML(line %d): %w", node.Line, ErrBadTuple)
	}
	p.X, p.Y = pair[0], pair[1]

	return nil
}

// flowPair builds a YAML flow-style sequence node holding two integers,
// so points stay on one line in pretty output.
func flowPair[A, B int | uint32](a A, b B) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(a)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(b)},
		},
	}
}
