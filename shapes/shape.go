// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Shape is the capability shared by Line, Circle and Rectangle.
type Shape interface {
	// Count is the shape's size measure: steps for Line, points for Circle and Rectangle.
	Count() int
	// Contains reports lattice membership.
	Contains(p lattice.Point) bool
	// Positions returns the covered points as a set.
	Positions() map[lattice.Point]struct{}
	// All lazily yields the covered points.
	All() iter.Seq[lattice.Point]
}

var (
	_ Shape = Line{}
	_ Shape = Circle{}
	_ Shape = Rectangle{}
)

// Kind tags the concrete type held by an Envelope.
type Kind uint8

const (
	// KindUnknown is the zero Kind; it never wraps a shape.
	KindUnknown Kind = iota
	// KindLine tags a Line.
	KindLine
	// KindCircle tags a Circle.
	KindCircle
	// KindRectangle tags a Rectangle.
	KindRectangle
)

var kindNames = map[Kind]string{
	KindLine:      "line",
	KindCircle:    "circle",
	KindRectangle: "rectangle",
}

// String returns the lowercase kind name, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("Kind.MarshalText(%d): %w", uint8(k), ErrUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("Kind.UnmarshalText(%q): %w", b, ErrUnknownKind)
}

// Envelope is a closed tagged variant over the three shapes. Exactly the
// payload named by Kind is set. It exists so heterogeneous shape lists can be
// persisted structurally: {"kind": "circle", "circle": {...}}.
type Envelope struct {
	Kind      Kind       `json:"kind" yaml:"kind"`
	Line      *Line      `json:"line,omitempty" yaml:"line,omitempty"`
	Circle    *Circle    `json:"circle,omitempty" yaml:"circle,omitempty"`
	Rectangle *Rectangle `json:"rectangle,omitempty" yaml:"rectangle,omitempty"`
}

// Wrap puts s into an Envelope. Only the three concrete shapes (or pointers
// to them) are accepted; anything else yields ErrUnknownKind.
func Wrap(s Shape) (Envelope, error) {
	switch v := s.(type) {
	case Line:
		return Envelope{Kind: KindLine, Line: &v}, nil
	case *Line:
		if v != nil {
			return Wrap(*v)
		}
	case Circle:
		return Envelope{Kind: KindCircle, Circle: &v}, nil
	case *Circle:
		if v != nil {
			return Wrap(*v)
		}
	case Rectangle:
		return Envelope{Kind: KindRectangle, Rectangle: &v}, nil
	case *Rectangle:
		if v != nil {
			return Wrap(*v)
		}
	}
	return Envelope{}, fmt.Errorf("Wrap(%T): %w", s, ErrUnknownKind)
}

// Shape returns the payload selected by Kind.
func (e Envelope) Shape() (Shape, error) {
	switch e.Kind {
	case KindLine:
		if e.Line != nil {
			return *e.Line, nil
		}
	case KindCircle:
		if e.Circle != nil {
			return *e.Circle, nil
		}
	case KindRectangle:
		if e.Rectangle != nil {
			return *e.Rectangle, nil
		}
	}
	return nil, fmt.Errorf("Envelope.Shape(%v): %w", e.Kind, ErrUnknownKind)
}

// Union returns the set of points covered by any of the given shapes.
// Complexity: O(Σ |shape|).
func Union(shapes ...Shape) map[lattice.Point]struct{} {
	set := make(map[lattice.Point]struct{})
	for _, s := range shapes {
		for p := range s.All() {
			set[p] = struct{}{}
		}
	}

	return set
}
