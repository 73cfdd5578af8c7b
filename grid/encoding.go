// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// wire is the structural form shared by the JSON and YAML encodings:
// {"size": [w, h], "data": [...]}.
type wire[T any] struct {
	Size lattice.Size `json:"size" yaml:"size"`
	Data []T          `json:"data" yaml:"data"`
}

func (g *Grid[T]) fromWire(w wire[T], op string) error {
	if w.Data == nil {
		w.Data = []T{}
	}
	if len(w.Data) != w.Size.Area() {
		return fmt.Errorf("Grid.%s(%v, len=%d): %w", op, w.Size, len(w.Data), ErrDataLength)
	}
	g.size, g.data = w.Size, w.Data

	return nil
}

// MarshalJSON encodes the grid as {"size":[w,h],"data":[...]}. The value
// receiver lets a Grid held by value inside another struct encode too.
func (g Grid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire[T]{Size: g.size, Data: g.data})
}

// UnmarshalJSON decodes {"size":[w,h],"data":[...]} and rejects a data
// length that does not match the size.
func (g *Grid[T]) UnmarshalJSON(b []byte) error {
	var w wire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("Grid.UnmarshalJSON: %w", err)
	}

	return g.fromWire(w, "UnmarshalJSON")
}

// MarshalYAML encodes the grid as a mapping with size and data keys.
func (g Grid[T]) MarshalYAML() (interface{}, error) {
	return wire[T]{Size: g.size, Data: g.data}, nil
}

// UnmarshalYAML decodes the mapping written by MarshalYAML.
func (g *Grid[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire[T]
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("Grid.UnmarshalYAML: %w", err)
	}

	return g.fromWire(w, "UnmarshalYAML")
}
