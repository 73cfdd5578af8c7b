package lattice_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// TestPointArithmetic covers the small vector helpers.
func TestPointArithmetic(t *testing.T) {
	p, q := lattice.Pt(2, -3), lattice.Pt(-1, 5)
	require.Equal(t, lattice.Pt(1, 2), p.Add(q))
	require.Equal(t, lattice.Pt(3, -8), p.Sub(q))
	require.Equal(t, lattice.Pt(-2, 3), p.Neg())
	require.Equal(t, lattice.Pt(-1, -3), p.Min(q))
	require.Equal(t, lattice.Pt(2, 5), p.Max(q))
	require.Equal(t, "(2, -3)", p.String())
}

// TestSizeContains checks the half-open bounds of Size.Contains.
func TestSizeContains(t *testing.T) {
	s := lattice.Sz(3, 2)
	require.Equal(t, 6, s.Area())
	require.Equal(t, "3x2", s.String())

	for _, p := range []lattice.Point{{0, 0}, {2, 1}, {1, 1}} {
		require.True(t, s.Contains(p), "Contains(%v)", p)
	}
	for _, p := range []lattice.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		require.False(t, s.Contains(p), "Contains(%v)", p)
	}
}

// TestRowMajor verifies ordering, emptiness and early termination.
func TestRowMajor(t *testing.T) {
	got := slices.Collect(lattice.RowMajor(lattice.Sz(2, 2)))
	require.Equal(t, []lattice.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)

	require.Empty(t, slices.Collect(lattice.RowMajor(lattice.Sz(0, 5))))

	n := 0
	for range lattice.RowMajor(lattice.Sz(10, 10)) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

// TestJSONTuples ensures Point and Size encode as numeric pairs and round-trip.
func TestJSONTuples(t *testing.T) {
	type doc struct {
		At   lattice.Point `json:"at"`
		Size lattice.Size  `json:"size"`
	}
	in := doc{At: lattice.Pt(-4, 7), Size: lattice.Sz(3, 9)}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"at":[-4,7],"size":[3,9]}`, string(b))

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)

	var p lattice.Point
	require.ErrorIs(t, json.Unmarshal([]byte(`[1,2,3]`), &p), lattice.ErrBadTuple)
	var s lattice.Size
	require.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &s), lattice.ErrBadTuple)
}

// TestYAMLTuples ensures the YAML encoding is a flow pair and round-trips.
func TestYAMLTuples(t *testing.T) {
	type doc struct {
		At   lattice.Point `yaml:"at"`
		Size lattice.Size  `yaml:"size"`
	}
	in := doc{At: lattice.Pt(5, -1), Size: lattice.Sz(2, 4)}
	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "at: [5, -1]\nsize: [2, 4]\n", string(b))

	var out doc
	require.NoError(t, yaml.Unmarshal(b, &out))
	require.Equal(t, in, out)

	var p lattice.Point
	require.ErrorIs(t, yaml.Unmarshal([]byte(`[1, 2, 3]`), &p), lattice.ErrBadTuple)
}
