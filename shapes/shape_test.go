package shapes_test

import (
	"encoding/json"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlgrid/lattice"
	"github.com/katalvlaran/lvlgrid/shapes"
)

func mixedShapes() []shapes.Shape {
	return []shapes.Shape{
		shapes.NewLine(lattice.Pt(0, 0), lattice.Pt(3, 4)),
		shapes.NewCircle(lattice.Pt(-2, 1), 2),
		shapes.NewRectangle(lattice.Pt(4, 4), lattice.Pt(1, 2)),
	}
}

func wrapAll(t *testing.T, in []shapes.Shape) []shapes.Envelope {
	t.Helper()
	out := make([]shapes.Envelope, 0, len(in))
	for _, s := range in {
		env, err := shapes.Wrap(s)
		require.NoError(t, err)
		out = append(out, env)
	}
	return out
}

func unwrapAll(t *testing.T, in []shapes.Envelope) []shapes.Shape {
	t.Helper()
	out := make([]shapes.Shape, 0, len(in))
	for _, env := range in {
		s, err := env.Shape()
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

// TestEnvelopeJSON persists a heterogeneous list and restores it.
func TestEnvelopeJSON(t *testing.T) {
	in := mixedShapes()
	raw, err := json.Marshal(wrapAll(t, in))
	require.NoError(t, err)
	require.Contains(t, string(raw), `{"kind":"circle","circle":{"center":[-2,1],"radius":2}}`)

	var back []shapes.Envelope
	require.NoError(t, json.Unmarshal(raw, &back))
	if diff := cmp.Diff(in, unwrapAll(t, back)); diff != "" {
		t.Fatalf("JSON round trip (-want +got):\n%s", diff)
	}
}

// TestEnvelopeYAML does the same through YAML.
func TestEnvelopeYAML(t *testing.T) {
	in := mixedShapes()
	raw, err := yaml.Marshal(wrapAll(t, in))
	require.NoError(t, err)
	require.Contains(t, string(raw), "kind: rectangle")

	var back []shapes.Envelope
	require.NoError(t, yaml.Unmarshal(raw, &back))
	if diff := cmp.Diff(in, unwrapAll(t, back)); diff != "" {
		t.Fatalf("YAML round trip (-want +got):\n%s", diff)
	}
}

// TestEnvelopeUnknownKind rejects bad tags and missing payloads.
func TestEnvelopeUnknownKind(t *testing.T) {
	var env shapes.Envelope
	err := json.Unmarshal([]byte(`{"kind":"hexagon"}`), &env)
	require.ErrorIs(t, err, shapes.ErrUnknownKind)

	_, err = shapes.Envelope{Kind: shapes.KindCircle}.Shape()
	require.ErrorIs(t, err, shapes.ErrUnknownKind)

	_, err = shapes.Envelope{}.Shape()
	require.ErrorIs(t, err, shapes.ErrUnknownKind)

	_, err = json.Marshal(shapes.Envelope{})
	require.ErrorIs(t, err, shapes.ErrUnknownKind)
}

// dot is a Shape that Wrap does not know about.
type dot lattice.Point

func (d dot) Count() int                    { return 1 }
func (d dot) Contains(p lattice.Point) bool { return p == lattice.Point(d) }

func (d dot) Positions() map[lattice.Point]struct{} {
	return map[lattice.Point]struct{}{lattice.Point(d): {}}
}

func (d dot) All() iter.Seq[lattice.Point] {
	return func(yield func(lattice.Point) bool) { yield(lattice.Point(d)) }
}

// TestWrap accepts values and pointers of the three shapes only.
func TestWrap(t *testing.T) {
	c := shapes.NewCircle(lattice.Pt(0, 0), 1)
	env, err := shapes.Wrap(&c)
	require.NoError(t, err)
	require.Equal(t, shapes.KindCircle, env.Kind)
	require.Equal(t, c, *env.Circle)
	require.Nil(t, env.Line)
	require.Nil(t, env.Rectangle)

	_, err = shapes.Wrap((*shapes.Line)(nil))
	require.ErrorIs(t, err, shapes.ErrUnknownKind)

	_, err = shapes.Wrap(dot{X: 1, Y: 1})
	require.ErrorIs(t, err, shapes.ErrUnknownKind)
}

// TestKindText covers the name table in both directions.
func TestKindText(t *testing.T) {
	for _, k := range []shapes.Kind{shapes.KindLine, shapes.KindCircle, shapes.KindRectangle} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back shapes.Kind
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, k, back)
	}
	require.Equal(t, "unknown", shapes.Kind(42).String())
}

// TestUnion merges overlapping shapes into one set.
func TestUnion(t *testing.T) {
	a := shapes.NewRectangle(lattice.Pt(0, 0), lattice.Pt(1, 1))
	b := shapes.NewLine(lattice.Pt(1, 1), lattice.Pt(3, 1))
	u := shapes.Union(a, b)

	require.Len(t, u, 6) // 4 box points + (2,1), (3,1)
	require.Contains(t, u, lattice.Pt(3, 1))
	require.Empty(t, shapes.Union())
}

// TestShapeCapability runs the shared contract over every concrete shape.
func TestShapeCapability(t *testing.T) {
	for _, s := range mixedShapes() {
		set := s.Positions()
		n := 0
		for p := range s.All() {
			n++
			require.True(t, s.Contains(p), "%T should contain %v", s, p)
			require.Contains(t, set, p)
		}
		require.Len(t, set, n, "%T yields each point once", s)
	}
}
