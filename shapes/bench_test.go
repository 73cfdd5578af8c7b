package shapes_test

import (
	"testing"

	"github.com/katalvlaran/lvlgrid/lattice"
	"github.com/katalvlaran/lvlgrid/shapes"
)

// BenchmarkLineAll walks a 1000-step shallow line.
// Complexity: O(max(|dx|,|dy|)).
func BenchmarkLineAll(b *testing.B) {
	l := shapes.NewLine(lattice.Pt(0, 0), lattice.Pt(1000, 377))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range l.All() {
		}
	}
}

// BenchmarkCirclePositions fills a radius-64 disc.
// Complexity: O(r²).
func BenchmarkCirclePositions(b *testing.B) {
	c := shapes.NewCircle(lattice.Pt(0, 0), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Positions()
	}
}

// BenchmarkRectangleAll walks a 256×256 box.
func BenchmarkRectangleAll(b *testing.B) {
	r := shapes.NewRectangleWithSize(lattice.Pt(0, 0), lattice.Sz(255, 255))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range r.All() {
		}
	}
}
