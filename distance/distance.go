// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/lattice"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

type kind uint8

const (
	kindPythagoras kind = iota
	kindPythagorasSquared
	kindManhattan
	kindChebyshev
	kindDiagonal
)

// Metric selects a distance formula. The zero Metric is Pythagoras.
type Metric struct {
	kind     kind
	cardinal float64
	ordinal  float64
}

// Predefined metrics. Diagonal weighs cardinal and ordinal steps equally,
// which makes it equal to Chebyshev.
var (
	Pythagoras        = Metric{kind: kindPythagoras}
	PythagorasSquared = Metric{kind: kindPythagorasSquared}
	Manhattan         = Metric{kind: kindManhattan}
	Chebyshev         = Metric{kind: kindChebyshev}
	Diagonal          = DiagonalWithCosts(1, 1)
)

// DiagonalWithCosts returns the diagonal metric with the given cost of a
// cardinal step and of an ordinal step.
func DiagonalWithCosts(cardinal, ordinal float64) Metric {
	return Metric{kind: kindDiagonal, cardinal: cardinal, ordinal: ordinal}
}

// Calculate returns the distance between a and b under m.
// Complexity: O(1).
func Calculate[N Number](m Metric, a, b [2]N) float64 {
	dx := math.Abs(float64(a[0]) - float64(b[0]))
	dy := math.Abs(float64(a[1]) - float64(b[1]))

	switch m.kind {
	case kindPythagorasSquared:
		return dx*dx + dy*dy
	case kindManhattan:
		return dx + dy
	case kindChebyshev:
		return max(dx, dy)
	case kindDiagonal:
		return m.cardinal*max(dx, dy) + (m.ordinal-m.cardinal)*min(dx, dy)
	default:
		return math.Hypot(dx, dy)
	}
}

// Between is Calculate over two lattice points.
func Between(m Metric, p, q lattice.Point) float64 {
	return Calculate(m, [2]int{p.X, p.Y}, [2]int{q.X, q.Y})
}

// String names the metric; DiagonalWithCosts includes its costs.
func (m Metric) String() string {
	switch m.kind {
	case kindPythagorasSquared:
		return "PythagorasSquared"
	case kindManhattan:
		return "Manhattan"
	case kindChebyshev:
		return "Chebyshev"
	case kindDiagonal:
		if m.cardinal == 1 && m.ordinal == 1 {
			return "Diagonal"
		}
		return fmt.Sprintf("DiagonalWithCosts(%g, %g)", m.cardinal, m.ordinal)
	default:
		return "Pythagoras"
	}
}
