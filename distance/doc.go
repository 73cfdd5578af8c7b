// SPDX-License-Identifier: MIT

// Package distance measures separation between two lattice (or real) points
// under several metrics commonly used for grid movement costs.
//
//	Pythagoras          √(dx² + dy²)
//	PythagorasSquared   dx² + dy²
//	Manhattan           |dx| + |dy|
//	Chebyshev           max(|dx|, |dy|)
//	Diagonal            DiagonalWithCosts(1, 1)
//	DiagonalWithCosts   c·max(|dx|,|dy|) + (o − c)·min(|dx|,|dy|)
//
// where c is the cardinal step cost and o the ordinal (diagonal) step cost.
// All computations run in float64 regardless of the input number type.
package distance
