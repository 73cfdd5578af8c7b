// SPDX-License-Identifier: MIT

// Package lvlgrid is a discrete 2-D lattice toolkit: a generic flat-array
// grid with row/column addressing, and rasterized shapes that enumerate the
// exact integer points they cover.
//
// What is inside:
//
//	lattice/    Point and Size, the shared coordinate vocabulary
//	grid/       Grid[T], a row-major container with checked and fail-fast accessors
//	shapes/     Octant, Line (Bresenham), Circle (midpoint), Rectangle (AABB)
//	direction/  six-flag Direction bitmask with 45°/90°/135° rotations
//	distance/   Pythagoras, Manhattan, Chebyshev and diagonal metrics
//	dice/       "NdS+M" dice notation and a seeded roller
//	saveload/   JSON / YAML persistence keyed by directory, extension and pretty policy
//	folders/    per-user base/config/data directories
//
// Every algorithm is a pure, total function of its inputs: no goroutines,
// no locks, no I/O outside saveload and folders.
//
// Quick ASCII example, a Line from (0,0) to (3,4):
//
//	y4 . . . #
//	y3 . . # .
//	y2 . . # .
//	y1 . # . .
//	y0 # . . .
//
// Logging is silent by default; see SetLogger.
package lvlgrid
