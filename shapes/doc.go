// SPDX-License-Identifier: MIT

// Package shapes rasterizes lines, circles and rectangles onto the integer
// lattice. Each shape enumerates the exact set of lattice.Points it covers.
//
// What:
//
//   - Octant maps any direction vector onto the canonical first octant
//     (dx ≥ dy ≥ 0) with one of eight axis swaps/negations, so Line is
//     written once and mirrored out.
//   - Line is an integer Bresenham walk from Start to End, both included.
//     Exact ties resolve onto the same lattice point whichever endpoint is
//     Start, so a line and its reverse cover the same set.
//   - Circle is the midpoint circle algorithm: Circumference returns the
//     boundary, Positions the filled disc (column spans drawn with Line).
//   - Rectangle is a closed axis-aligned box whose corners are sorted
//     componentwise on construction.
//   - Shape is the shared capability (Count, Contains, Positions, All);
//     Envelope is a closed tagged variant used to persist mixed shape lists.
//
// Counting:
//
//   - Line.Count is the number of steps, max(|dx|,|dy|); Line.PointCount is
//     Count+1, the number of emitted points. Both exist on purpose.
//   - Rectangle.All walks offsets 0..=Width × 0..=Height, so a rectangle whose
//     Width() is w yields w+1 columns. AllHalfOpen walks [Min, Max) instead.
//
// Complexity:
//
//   - Line: O(max(|dx|,|dy|)).
//   - Circle: O(r) boundary, O(r²) filled.
//   - Rectangle: O((w+1)(h+1)) iteration, O(1) Intersects/Contains.
//
// Errors:
//
//   - ErrUnknownKind: an Envelope carries a kind tag outside {line, circle, rectangle}
//     or no payload for its kind.
package shapes
