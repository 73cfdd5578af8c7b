// SPDX-License-Identifier: MIT

// Package lattice defines the coordinate vocabulary shared by grid and shapes.
//
// What:
//
//   - Point is a signed lattice point. It may be negative or lie outside
//     any particular grid; containment is always decided by the consumer.
//   - Size is an unsigned (width, height) extent, non-negative by type.
//   - RowMajor lazily yields every position of a Size, y-major then x.
//
// Encoding:
//
//   - Point serializes as the numeric pair [x, y] and Size as [w, h],
//     in both JSON and YAML, so persisted maps stay format-agnostic.
//
// Errors:
//
//   - ErrBadTuple: an encoded pair did not contain exactly two numbers.
package lattice
