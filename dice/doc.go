// SPDX-License-Identifier: MIT

// Package dice parses tabletop dice notation ("3d8+2") and rolls it with a
// reproducible, serializable random source.
//
// What:
//
//   - Dice{Count, Sides, Modifier}. Parse accepts [count]d<sides>[+modifier],
//     case-insensitive, all numbers positive, count defaulting to 1.
//   - Roll draws one value uniformly from [Count, Count×Sides] and adds
//     Modifier. It is not a sum of Count independent dice: every total in
//     range is equally likely.
//   - Random wraps a PCG generator from math/rand/v2. The same seed yields the
//     same rolls, and its state marshals to text so a game in progress can be
//     saved and resumed mid-sequence.
//
// Concurrency:
//
//   - Random and *rand.Rand are not safe for concurrent use. Give each
//     goroutine its own Random.
//
// Errors:
//
//   - ErrUnparseable: the string is not dice notation.
//   - ErrParseCount, ErrMissingSides, ErrParseSides, ErrParseModifier: the
//     notation matched but a component could not be read (e.g. overflow).
package dice
