// SPDX-License-Identifier: MIT

package lattice

import "errors"

// ErrBadTuple indicates an encoded Point or Size was not a two-element numeric array.
var ErrBadTuple = errors.New("lattice: expected a two-element numeric array")
