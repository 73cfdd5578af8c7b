// SPDX-License-Identifier: MIT

package direction

import "errors"

// ErrUnknownName indicates a token in a Direction's text form that names no flag.
var ErrUnknownName = errors.New("direction: unknown direction name")
