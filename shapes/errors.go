// SPDX-License-Identifier: MIT

package shapes

import "errors"

// ErrUnknownKind indicates an Envelope kind tag that no shape implements,
// or a kind whose payload is missing.
var ErrUnknownKind = errors.New("shapes: unknown shape kind")
