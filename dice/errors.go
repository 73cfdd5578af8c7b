// SPDX-License-Identifier: MIT

package dice

import "errors"

var (
	// ErrUnparseable indicates a string that is not dice notation.
	ErrUnparseable = errors.New("dice: invalid dice string")
	// ErrParseCount indicates the dice count could not be read.
	ErrParseCount = errors.New("dice: cannot parse dice count")
	// ErrMissingSides indicates notation without a sides component.
	ErrMissingSides = errors.New("dice: missing dice sides")
	// ErrParseSides indicates the sides component could not be read.
	ErrParseSides = errors.New("dice: cannot parse dice sides")
	// ErrParseModifier indicates the modifier could not be read.
	ErrParseModifier = errors.New("dice: cannot parse dice modifier")
	// ErrRandomState indicates a Random state blob that does not decode.
	ErrRandomState = errors.New("dice: invalid random state")
)
