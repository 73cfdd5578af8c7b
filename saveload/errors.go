// SPDX-License-Identifier: MIT

package saveload

import "errors"

var (
	// ErrIO indicates a filesystem failure.
	ErrIO = errors.New("saveload: i/o failure")
	// ErrEncode indicates the value could not be serialized.
	ErrEncode = errors.New("saveload: encode failure")
	// ErrDecode indicates stored contents could not be deserialized.
	ErrDecode = errors.New("saveload: decode failure")
	// ErrUnknownFormat indicates a Format outside JSON, YAML and TOML.
	ErrUnknownFormat = errors.New("saveload: unknown format")
	// ErrEmptyName indicates a blank file name, which would address the
	// directory itself.
	ErrEmptyName = errors.New("saveload: empty file name")
)
