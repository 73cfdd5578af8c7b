// SPDX-License-Identifier: MIT

// Package saveload persists any value to disk as JSON, YAML or TOML and reads
// it back.
//
// A Location fixes where files live and how they are encoded:
//
//	loc := saveload.NewLocation("saves", saveload.YAML, true)
//	err := saveload.Save(loc, "slot1", state)         // saves/slot1.yaml
//	state, err := saveload.Load[GameState](loc, "slot1")
//
// The encoding is structural: lattice points and sizes become [x, y] and
// [w, h] pairs, grids become {size, data}, shapes travel inside
// shapes.Envelope. Anything encoding/json and gopkg.in/yaml.v3 can handle works.
//
// TOML (github.com/BurntSushi/toml) suits settings documents: the top-level
// value must be a struct or map, and types with text encodings such as
// dice.Dice and direction.Direction are written as strings. Grids have no
// TOML form; keep them in JSON or YAML files.
//
// Errors:
//
//   - ErrIO: the file could not be read, written or its directory created.
//   - ErrEncode: the value could not be serialized.
//   - ErrDecode: the file contents did not decode into the target type.
//   - ErrUnknownFormat: the Location's Format is not JSON, YAML or TOML.
//   - ErrEmptyName: the file name is blank.
//
// Save and Load log at debug level through lvlgrid.Logger.
package saveload
