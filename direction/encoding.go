// SPDX-License-Identifier: MIT

package direction

import (
	"fmt"
	"strings"
)

// MarshalText encodes d in its String form.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a comma-separated flag list such as "NORTH, EAST",
// or "NO-DIRECTION". Names are case-insensitive and surrounding spaces are ignored.
func (d *Direction) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.EqualFold(s, noneName) {
		*d = None
		return nil
	}

	var out Direction
	for _, tok := range strings.Split(s, ",") {
		f, ok := lookup(strings.TrimSpace(tok))
		if !ok {
			return fmt.Errorf("Direction.UnmarshalText(%q): %w", b, ErrUnknownName)
		}
		out |= f
	}
	*d = out

	return nil
}

// Parse is UnmarshalText as a function.
func Parse(s string) (Direction, error) {
	var d Direction
	err := d.UnmarshalText([]byte(s))
	return d, err
}

func lookup(name string) (Direction, bool) {
	for _, f := range flagNames {
		if strings.EqualFold(f.name, name) {
			return f.flag, true
		}
	}
	return None, false
}
