// SPDX-License-Identifier: MIT

package dice

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"sync"
)

// notation is compiled on first use.
var notation = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)^([1-9]\d*)?d([1-9]\d*)\+?([1-9]\d*)?$`)
})

// Dice describes a roll: Count dice of Sides faces plus Modifier.
type Dice struct {
	Count    int
	Sides    int
	Modifier int
}

// New returns Dice{count, sides, modifier} without validation.
func New(count, sides, modifier int) Dice {
	return Dice{Count: count, Sides: sides, Modifier: modifier}
}

// Parse reads dice notation such as "d6", "2d10", "3D8+2".
//
//	d6      → {1, 6, 0}
//	3d8+2   → {3, 8, 2}
//	0d6, 2d → ErrUnparseable
func Parse(s string) (Dice, error) {
	m := notation().FindStringSubmatch(s)
	if m == nil {
		return Dice{}, fmt.Errorf("Parse(%q): %w", s, ErrUnparseable)
	}

	count, err := component(m[1], "1")
	if err != nil {
		return Dice{}, fmt.Errorf("Parse(%q): %w", s, ErrParseCount)
	}
	if m[2] == "" {
		return Dice{}, fmt.Errorf("Parse(%q): %w", s, ErrMissingSides)
	}
	sides, err := component(m[2], "")
	if err != nil {
		return Dice{}, fmt.Errorf("Parse(%q): %w", s, ErrParseSides)
	}
	mod, err := component(m[3], "0")
	if err != nil {
		return Dice{}, fmt.Errorf("Parse(%q): %w", s, ErrParseModifier)
	}

	return Dice{Count: count, Sides: sides, Modifier: mod}, nil
}

// component reads one notation field as a 32-bit value, so Count×Sides
// and the modifier always fit in int.
func component(s, def string) (int, error) {
	if s == "" {
		s = def
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return int(n), err
}

// Min returns the smallest possible roll, Count + Modifier.
func (d Dice) Min() int { return d.Count + d.Modifier }

// Max returns the largest possible roll, Count×Sides + Modifier.
func (d Dice) Max() int { return d.Count*d.Sides + d.Modifier }

// Roll draws uniformly from [Min, Max] using r.
// It panics if Max < Min, which Parse never produces.
// Complexity: O(1).
func (d Dice) Roll(r *rand.Rand) int {
	lo, hi := d.Count, d.Count*d.Sides
	return lo + r.IntN(hi-lo+1) + d.Modifier
}

// String renders "2d6", or "2d6+3" when Modifier is non-zero.
// A negative Modifier renders as "2d6-3", which Parse does not accept.
func (d Dice) String() string {
	switch {
	case d.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Modifier)
	case d.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", d.Count, d.Sides, d.Modifier)
	default:
		return fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
}

// MarshalText encodes d in notation form.
func (d Dice) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText is Parse.
func (d *Dice) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}
