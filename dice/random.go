// SPDX-License-Identifier: MIT

package dice

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
)

// streamMix is xored into the seed to form the PCG increment word, so a
// single uint64 seed selects both state and stream.
const streamMix uint64 = 0x9e3779b97f4a7c15

// Random is a seeded PCG generator. Its zero value is not usable; build one
// with NewRandom or NewRandomFromEntropy.
type Random struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewRandom returns a generator whose output is fully determined by seed.
func NewRandom(seed uint64) *Random {
	src := rand.NewPCG(seed, seed^streamMix)
	return &Random{src: src, rng: rand.New(src)}
}

// NewRandomFromEntropy seeds a generator from the runtime's random source.
func NewRandomFromEntropy() *Random {
	return NewRandom(rand.Uint64())
}

// Roll rolls d.
func (r *Random) Roll(d Dice) int {
	return d.Roll(r.rng)
}

// Rand exposes the underlying *rand.Rand for other draws. Draws through it
// advance the same state Roll uses.
func (r *Random) Rand() *rand.Rand {
	return r.rng
}

// MarshalBinary snapshots the generator state.
func (r *Random) MarshalBinary() ([]byte, error) {
	return r.src.MarshalBinary()
}

// UnmarshalBinary restores a snapshot taken by MarshalBinary. It works on a
// zero Random, which makes *Random decodable in place.
func (r *Random) UnmarshalBinary(b []byte) error {
	src := new(rand.PCG)
	if err := src.UnmarshalBinary(b); err != nil {
		return fmt.Errorf("Random.UnmarshalBinary: %w: %w", ErrRandomState, err)
	}
	r.src, r.rng = src, rand.New(src)

	return nil
}

// MarshalText is MarshalBinary in standard base64, so JSON and YAML carry
// the state as a string.
func (r *Random) MarshalText() ([]byte, error) {
	b, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)

	return out, nil
}

// UnmarshalText decodes the MarshalText form.
func (r *Random) UnmarshalText(b []byte) error {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
	n, err := base64.StdEncoding.Decode(raw, b)
	if err != nil {
		return fmt.Errorf("Random.UnmarshalText: %w: %w", ErrRandomState, err)
	}

	return r.UnmarshalBinary(raw[:n])
}
