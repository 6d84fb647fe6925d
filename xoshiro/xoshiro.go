// Package xoshiro implements the xoshiro256** generator with splitmix64
// seeding. A Source satisfies math/rand.Source64 and num.RandSource.
package xoshiro

import (
	"math/bits"
)

const golden = 0x9E3779B97F4A7C15

// Source is a xoshiro256** generator. The zero value is not usable; the
// all-zero state only ever produces zeros.
type Source struct {
	s [4]uint64
}

// New returns a Source seeded from a splitmix64 stream started at seed.
func New(seed uint64) *Source {
	var src Source
	src.seed(seed)
	return &src
}

// NewChained returns a Source whose state words are produced by feeding each
// splitmix64 output back in as the next input, starting from seed. The
// streams differ from New for the same seed.
func NewChained(seed uint64) *Source {
	var src Source
	x := seed
	for i := range src.s {
		x = mix(x + golden)
		src.s[i] = x
	}
	return &src
}

// NewFromState returns a Source with exactly the given state.
func NewFromState(state [4]uint64) *Source {
	return &Source{s: state}
}

func (src *Source) seed(seed uint64) {
	x := seed
	for i := range src.s {
		x += golden
		src.s[i] = mix(x)
	}
}

// mix is the splitmix64 output function.
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// State returns a copy of the generator state.
func (src *Source) State() [4]uint64 { return src.s }

func (src *Source) Uint64() uint64 {
	s := &src.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Int63 implements math/rand.Source.
func (src *Source) Int63() int64 {
	return int64(src.Uint64() >> 1)
}

func (src *Source) Int64() int64 {
	return int64(src.Uint64())
}

// Seed implements math/rand.Source, reseeding as New does.
func (src *Source) Seed(seed int64) {
	src.seed(uint64(seed))
}
