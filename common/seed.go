package common

import "time"

// Source is the random source the simulation draws from.
// Tests inject a SeededRNG with a fixed seed; production seeds it from entropy.
type Source interface {
	// Random returns a float64 in [0, 1).
	Random() float64
}

// Seedable is a Source that can be rewound to a known seed.
type Seedable interface {
	Source
	SetSeed(seed uint32)
	Seed() uint32
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences for reproducible gameplay.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ Seedable = (*SeededRNG)(nil)

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// EntropySeed returns a seed derived from the wall clock.
func EntropySeed() uint32 {
	n := uint64(time.Now().UnixNano())
	seed := uint32(n) ^ uint32(n>>32)
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return seed
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last set to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns a random integer in [min, max).
func RandomInt(src Source, min, max int) int {
	return int(src.Random()*float64(max-min)) + min
}

// RandomFloat returns a random float in [min, max).
func RandomFloat(src Source, min, max float64) float64 {
	return src.Random()*(max-min) + min
}

// WaveSeed derives a deterministic seed for a specific wave of a session.
func WaveSeed(sessionSeed uint32, wave int) uint32 {
	seed := sessionSeed ^ (uint32(wave) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
