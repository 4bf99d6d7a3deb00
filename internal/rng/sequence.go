// Package rng provides the deterministic draw sequence behind puzzle
// generation. A Sequence is a pure function of a single 32-bit state:
// the same seed and the same call order always replay the same stream,
// which is what makes Generate reproducible per seed. Each generation
// call must construct its own Sequence; instances are not safe to share.
package rng

import (
	"strconv"
	"time"
)

// LCG constants from Numerical Recipes; full period over 32-bit state.
const (
	lcgMul = 1664525
	lcgInc = 1013904223
)

// Sequence is a seeded linear congruential generator.
type Sequence struct {
	state uint32
}

// New returns a Sequence starting from the given integer state.
func New(seed int32) *Sequence {
	return &Sequence{state: uint32(seed)}
}

// NewFromString hashes a seed token and returns its Sequence.
func NewFromString(seed string) *Sequence {
	return New(HashSeed(seed))
}

// HashSeed folds a seed token into a 32-bit signed integer with a
// multiply-accumulate rolling hash. The exact constant is not a
// compatibility surface; only per-seed reproducibility is.
func HashSeed(seed string) int32 {
	var h int32
	for _, r := range seed {
		h = h*31 + int32(r)
	}
	return h
}

// TimeSeed returns a fresh time-derived seed token for callers that did
// not supply one.
func TimeSeed() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}

// Next advances the state and returns a draw in [0, 1).
func (s *Sequence) Next() float64 {
	s.state = s.state*lcgMul + lcgInc
	return float64(s.state) / (1 << 32)
}

// Intn returns a draw-based integer in [0, n). Panics if n <= 0.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn with non-positive n")
	}
	return int(s.Next() * float64(n))
}

// Shuffle permutes n elements with Fisher-Yates, consuming n-1 draws.
func (s *Sequence) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a shuffled permutation of [0, n).
func (s *Sequence) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
