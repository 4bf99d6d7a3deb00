package generator

import (
	"crypto/sha256"
	"encoding/hex"

	"svw.info/sudokugen/internal/ports"
)

// Composer builds puzzles with a unique solution: it fills a solved grid
// from a seeded draw sequence, then carves cells while the provided
// Solver confirms uniqueness.
type Composer struct {
	Solver ports.Solver
}

// NewComposer wires a composer that uses the given solver for
// uniqueness checks.
func NewComposer(s ports.Solver) *Composer {
	return &Composer{Solver: s}
}

// fingerprint digests the 81 flattened solution digits, row-major.
// External callers may persist and compare these, so the algorithm
// (SHA-256 over ASCII digits, hex-encoded) is fixed.
func fingerprint(grid *[9][9]uint8) string {
	var flat [81]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			flat[r*9+c] = '0' + grid[r][c]
		}
	}
	sum := sha256.Sum256(flat[:])
	return hex.EncodeToString(sum[:])
}

// Note: the Generate method lives in compose.go.

var _ ports.Generator = (*Composer)(nil)
