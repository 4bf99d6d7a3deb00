package solver

import "errors"

// ErrUnsolvable reports that a board admits no complete valid
// assignment. It is the engine's only failure kind: recoverable, and
// always surfaced to the immediate caller.
var ErrUnsolvable = errors.New("board is unsolvable")

// DefaultCountLimit is the solution cap used for uniqueness checks.
const DefaultCountLimit = 2

// BacktrackingSolver is a straightforward recursive solver. Solve tries
// candidates in ascending order at the first empty cell in row-major
// order, so repeated solves of the same board are identical.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers shared by Solve/CountSolutions (in other files) ---

// canPlace is the sole correctness gate of the search: placing v at
// (r,c) must leave the row, column and 3x3 box free of duplicates.
func canPlace(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// givensConsistent rejects boards whose fixed cells already break a
// constraint (or hold an out-of-range value). Without this check the
// search could fill the remaining cells around a duplicated given and
// report a bogus solution.
func givensConsistent(b *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return false
			}
			b[r][c] = 0
			ok := canPlace(b, r, c, v)
			b[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}
