package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// CountSolutions counts complete assignments up to limit, then stops.
// It works on its own copy of the board, so it never corrupts a
// caller's working grid. A non-positive limit means DefaultCountLimit.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		limit = DefaultCountLimit
	}
	grid := b.Values
	nodes := 0
	count := 0

	if !givensConsistent(&grid) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
