package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Solve completes the board by exhaustive backtracking over a private
// copy. The input board is never mutated. Failure to complete is
// ErrUnsolvable; a canceled context surfaces as ctx.Err(), never as
// ErrUnsolvable.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values // array copy
	nodes := 0

	if !givensConsistent(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
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
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if !solved {
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, st, nil
}
