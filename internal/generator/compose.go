package generator

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/rng"
)

// Generate creates a puzzle with a unique solution, reproducible per
// seed. An empty seed is replaced with a time-derived token. Grid fill
// and carving consume a single draw sequence, so one seed replays the
// whole pipeline.
func (g *Composer) Generate(ctx context.Context, seed string, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if seed == "" {
		seed = rng.TimeSeed()
	}
	seq := rng.NewFromString(seed)

	// 1) full solved grid, candidate order shuffled per cell
	var full [9][9]uint8
	if !fillShuffled(ctx, seq, &full) {
		st := ports.Stats{Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		// an empty grid always admits a solution; fill cannot fail
		// without cancellation
		return nil, st, context.Canceled
	}

	// 2) carve cells in shuffled order while the puzzle stays unique
	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	target := diff.TargetGivens()
	givens := 81
	nodes := 0
	for _, pos := range seq.Perm(81) {
		if givens == target {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, &domain.Board{Values: puz}, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			// removal would break uniqueness; revert
			puz[r][c] = old
			continue
		}
		fixed[r][c] = false
		givens--
	}

	p := &domain.Puzzle{
		Seed:         seed,
		Difficulty:   diff,
		Board:        domain.Board{Values: puz, Fixed: fixed},
		Solution:     domain.Board{Values: full},
		SolutionHash: fingerprint(&full),
		CreatedAt:    time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillShuffled solves the empty grid into a full valid solution,
// row-major, trying digits in an order drawn from seq at every cell.
// The shuffled order is what varies solved grids across seeds.
func fillShuffled(ctx context.Context, seq *rng.Sequence, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		seq.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := nums
		for _, v := range order {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the solver's row/col/box check locally.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
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
