package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation. Callers
// wanting a bounded search impose budgets on these numbers externally;
// the engine itself never times out.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and counts solutions for uniqueness checks.
// Implementations must defensively copy the input board; the caller's
// grid is never mutated.
type Solver interface {
	// Solve returns a completed board or solver.ErrUnsolvable.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// CountSolutions counts complete assignments, stopping early once
	// limit is reached. A limit of 2 answers the uniqueness question.
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty. An empty seed
// asks the implementation to derive one.
type Generator interface {
	Generate(ctx context.Context, seed string, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
