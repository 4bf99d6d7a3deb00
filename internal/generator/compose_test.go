package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewDLXSolver()
	g := NewComposer(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, "test-seed-12345", tc.diff)
			require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)

			givens := p.Board.Givens()
			assert.GreaterOrEqual(t, givens, tc.diff.TargetGivens(),
				"carving never removes below target")
			assert.Less(t, givens, 81)

			// puzzle must have exactly one completion
			n, _, err := s.CountSolutions(ctx, &p.Board, 2)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			// solution must be complete and conflict-free
			assert.True(t, p.Solution.Complete())
			ok, conf, err := validator.New().Validate(ctx, &p.Solution)
			require.NoError(t, err)
			assert.True(t, ok, "conflicts: %v", conf)

			// every given matches the solution, and the fixed mask
			// matches the non-empty cells
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						assert.Equal(t, p.Solution.Values[r][c], p.Board.Values[r][c])
					}
					assert.Equal(t, p.Board.Values[r][c] != 0, p.Board.Fixed[r][c])
				}
			}
		})
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	// the solved puzzle must equal the stored solution exactly
	bt := solver.NewBacktrackingSolver()
	g := NewComposer(bt)
	for _, diff := range []domain.Difficulty{domain.Easy, domain.Medium} {
		p, _, err := g.Generate(context.Background(), "round-trip", diff)
		require.NoError(t, err)
		solved, _, err := bt.Solve(context.Background(), &p.Board)
		require.NoError(t, err)
		assert.Equal(t, p.Solution.Values, solved.Values)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewComposer(solver.NewDLXSolver())
	a, _, err := g.Generate(context.Background(), "same-seed", domain.Hard)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), "same-seed", domain.Hard)
	require.NoError(t, err)
	assert.Equal(t, a.Board.Values, b.Board.Values)
	assert.Equal(t, a.Solution.Values, b.Solution.Values)
	assert.Equal(t, a.SolutionHash, b.SolutionHash)
}

func TestGenerateIndependentOfSolverChoice(t *testing.T) {
	// the solver only answers the uniqueness question during carving, so
	// both solvers must carve identically for a given seed
	a, _, err := NewComposer(solver.NewBacktrackingSolver()).Generate(context.Background(), "cross-solver", domain.Medium)
	require.NoError(t, err)
	b, _, err := NewComposer(solver.NewDLXSolver()).Generate(context.Background(), "cross-solver", domain.Medium)
	require.NoError(t, err)
	assert.Equal(t, a.Board.Values, b.Board.Values)
	assert.Equal(t, a.SolutionHash, b.SolutionHash)
}

func TestGenerateEasyGivensCeiling(t *testing.T) {
	g := NewComposer(solver.NewDLXSolver())
	p, _, err := g.Generate(context.Background(), "easy-ceiling", domain.Easy)
	require.NoError(t, err)
	// 41 removals from a full grid essentially never hit the uniqueness
	// wall, so Easy lands on its target exactly
	assert.Equal(t, 40, p.Board.Givens())
	n, _, err := solver.NewDLXSolver().CountSolutions(context.Background(), &p.Board, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	g := NewComposer(solver.NewDLXSolver())
	seen := make(map[string]bool)
	for _, seed := range []string{"s1", "s2", "s3", "s4", "s5"} {
		p, _, err := g.Generate(context.Background(), seed, domain.Medium)
		require.NoError(t, err)
		seen[p.SolutionHash] = true
	}
	assert.Len(t, seen, 5, "distinct seeds should produce distinct solutions")
}

func TestGenerateDefaultsSeed(t *testing.T) {
	g := NewComposer(solver.NewDLXSolver())
	p, _, err := g.Generate(context.Background(), "", domain.Easy)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Seed)
}

func TestFingerprintStableAndHex(t *testing.T) {
	var grid [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			grid[r][c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	a := fingerprint(&grid)
	b := fingerprint(&grid)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	grid[8][8] = grid[8][8]%9 + 1
	assert.NotEqual(t, a, fingerprint(&grid))
}
