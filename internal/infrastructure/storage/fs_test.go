package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func testPuzzle(diff domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		Seed:         "stored-seed",
		Difficulty:   diff,
		SolutionHash: "abc123",
		CreatedAt:    42,
		Name:         "kitchen table",
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	p.Solution.Values[0][0] = 5
	return p
}

func TestSaveAssignsID(t *testing.T) {
	fs := NewFS(t.TempDir())
	p := testPuzzle(domain.Easy)
	require.NoError(t, fs.Save(context.Background(), p))
	assert.NotEmpty(t, p.ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()
	p := testPuzzle(domain.Expert)
	require.NoError(t, fs.Save(ctx, p))

	got, err := fs.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Seed, got.Seed)
	assert.Equal(t, domain.Expert, got.Difficulty)
	assert.Equal(t, p.Board.Values, got.Board.Values)
	assert.Equal(t, p.Solution.Values, got.Solution.Values)
	assert.Equal(t, p.SolutionHash, got.SolutionHash)
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossDifficulties(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		require.NoError(t, fs.Save(ctx, testPuzzle(d)))
	}
	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)
	seen := map[domain.Difficulty]bool{}
	for _, m := range metas {
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, "kitchen table", m.Name)
		seen[m.Difficulty] = true
	}
	assert.Len(t, seen, 3)
}

func TestSaveNil(t *testing.T) {
	fs := NewFS(t.TempDir())
	assert.Error(t, fs.Save(context.Background(), nil))
}
