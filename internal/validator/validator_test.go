package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	var grid [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			grid[r][c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: grid})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateEmptyBoard(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok, "empty cells are not conflicts")
	assert.Empty(t, conf)
}

func TestValidateReportsConflicts(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.CellCoord
	}{
		{"row", domain.CellCoord{Row: 2, Col: 1}, domain.CellCoord{Row: 2, Col: 7}},
		{"col", domain.CellCoord{Row: 0, Col: 4}, domain.CellCoord{Row: 8, Col: 4}},
		{"box", domain.CellCoord{Row: 3, Col: 3}, domain.CellCoord{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var grid [9][9]uint8
			grid[tc.a.Row][tc.a.Col] = 6
			grid[tc.b.Row][tc.b.Col] = 6
			ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: grid})
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Contains(t, conf, tc.b, "the later cell in scan order is flagged")
		})
	}
}

func TestValidateOutOfRangeValue(t *testing.T) {
	var grid [9][9]uint8
	grid[4][4] = 12
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: grid})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}
