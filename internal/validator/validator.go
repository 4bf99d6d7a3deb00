package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator scans each row, column and box once with a bitmask and
// reports the cells that duplicate an earlier value in their unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	mark := func(m *int, val uint8, r, c int) {
		if val == 0 || val > 9 {
			if val > 9 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			return
		}
		bit := 1 << val
		if *m&bit != 0 {
			conf = append(conf, domain.CellCoord{Row: r, Col: c})
		}
		*m |= bit
	}
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			mark(&m, b.Values[r][c], r, c)
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			mark(&m, b.Values[r][c], r, c)
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					mark(&m, b.Values[r][c], r, c)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
