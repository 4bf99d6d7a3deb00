package domain

// Board holds current values and which cells are fixed givens.
// Values are row-major, 0 marks an empty cell. This layout is the only
// wire/storage contract the engine defines.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Complete reports whether every cell is non-empty.
func (b *Board) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Givens counts the non-empty cells.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    uint8        `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle bundles a generated puzzle with its solution and metadata.
// The engine creates it once per Generate call and never mutates it
// afterward; the caller owns it.
type Puzzle struct {
	ID           string     `json:"id,omitempty"`
	Seed         string     `json:"seed,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Board        Board      `json:"board"`
	Solution     Board      `json:"solution"`
	SolutionHash string     `json:"solutionHash,omitempty"`
	CreatedAt    int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
