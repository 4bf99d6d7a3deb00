package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"svw.info/sudokugen/internal/domain"
)

// readBoard loads a board from the optional path argument, falling back
// to stdin. Accepted JSON is the engine's wire format:
// {"board": [[...9 rows of 9 cells...]]} with 0 as the empty marker.
func readBoard(args []string) (*domain.Board, error) {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	var b domain.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("invalid board JSON: %w", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return nil, fmt.Errorf("cell r=%d c=%d out of range: %d", r, c, b.Values[r][c])
			}
		}
	}
	return &b, nil
}
