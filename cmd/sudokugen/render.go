package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudokugen/internal/domain"
)

var (
	givenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderBoard draws the grid with 3x3 box separators. Givens are bold,
// solver-filled cells plain, empties dotted.
func renderBoard(b *domain.Board) string {
	var sb strings.Builder
	hline := frameStyle.Render("+-------+-------+-------+")
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			sb.WriteString(hline)
			sb.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString(frameStyle.Render("| "))
			}
			v := b.Values[r][c]
			switch {
			case v == 0:
				sb.WriteString(emptyStyle.Render("."))
			case b.Fixed[r][c]:
				sb.WriteString(givenStyle.Render(string('0' + rune(v))))
			default:
				sb.WriteString(cellStyle.Render(string('0' + rune(v))))
			}
			sb.WriteByte(' ')
		}
		sb.WriteString(frameStyle.Render("|"))
		sb.WriteByte('\n')
	}
	sb.WriteString(hline)
	return sb.String()
}
