// Package table pads rows of cells into aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads each column of rows to the width of its widest cell. Ragged
// rows are allowed; short rows simply contribute fewer cells. Widths are
// measured with lipgloss so styled cells line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}

	widths := columnWidths(rows)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], alignmentAt(alignments, i))
		}
		out = append(out, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			w := lipgloss.Width(cell)
			if i >= len(widths) {
				widths = append(widths, w)
				continue
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func alignmentAt(alignments []Alignment, i int) Alignment {
	if i < len(alignments) {
		return alignments[i]
	}
	return AlignLeft
}

func pad(cell string, width int, align Alignment) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	filler := strings.Repeat(" ", gap)
	if align == AlignRight {
		return filler + cell
	}
	return cell + filler
}
