package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column configures one column of a table.
type Column struct {
	Align Alignment
	// MaxWidth truncates longer cells with an ellipsis. Zero means unbounded.
	MaxWidth int
}

const ellipsis = "…"

// Format pads every cell to the widest entry of its column, measured in
// terminal cells, and joins cells with a single space. Columns beyond
// len(columns) are left aligned and unbounded.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	var widths []int
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			cell = fit(cell, columnAt(columns, c).MaxWidth)
			cells[r][c] = cell
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	out := make([]string, len(rows))
	for r, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			pad := strings.Repeat(" ", widths[c]-runewidth.StringWidth(cell))
			if columnAt(columns, c).Align == AlignRight {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		out[r] = b.String()
	}
	return out
}

// TrimRight drops the padding left behind by empty trailing columns.
func TrimRight(line string) string {
	return strings.TrimRight(line, " ")
}

func columnAt(columns []Column, idx int) Column {
	if idx < len(columns) {
		return columns[idx]
	}
	return Column{}
}

func fit(cell string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(cell) <= maxWidth {
		return cell
	}
	return runewidth.Truncate(cell, maxWidth, ellipsis)
}
