package table

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each
// column. Cells may carry ANSI styling; widths count printable cells only.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			width := widths[c] - cellWidth(cell)
			if width < 0 {
				width = 0
			}
			last := c == len(row)-1
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					writeSpaces(&b, width)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Width returns the printable width of text.
func Width(text string) int {
	return cellWidth(text)
}

func cellWidth(text string) int {
	return ansi.PrintableRuneWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
