// Package diagram renders a human-readable chart of a planned bit layout.
//
// The renderer is a pure presentation layer over the layout data and has no
// effect on codec behavior. Bytes are grouped two per row, high byte first,
// with bit indices as the header and one bracket span per field:
//
//	07 06 05 04 03 02 01 00
//	╰╯ ╰╯ ╰─────╯ ╰──────╯
//
// Unused bits are marked with °.
package diagram

import (
	"fmt"
	"strings"

	"github.com/calebcase/bitpack/layout"
)

// How many bytes are grouped together per rendered row.
const bytesPerRow = 2

// Fields narrower than this keep their bracket unlabeled.
const minLabelBits = 2

const (
	chDash        = '─'
	chCornerLeft  = '╰'
	chCornerRight = '╯'
	chUnused      = '°'
)

// run is a field's contiguous cell span within one row.
type run struct {
	field    int
	startCol int
	endCol   int
}

// Render draws the layout chart for a container of the given size and bit
// order. Fields are consumed read-only.
func Render(nbytes int, order layout.BitOrder, fields []layout.FieldSpec) string {
	w := len(fmt.Sprintf("%d", nbytes*8-1))
	if w < 2 {
		w = 2
	}

	// owner of every physical bit: byte*8 + significance.
	owner := make([]int, nbytes*8)
	for i := range owner {
		owner[i] = -1
	}

	for fi, f := range fields {
		for k := uint(0); k < f.Width; k++ {
			g := f.StartBit + int(k)
			s := order.Adjust(uint8(g%8), 1)
			owner[(g/8)*8+int(s)] = fi
		}
	}

	var rows [][]int
	for hi := nbytes - 1; hi >= 0; hi -= bytesPerRow {
		row := []int{hi}
		if hi > 0 {
			row = append(row, hi-1)
		}

		rows = append(rows, row)
	}

	// Column of display cell p within a row: cells are w wide with a
	// single space between and a wider gap at byte seams.
	col := func(p int) int {
		return p*(w+1) + (p/8)*2
	}

	var (
		out      strings.Builder
		allRuns  [][]run
		rowLines []string
	)

	for _, rowBytes := range rows {
		cells := len(rowBytes) * 8

		line := make([]rune, col(cells-1)+w)
		for i := range line {
			line[i] = ' '
		}

		var runs []run

		p := 0
		for p < cells {
			b := rowBytes[p/8]
			s := 7 - p%8
			fi := owner[b*8+s]

			if fi < 0 {
				line[col(p)+w/2] = chUnused
				p++

				continue
			}

			q := p
			for q+1 < cells {
				nb := rowBytes[(q+1)/8]
				ns := 7 - (q+1)%8
				if owner[nb*8+ns] != fi {
					break
				}

				q++
			}

			start := col(p)
			end := col(q) + w - 1

			line[start] = chCornerLeft
			line[end] = chCornerRight
			for i := start + 1; i < end; i++ {
				line[i] = chDash
			}

			runs = append(runs, run{field: fi, startCol: start, endCol: end})
			p = q + 1
		}

		allRuns = append(allRuns, runs)
		rowLines = append(rowLines, string(line))
	}

	// Place each field's width label once, on its widest run.
	type best struct {
		row  int
		run  run
		span int
	}
	bestRun := make(map[int]best)

	for ri, runs := range allRuns {
		for _, r := range runs {
			span := r.endCol - r.startCol + 1
			if b, ok := bestRun[r.field]; !ok || span > b.span {
				bestRun[r.field] = best{row: ri, run: r, span: span}
			}
		}
	}

	lines := make([][]rune, len(rowLines))
	for i, s := range rowLines {
		lines[i] = []rune(s)
	}

	for fi, f := range fields {
		if f.Width < minLabelBits {
			continue
		}

		b, ok := bestRun[fi]
		if !ok {
			continue
		}

		label := fmt.Sprintf(" %d ", f.Width)
		inner := b.span - 2
		if inner < len(label) {
			continue
		}

		at := b.run.startCol + 1 + (inner-len(label))/2
		copy(lines[b.row][at:], []rune(label))
	}

	for ri, rowBytes := range rows {
		writeHeader(&out, rowBytes, w)
		out.WriteString(strings.TrimRight(string(lines[ri]), " "))
		out.WriteByte('\n')
	}

	return out.String()
}

func writeHeader(out *strings.Builder, rowBytes []int, w int) {
	for j, b := range rowBytes {
		if j > 0 {
			out.WriteString("   ")
		}

		for bit := 7; bit >= 0; bit-- {
			fmt.Fprintf(out, "%0*d", w, b*8+bit)
			if bit != 0 {
				out.WriteByte(' ')
			}
		}
	}

	out.WriteByte('\n')
}
