package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpack/diagram"
	"github.com/calebcase/bitpack/layout"
)

var u8 = layout.Kind{Class: layout.Int, Bytes: 1}

func TestRenderSingleByte(t *testing.T) {
	fields := []layout.FieldSpec{
		{Name: "a", Kind: u8, Width: 3, StartBit: 0},
		{Name: "b", Kind: u8, Width: 5, StartBit: 3},
	}

	require.Equal(t,
		"07 06 05 04 03 02 01 00\n"+
			"╰──── 5 ─────╯ ╰─ 3 ──╯\n",
		diagram.Render(1, layout.LSB0, fields),
	)

	// MSB0 mirrors each byte, so the first field lands on the high bits.
	require.Equal(t,
		"07 06 05 04 03 02 01 00\n"+
			"╰─ 3 ──╯ ╰──── 5 ─────╯\n",
		diagram.Render(1, layout.MSB0, fields),
	)
}

func TestRenderMultiRow(t *testing.T) {
	// 3-bit version, a gap bit, two aligned bytes, a 12-bit field
	// straddling the upper bytes.
	fields := []layout.FieldSpec{
		{Name: "Ver", Kind: u8, Width: 3, StartBit: 0},
		{Name: "Kind", Kind: u8, Width: 8, StartBit: 4},
		{Name: "Priority", Kind: u8, Width: 8, StartBit: 12},
		{Name: "Delta", Kind: layout.Kind{Class: layout.Int, Signed: true, Bytes: 2}, Width: 12, StartBit: 20},
	}

	require.Equal(t,
		"31 30 29 28 27 26 25 24   23 22 21 20 19 18 17 16\n"+
			"╰─────────────── 12 ────────────────╯ ╰─── 8 ───╯\n"+
			"15 14 13 12 11 10 09 08   07 06 05 04 03 02 01 00\n"+
			"╰─────────╯ ╰────────── 8 ──────────╯  ° ╰─ 3 ──╯\n",
		diagram.Render(4, layout.LSB0, fields),
	)
}

func TestRenderUnusedBits(t *testing.T) {
	// A field straddling the byte seam, with gaps on both sides of it.
	fields := []layout.FieldSpec{
		{Name: "a", Kind: u8, Width: 3, StartBit: 0},
		{Name: "b", Kind: layout.Kind{Class: layout.Int, Bytes: 2}, Width: 9, StartBit: 5},
	}

	require.Equal(t,
		"15 14 13 12 11 10 09 08   07 06 05 04 03 02 01 00\n"+
			" °  ° ╰─────────── 9 ────────────╯  °  °   ╰ 3 ─╯\n",
		diagram.Render(2, layout.LSB0, fields),
	)
}

func TestRenderSingleBitUnlabeled(t *testing.T) {
	fields := []layout.FieldSpec{
		{Name: "f", Kind: layout.Kind{Class: layout.Bool}, Width: 1, StartBit: 0},
	}

	out := diagram.Render(1, layout.LSB0, fields)

	require.Contains(t, out, "╰╯")
	require.NotContains(t, out, " 1 ")
}
