package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpack/layout"
)

func TestAdjust(t *testing.T) {
	type TC struct {
		order layout.BitOrder
		off   uint8
		count uint8
		out   uint8
	}

	tcs := []TC{
		// LSB0 is the identity.
		{order: layout.LSB0, off: 0, count: 1, out: 0},
		{order: layout.LSB0, off: 3, count: 5, out: 3},
		{order: layout.LSB0, off: 0, count: 8, out: 0},

		// MSB0 mirrors the chunk within the byte.
		{order: layout.MSB0, off: 0, count: 1, out: 7},
		{order: layout.MSB0, off: 7, count: 1, out: 0},
		{order: layout.MSB0, off: 0, count: 8, out: 0},
		{order: layout.MSB0, off: 3, count: 5, out: 0},
		{order: layout.MSB0, off: 2, count: 3, out: 3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s off=%d count=%d", i, tc.order, tc.off, tc.count), func(t *testing.T) {
			require.Equal(t, tc.out, tc.order.Adjust(tc.off, tc.count))
		})
	}
}

func TestOrderString(t *testing.T) {
	require.Equal(t, "lsb", layout.LSB0.String())
	require.Equal(t, "msb", layout.MSB0.String())
}
