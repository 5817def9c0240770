package bits_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpack/bits"
)

func TestShl(t *testing.T) {
	type TC struct {
		name string
		in   bits.U128
		n    uint
		out  bits.U128
	}

	tcs := []TC{
		{
			name: "zero shift",
			in:   bits.U64(0b_1010),
			n:    0,
			out:  bits.U64(0b_1010),
		},
		{
			name: "within low word",
			in:   bits.U64(1),
			n:    63,
			out:  bits.U128{Lo: 1 << 63},
		},
		{
			name: "across word boundary",
			in:   bits.U64(1),
			n:    64,
			out:  bits.U128{Hi: 1},
		},
		{
			name: "straddling",
			in:   bits.U64(0b_11),
			n:    63,
			out:  bits.U128{Hi: 1, Lo: 1 << 63},
		},
		{
			name: "top bit",
			in:   bits.U64(1),
			n:    127,
			out:  bits.U128{Hi: 1 << 63},
		},
		{
			name: "shift out",
			in:   bits.U64(1),
			n:    128,
			out:  bits.U128{},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.Shl(tc.n))
		})
	}
}

func TestShr(t *testing.T) {
	type TC struct {
		name string
		in   bits.U128
		n    uint
		out  bits.U128
	}

	tcs := []TC{
		{
			name: "zero shift",
			in:   bits.U128{Hi: 5, Lo: 7},
			n:    0,
			out:  bits.U128{Hi: 5, Lo: 7},
		},
		{
			name: "within low word",
			in:   bits.U64(0b_1000),
			n:    3,
			out:  bits.U64(1),
		},
		{
			name: "across word boundary",
			in:   bits.U128{Hi: 1},
			n:    64,
			out:  bits.U64(1),
		},
		{
			name: "straddling",
			in:   bits.U128{Hi: 1, Lo: 1 << 63},
			n:    63,
			out:  bits.U64(0b_11),
		},
		{
			name: "top bit down",
			in:   bits.U128{Hi: 1 << 63},
			n:    127,
			out:  bits.U64(1),
		},
		{
			name: "shift out",
			in:   bits.U128{Hi: ^uint64(0), Lo: ^uint64(0)},
			n:    128,
			out:  bits.U128{},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.Shr(tc.n))
		})
	}
}

func TestMask(t *testing.T) {
	type TC struct {
		width uint
		out   bits.U128
	}

	tcs := []TC{
		{width: 0, out: bits.U128{}},
		{width: 1, out: bits.U64(1)},
		{width: 8, out: bits.U64(0xFF)},
		{width: 63, out: bits.U64(1<<63 - 1)},
		{width: 64, out: bits.U128{Lo: ^uint64(0)}},
		{width: 65, out: bits.U128{Hi: 1, Lo: ^uint64(0)}},
		{width: 127, out: bits.U128{Hi: 1<<63 - 1, Lo: ^uint64(0)}},
		{width: 128, out: bits.U128{Hi: ^uint64(0), Lo: ^uint64(0)}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]width=%d", i, tc.width), func(t *testing.T) {
			require.Equal(t, tc.out, bits.Mask(tc.width))
		})
	}
}

func TestBit(t *testing.T) {
	u := bits.U128{Hi: 1, Lo: 1 << 7}

	require.Equal(t, uint(0), u.Bit(0))
	require.Equal(t, uint(1), u.Bit(7))
	require.Equal(t, uint(0), u.Bit(63))
	require.Equal(t, uint(1), u.Bit(64))
	require.Equal(t, uint(0), u.Bit(127))
}

func TestLERoundtrip(t *testing.T) {
	type TC struct {
		name string
		u    bits.U128
		n    int
	}

	tcs := []TC{
		{
			name: "single byte",
			u:    bits.U64(0xAB),
			n:    1,
		},
		{
			name: "u32",
			u:    bits.U64(0xDEAD_BEEF),
			n:    4,
		},
		{
			name: "u64",
			u:    bits.U64(0xDEAD_BEEF_F00D_BAAD),
			n:    8,
		},
		{
			name: "u128",
			u:    bits.U128{Hi: 0x0123_4567_89AB_CDEF, Lo: 0xFEED_FACE_CAFE_F00D},
			n:    16,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := make([]byte, tc.n)
			bits.PutLE(buf, tc.u)

			require.Equal(t, tc.u, bits.LE(buf))
		})
	}

	t.Run("byte order", func(t *testing.T) {
		buf := make([]byte, 4)
		bits.PutLE(buf, bits.U64(0xDEAD_BEEF))

		require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf)
	})
}

func TestOrAnd(t *testing.T) {
	a := bits.U128{Hi: 0b_1100, Lo: 0b_1010}
	b := bits.U128{Hi: 0b_1010, Lo: 0b_1100}

	require.Equal(t, bits.U128{Hi: 0b_1110, Lo: 0b_1110}, a.Or(b))
	require.Equal(t, bits.U128{Hi: 0b_1000, Lo: 0b_1000}, a.And(b))
}
