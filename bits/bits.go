// Package bits provides the fixed 128-bit unsigned carrier used to move raw
// field values in and out of packed containers.
//
// Field widths run from 1 to 128 bits, so a single native integer cannot
// carry every raw value. U128 is two machine words with value semantics and
// no allocation; it deliberately implements only the operations the packing
// codec needs (shifts, masks, OR, little-endian bytes).
package bits

import "fmt"

// U128 is an unsigned 128-bit integer.
type U128 struct {
	Hi uint64
	Lo uint64
}

// U64 returns v widened to 128 bits.
func U64(v uint64) U128 {
	return U128{Lo: v}
}

// Uint64 returns the low 64 bits.
func (u U128) Uint64() uint64 {
	return u.Lo
}

// IsZero returns true if u is zero.
func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Or returns u | v.
func (u U128) Or(v U128) U128 {
	return U128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns u & v.
func (u U128) And(v U128) U128 {
	return U128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Shl returns u << n. Shifts of 128 or more return zero.
func (u U128) Shl(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Hi: u.Lo << (n - 64)}
	default:
		return U128{
			Hi: u.Hi<<n | u.Lo>>(64-n),
			Lo: u.Lo << n,
		}
	}
}

// Shr returns u >> n. Shifts of 128 or more return zero.
func (u U128) Shr(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: u.Hi >> (n - 64)}
	default:
		return U128{
			Hi: u.Hi >> n,
			Lo: u.Lo>>n | u.Hi<<(64-n),
		}
	}
}

// Bit returns bit i of u (0 or 1).
func (u U128) Bit(i uint) uint {
	if i >= 64 {
		return uint(u.Hi>>(i-64)) & 1
	}

	return uint(u.Lo>>i) & 1
}

// Mask returns a value with the low width bits set. Mask(0) is zero and
// Mask(128) is all ones; no shift overflows on the boundaries.
func Mask(width uint) U128 {
	switch {
	case width == 0:
		return U128{}
	case width >= 128:
		return U128{Hi: ^uint64(0), Lo: ^uint64(0)}
	case width >= 64:
		return U128{
			Hi: 1<<(width-64) - 1,
			Lo: ^uint64(0),
		}
	default:
		return U128{Lo: 1<<width - 1}
	}
}

// PutLE writes the len(dst) least-significant bytes of u into dst in
// little-endian order. dst must be at most 16 bytes.
func PutLE(dst []byte, u U128) {
	for i := range dst {
		if i < 8 {
			dst[i] = byte(u.Lo >> (8 * i))
		} else {
			dst[i] = byte(u.Hi >> (8 * (i - 8)))
		}
	}
}

// LE reads up to 16 little-endian bytes from src.
func LE(src []byte) (u U128) {
	for i, b := range src {
		if i < 8 {
			u.Lo |= uint64(b) << (8 * i)
		} else {
			u.Hi |= uint64(b) << (8 * (i - 8))
		}
	}

	return u
}

// String returns u in hexadecimal.
func (u U128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("0x%x", u.Lo)
	}

	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}
