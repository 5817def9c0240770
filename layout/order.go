package layout

// BitOrder selects which end of a byte is numbered "bit 0". It is a
// container-wide setting and is independent of multi-byte byte order (which
// is always little-endian).
type BitOrder int

const (
	// LSB0 numbers bit 0 as the least-significant bit of a byte.
	LSB0 BitOrder = iota

	// MSB0 numbers bit 0 as the most-significant bit of a byte.
	MSB0
)

// Adjust maps a chunk's natural in-byte offset (LSB0 numbering, as produced
// by the chunk math) to its physical in-byte offset under the order. This is
// the only place bit order enters the codec: it never changes which byte a
// chunk targets nor the order of bytes.
func (o BitOrder) Adjust(off, count uint8) uint8 {
	if o == MSB0 {
		return 8 - off - count
	}

	return off
}

// String implements fmt.Stringer.
func (o BitOrder) String() string {
	if o == MSB0 {
		return "msb"
	}

	return "lsb"
}
