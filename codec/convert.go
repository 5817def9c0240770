package codec

import "github.com/calebcase/bitpack/bits"

// BitMarshaler is implemented by types stored in opaque fields. MarshalBits
// returns the value as its unsigned carrier bit pattern; bits above the
// field's width are masked off before writing.
type BitMarshaler interface {
	MarshalBits() (bits.U128, error)
}

// BitUnmarshaler is the decoding half of the opaque field conversion. The
// carrier value passed in is already masked to the field's width. An error
// aborts the whole unpack.
type BitUnmarshaler interface {
	UnmarshalBits(u bits.U128) error
}
