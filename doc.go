// Package bitpack packs struct fields into fixed-size byte containers at
// the bit level.
//
// A schema is declared with `bits` struct tags and container options; the
// layout is planned once per type, compiled into a codec, and memoized:
//
//	type Packet struct {
//		Ver      uint8 `bits:"3"`
//		Kind     uint8 `bits:"8,skip=1"`
//		Priority uint8 `bits:"8"`
//		Delta    int16 `bits:"12"`
//	}
//
//	data, err := bitpack.Pack(p, bitpack.Uint(4))
//
// Fields occupy bit ranges strictly in declaration order, starting at bit 0
// of byte 0. The packet above lays out as:
//
//	31 30 29 28 27 26 25 24   23 22 21 20 19 18 17 16
//	╰─────────────── 12 ────────────────╯ ╰─── 8 ───╯
//	15 14 13 12 11 10 09 08   07 06 05 04 03 02 01 00
//	╰─────────╯ ╰────────── 8 ──────────╯  ° ╰─ 3 ──╯
//
// Widths of 1 to 128 bits are supported on any field, at any alignment.
// Booleans and fixed-width integers need no width tag; their natural width
// is inferred. Signed fields narrower than their native width are
// sign-extended on unpack. Byte-aligned fields at full native width are
// copied little-endian. Any other field type is opaque: it declares an
// explicit width and converts to and from its carrier integer through
// codec.BitMarshaler and codec.BitUnmarshaler, which is the only way a
// pack or unpack can fail at the value level.
//
// Bit numbering within a byte defaults to LSB0 and may be flipped per
// container with MSB0. Multi-byte values and the integer-container bridges
// are always little-endian regardless of bit order.
package bitpack
