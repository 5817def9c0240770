// Package codec compiles a planned layout into pack and unpack
// transformations bound to a Go struct type.
//
// Compilation happens once per (layout, type) pair: each field is resolved
// to a struct field, its chunk list is precomputed with bit-order-adjusted
// offsets and per-byte masks, and byte-aligned full-width fields are marked
// for the little-endian copy fast path. Pack and unpack then evaluate the
// compiled program with a fixed number of per-field byte operations and no
// allocation beyond the output buffer.
//
// A field whose bits straddle byte boundaries is decomposed into per-byte
// chunks, least-significant chunk first. For example a 12-bit field starting
// at bit 3:
//
//	byte 0: bits 3..7  carry field bits 0..4
//	byte 1: bits 0..6  carry field bits 5..11
//
// Writes are read-modify-write (clear mask, then OR), so sibling fields and
// gap bits are never disturbed. Reads OR the extracted chunks back together
// at their cumulative shifts.
//
// Opaque fields move through the BitMarshaler and BitUnmarshaler interfaces
// on the owning type. Their conversions are the only value-level failure
// path; on failure the whole pack or unpack aborts and the caller observes
// no partial result.
package codec
