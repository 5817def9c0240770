// Package layout plans the bit-level placement of fields within a fixed-size
// byte container.
//
// A schema surface (struct tags, a YAML document) produces an ordered list of
// field declarations. Plan walks the declarations with a single bit cursor,
// in declaration order, with no reordering or best-fit search:
//
//	┌ gap? ┐┌ field ┐┌ field ┐┌ gap? ┐┌ field ┐ ...
//	bit 0 ──────────────────────────────────▶ bytes×8
//
// Each field receives an absolute starting bit offset. A field's width is
// either declared explicitly (1..=128) or inferred from its kind: 1 bit for
// booleans, the native width for integers. Opaque fields always require an
// explicit width.
//
// All structural errors (width range, missing width, gap or field overflow)
// are detected here, once per schema. A planned Layout is immutable and may
// be shared read-only across any number of concurrent pack and unpack calls.
//
// Bit numbering within a byte is a container-wide setting (LSB0 or MSB0) and
// is independent of multi-byte byte order, which is always little-endian.
package layout
