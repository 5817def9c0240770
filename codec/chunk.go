package codec

// Chunk is one byte-sized slice of a field's bit range.
type Chunk struct {
	// Byte is the index of the container byte the chunk targets.
	Byte int

	// Off is the chunk's natural in-byte bit offset under LSB0
	// numbering. The physical offset is obtained through
	// BitOrder.Adjust.
	Off uint8

	// Take is the number of bits consumed from the byte (1..=8).
	Take uint8

	// Shift positions the chunk's bits within the field's logical
	// value: the sum of the Take of all preceding chunks.
	Shift uint8
}

// Split decomposes a field of the given width starting at startBit into
// per-byte chunks, least-significant chunk first. The chunks exactly cover
// [startBit, startBit+width) and consecutive chunks always target distinct
// bytes.
func Split(width uint, startBit int) []Chunk {
	chunks := make([]Chunk, 0, width/8+2)

	left := width
	pos := startBit
	shift := uint8(0)

	for left > 0 {
		off := uint8(pos % 8)

		take := 8 - off
		if uint(take) > left {
			take = uint8(left)
		}

		chunks = append(chunks, Chunk{
			Byte:  pos / 8,
			Off:   off,
			Take:  take,
			Shift: shift,
		})

		pos += int(take)
		left -= uint(take)
		shift += take
	}

	return chunks
}
