package layout

// FieldDecl is the semantic output of a schema surface: one declared field
// in declaration order.
type FieldDecl struct {
	Name string
	Kind Kind

	// Width is the explicit bit width override. Zero means infer from
	// the kind (which fails for opaque kinds).
	Width uint

	// Skip reserves this many bits immediately before the field. Zero
	// means no gap.
	Skip uint
}

// FieldSpec is a planned field: its declaration plus the absolute starting
// bit offset assigned by the planner.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Width    uint
	StartBit int
}

// StartByte returns the index of the byte holding the field's first bit.
func (f FieldSpec) StartByte() int {
	return f.StartBit / 8
}

// ByteAligned returns true if the field starts on a byte boundary and spans
// whole bytes.
func (f FieldSpec) ByteAligned() bool {
	return f.StartBit%8 == 0 && f.Width%8 == 0
}

// AlignedPrimitiveLen returns the byte length of the field when it is
// byte-aligned at its kind's full native width, enabling the little-endian
// copy fast path. It returns 0 when the general chunk path is required.
func (f FieldSpec) AlignedPrimitiveLen() int {
	if f.ByteAligned() && f.Kind.Class == Int && f.Kind.FullBits() == f.Width {
		return f.Kind.Bytes
	}

	return 0
}

// Config carries the container-level settings for a plan.
type Config struct {
	// Bytes is the container size. Must be at least 1.
	Bytes int

	// Order is the in-byte bit numbering. Defaults to LSB0.
	Order BitOrder

	// Tuple records that the fields were declared positionally rather
	// than by name. It has no effect on placement.
	Tuple bool
}

// Layout is a planned container schema: every field's absolute bit range
// plus the container-wide settings. A Layout is immutable once planned and
// safe for unlimited concurrent readers.
type Layout struct {
	Fields []FieldSpec
	Bytes  int
	Order  BitOrder
	Tuple  bool

	// Fallible is true if any field is opaque, in which case pack and
	// unpack can fail at the value level through the field's conversion.
	Fallible bool
}

// Plan places the declared fields onto a single bit cursor, in declaration
// order. Placement is strictly sequential: each field's gap (if any) and
// width advance the cursor, and nothing is ever reordered or fitted into
// earlier holes. All structural validation happens here; pack and unpack
// never re-validate.
func Plan(c Config, decls []FieldDecl) (*Layout, error) {
	if c.Bytes < 1 {
		return nil, Error.New("container must be at least 1 byte, got %d", c.Bytes)
	}

	totalBits := c.Bytes * 8
	cursor := 0

	fields := make([]FieldSpec, 0, len(decls))
	fallible := false

	for i, d := range decls {
		if d.Skip > 0 {
			if cursor+int(d.Skip) > totalBits {
				return nil, Error.Wrap(ErrGapOutOfBounds.New(
					"field %q (index %d): %d-bit gap at bit %d exceeds %d-byte container",
					d.Name, i, d.Skip, cursor, c.Bytes,
				))
			}

			cursor += int(d.Skip)
		}

		width := d.Width
		if width == 0 {
			w, ok := d.Kind.InferredWidth()
			if !ok {
				return nil, Error.Wrap(ErrMissingWidth.New(
					"field %q (index %d): opaque fields require an explicit width",
					d.Name, i,
				))
			}

			width = w
		} else if width > 128 {
			return nil, Error.Wrap(ErrWidthOutOfRange.New(
				"field %q (index %d): width %d must be 1..=128",
				d.Name, i, width,
			))
		}

		if cursor+int(width) > totalBits {
			return nil, Error.Wrap(ErrInsufficientSpace.New(
				"field %q (index %d): %d bits at bit %d exceed %d-byte container",
				d.Name, i, width, cursor, c.Bytes,
			))
		}

		fields = append(fields, FieldSpec{
			Name:     d.Name,
			Kind:     d.Kind,
			Width:    width,
			StartBit: cursor,
		})
		cursor += int(width)

		if d.Kind.Class == Opaque {
			fallible = true
		}
	}

	return &Layout{
		Fields:   fields,
		Bytes:    c.Bytes,
		Order:    c.Order,
		Tuple:    c.Tuple,
		Fallible: fallible,
	}, nil
}
