package codec

import (
	"encoding/binary"
	"reflect"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitpack/bits"
	"github.com/calebcase/bitpack/layout"
)

// op is one precompiled byte operation of a field's chunk program. off is
// already adjusted for the container's bit order.
type op struct {
	byteIdx int
	off     uint8
	take    uint8
	shift   uint8
	low     byte // (1 << take) - 1
	keep    byte // ^(low << off), the read-modify-write clear mask
}

// program is the compiled form of one field.
type program struct {
	name  string
	index int
	kind  layout.Kind
	width uint

	mask bits.U128
	ops  []op

	// aligned is the byte length of the little-endian copy fast path,
	// 0 when the chunk program must run.
	aligned int
	start   int

	u128        bool
	marshalAddr bool
}

var (
	marshalerType   = reflect.TypeOf((*BitMarshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*BitUnmarshaler)(nil)).Elem()
	u128Type        = reflect.TypeOf(bits.U128{})
)

// Codec evaluates a planned layout against values of a single struct type.
// A Codec is immutable once compiled and safe for concurrent use.
type Codec struct {
	lay  *layout.Layout
	typ  reflect.Type
	prog []program
}

// Compile binds every field of the layout to the struct field of the same
// name and precomputes its chunk program. Opaque fields must implement
// BitMarshaler and BitUnmarshaler.
func Compile(lay *layout.Layout, typ reflect.Type) (*Codec, error) {
	if typ.Kind() != reflect.Struct {
		return nil, Error.New("codec target must be a struct, got %v", typ)
	}

	prog := make([]program, 0, len(lay.Fields))

	for _, spec := range lay.Fields {
		sf, ok := typ.FieldByName(spec.Name)
		if !ok {
			return nil, Error.New("%v has no field %q", typ, spec.Name)
		}

		ft := sf.Type

		p := program{
			name:  spec.Name,
			index: sf.Index[0],
			kind:  spec.Kind,
			width: spec.Width,

			mask:    bits.Mask(spec.Width),
			aligned: spec.AlignedPrimitiveLen(),
			start:   spec.StartByte(),

			u128: ft == u128Type,
		}

		if got := layout.KindOf(ft); got != spec.Kind {
			return nil, Error.New(
				"field %q: planned as %v but %v.%s is %v",
				spec.Name, spec.Kind, typ, spec.Name, got,
			)
		}

		if spec.Kind.Class == layout.Opaque {
			switch {
			case ft.Implements(marshalerType):
			case reflect.PointerTo(ft).Implements(marshalerType):
				p.marshalAddr = true
			default:
				return nil, Error.New(
					"field %q: %v does not implement codec.BitMarshaler",
					spec.Name, ft,
				)
			}

			if !reflect.PointerTo(ft).Implements(unmarshalerType) {
				return nil, Error.New(
					"field %q: *%v does not implement codec.BitUnmarshaler",
					spec.Name, ft,
				)
			}
		}

		if p.aligned == 0 {
			for _, ch := range Split(spec.Width, spec.StartBit) {
				off := lay.Order.Adjust(ch.Off, ch.Take)
				low := byte(uint16(1)<<ch.Take - 1)

				p.ops = append(p.ops, op{
					byteIdx: ch.Byte,
					off:     off,
					take:    ch.Take,
					shift:   ch.Shift,
					low:     low,
					keep:    ^(low << off),
				})
			}
		}

		prog = append(prog, p)
	}

	return &Codec{
		lay:  lay,
		typ:  typ,
		prog: prog,
	}, nil
}

// Layout returns the planned layout the codec was compiled from.
func (c *Codec) Layout() *layout.Layout {
	return c.lay
}

// Type returns the bound struct type.
func (c *Codec) Type() reflect.Type {
	return c.typ
}

// Fallible returns true if the layout contains opaque fields. Pack and
// unpack on an infallible codec cannot fail at the value level.
func (c *Codec) Fallible() bool {
	return c.lay.Fallible
}

// Pack encodes v into a freshly allocated container.
func (c *Codec) Pack(v any) (data []byte, err error) {
	data = make([]byte, c.lay.Bytes)

	err = c.PackInto(data, v)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// PackInto encodes v into dst, which must be exactly the container size.
// Gap bits and bits not covered by any field are written as zero. If an
// opaque conversion fails, dst is left untouched.
func (c *Codec) PackInto(dst []byte, v any) (err error) {
	rv, err := c.structValue(v)
	if err != nil {
		return err
	}

	if len(dst) != c.lay.Bytes {
		return Error.New("buffer is %d bytes, container needs %d", len(dst), c.lay.Bytes)
	}

	// Opaque conversions are the only fallible step, so they run before
	// any byte is written.
	var raws []bits.U128
	if c.lay.Fallible {
		raws = make([]bits.U128, len(c.prog))

		for i := range c.prog {
			raws[i], err = c.raw(&c.prog[i], rv)
			if err != nil {
				return err
			}
		}
	}

	for i := range dst {
		dst[i] = 0
	}

	for i := range c.prog {
		p := &c.prog[i]

		var raw bits.U128
		if raws != nil {
			raw = raws[i]
		} else {
			raw, _ = c.raw(p, rv)
		}

		raw = raw.And(p.mask)

		if p.aligned > 0 {
			bits.PutLE(dst[p.start:p.start+p.aligned], raw)

			continue
		}

		for _, o := range p.ops {
			part := byte(raw.Shr(uint(o.shift)).Uint64()) & o.low
			dst[o.byteIdx] = dst[o.byteIdx]&o.keep | part<<o.off
		}
	}

	return nil
}

// Unpack decodes data into v, which must be a non-nil pointer to the bound
// struct type. If an opaque conversion fails, the target is left untouched.
func (c *Codec) Unpack(data []byte, v any) (err error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Error.New("unpack target must be a non-nil *%v", c.typ)
	}

	rv = rv.Elem()
	if rv.Type() != c.typ {
		return oops.Trace(ErrTypeMismatch)
	}

	if len(data) != c.lay.Bytes {
		return Error.New("buffer is %d bytes, container needs %d", len(data), c.lay.Bytes)
	}

	// Fallible layouts decode into a scratch value so a failed
	// conversion never leaves a partial result in the target.
	out := rv
	if c.lay.Fallible {
		out = reflect.New(c.typ).Elem()
	}

	for i := range c.prog {
		p := &c.prog[i]
		fv := out.Field(p.index)

		var raw bits.U128
		if p.aligned > 0 {
			raw = bits.LE(data[p.start : p.start+p.aligned])
		} else {
			for _, o := range p.ops {
				raw = raw.Or(bits.U64(uint64(data[o.byteIdx]>>o.off&o.low)).Shl(uint(o.shift)))
			}
		}

		switch p.kind.Class {
		case layout.Bool:
			fv.SetBool(!raw.IsZero())
		case layout.Int:
			if p.u128 {
				fv.Set(reflect.ValueOf(raw))

				break
			}

			if p.kind.Signed {
				fv.SetInt(signExtend(raw.Uint64(), p.width, p.kind.Bytes))
			} else {
				fv.SetUint(truncate(raw.Uint64(), p.kind.Bytes))
			}
		default:
			err = fv.Addr().Interface().(BitUnmarshaler).UnmarshalBits(raw)
			if err != nil {
				return &ConversionError{Field: p.name, Err: err}
			}
		}
	}

	if c.lay.Fallible {
		rv.Set(out)
	}

	return nil
}

// raw returns the field's unsigned carrier bit pattern: 0 or 1 for
// booleans, the two's-complement pattern for integers, and the marshaled
// carrier for opaque fields.
func (c *Codec) raw(p *program, rv reflect.Value) (bits.U128, error) {
	fv := rv.Field(p.index)

	switch p.kind.Class {
	case layout.Bool:
		if fv.Bool() {
			return bits.U64(1), nil
		}

		return bits.U128{}, nil
	case layout.Int:
		if p.u128 {
			return fv.Interface().(bits.U128), nil
		}

		if p.kind.Signed {
			return bits.U64(uint64(fv.Int())), nil
		}

		return bits.U64(fv.Uint()), nil
	}

	var m BitMarshaler
	if p.marshalAddr {
		if fv.CanAddr() {
			m = fv.Addr().Interface().(BitMarshaler)
		} else {
			nv := reflect.New(fv.Type())
			nv.Elem().Set(fv)
			m = nv.Interface().(BitMarshaler)
		}
	} else {
		m = fv.Interface().(BitMarshaler)
	}

	u, err := m.MarshalBits()
	if err != nil {
		return bits.U128{}, &ConversionError{Field: p.name, Err: err}
	}

	return u, nil
}

func (c *Codec) structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, Error.New("pack source must not be nil")
		}

		rv = rv.Elem()
	}

	if rv.Type() != c.typ {
		return reflect.Value{}, oops.Trace(ErrTypeMismatch)
	}

	return rv, nil
}

// signExtend interprets the low width bits of x as a two's-complement value
// and widens it, truncated to the kind's native byte width.
func signExtend(x uint64, width uint, nbytes int) int64 {
	if width < 64 && x>>(width-1)&1 == 1 {
		x |= ^uint64(0) << width
	}

	switch nbytes {
	case 1:
		return int64(int8(x))
	case 2:
		return int64(int16(x))
	case 4:
		return int64(int32(x))
	}

	return int64(x)
}

// truncate crops x to the kind's native byte width.
func truncate(x uint64, nbytes int) uint64 {
	switch nbytes {
	case 1:
		return uint64(uint8(x))
	case 2:
		return uint64(uint16(x))
	case 4:
		return uint64(uint32(x))
	}

	return x
}

// PackUint64 packs v and returns the container as a single little-endian
// unsigned integer. The container must be 1, 2, 4, or 8 bytes. The result
// is derived from the byte-array pack, never computed independently.
func (c *Codec) PackUint64(v any) (n uint64, err error) {
	switch c.lay.Bytes {
	case 1, 2, 4, 8:
	default:
		return 0, oops.Trace(ErrNoIntegerBridge)
	}

	var buf [8]byte

	err = c.PackInto(buf[:c.lay.Bytes], v)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// UnpackUint64 decodes the little-endian bytes of n into v. The container
// must be 1, 2, 4, or 8 bytes; bits of n beyond the container are ignored.
func (c *Codec) UnpackUint64(n uint64, v any) (err error) {
	switch c.lay.Bytes {
	case 1, 2, 4, 8:
	default:
		return oops.Trace(ErrNoIntegerBridge)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)

	return c.Unpack(buf[:c.lay.Bytes], v)
}

// PackU128 is the integer bridge for 16-byte containers.
func (c *Codec) PackU128(v any) (u bits.U128, err error) {
	if c.lay.Bytes != 16 {
		return bits.U128{}, oops.Trace(ErrNoIntegerBridge)
	}

	var buf [16]byte

	err = c.PackInto(buf[:], v)
	if err != nil {
		return bits.U128{}, err
	}

	return bits.LE(buf[:]), nil
}

// UnpackU128 is the inverse of PackU128.
func (c *Codec) UnpackU128(u bits.U128, v any) (err error) {
	if c.lay.Bytes != 16 {
		return oops.Trace(ErrNoIntegerBridge)
	}

	var buf [16]byte
	bits.PutLE(buf[:], u)

	return c.Unpack(buf[:], v)
}
