package layout

import (
	"fmt"
	"reflect"

	"github.com/calebcase/bitpack/bits"
)

// Class partitions field kinds into the three shapes the codec understands.
type Class int

// Field kind classes.
const (
	// Opaque is any logical type that is not a built-in boolean or
	// integer. Opaque fields require an explicit width and a
	// user-supplied conversion to and from their carrier integer.
	Opaque Class = iota

	// Bool is a logical boolean occupying a single bit unless widened
	// explicitly.
	Bool

	// Int is a native-width integer, signed or unsigned.
	Int
)

// Kind is the classified logical type of a field.
type Kind struct {
	Class  Class
	Signed bool
	Bytes  int // native byte width for Int kinds: 1, 2, 4, 8, or 16
}

// InferredWidth returns the bit width implied by the kind, if any. Opaque
// kinds have no inferable width.
func (k Kind) InferredWidth() (width uint, ok bool) {
	switch k.Class {
	case Bool:
		return 1, true
	case Int:
		return uint(k.Bytes) * 8, true
	}

	return 0, false
}

// FullBits returns the native bit width of an Int kind and 0 otherwise.
func (k Kind) FullBits() uint {
	if k.Class != Int {
		return 0
	}

	return uint(k.Bytes) * 8
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k.Class {
	case Bool:
		return "bool"
	case Int:
		if k.Signed {
			return fmt.Sprintf("i%d", k.Bytes*8)
		}

		return fmt.Sprintf("u%d", k.Bytes*8)
	}

	return "opaque"
}

var u128Type = reflect.TypeOf(bits.U128{})

// KindOf classifies a Go type. Booleans and fixed-width integers map to
// their primitive kinds, bits.U128 is the 128-bit unsigned integer, and
// every other type is opaque. Platform-width int and uint are deliberately
// opaque: packed layouts must not depend on the build target.
func KindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Bool:
		return Kind{Class: Bool}
	case reflect.Uint8:
		return Kind{Class: Int, Bytes: 1}
	case reflect.Int8:
		return Kind{Class: Int, Signed: true, Bytes: 1}
	case reflect.Uint16:
		return Kind{Class: Int, Bytes: 2}
	case reflect.Int16:
		return Kind{Class: Int, Signed: true, Bytes: 2}
	case reflect.Uint32:
		return Kind{Class: Int, Bytes: 4}
	case reflect.Int32:
		return Kind{Class: Int, Signed: true, Bytes: 4}
	case reflect.Uint64:
		return Kind{Class: Int, Bytes: 8}
	case reflect.Int64:
		return Kind{Class: Int, Signed: true, Bytes: 8}
	case reflect.Struct:
		if t == u128Type {
			return Kind{Class: Int, Bytes: 16}
		}
	}

	return Kind{Class: Opaque}
}

// KindByName classifies a declared type name as used in schema documents.
// Unknown names are opaque.
func KindByName(name string) Kind {
	switch name {
	case "bool":
		return Kind{Class: Bool}
	case "u8":
		return Kind{Class: Int, Bytes: 1}
	case "i8":
		return Kind{Class: Int, Signed: true, Bytes: 1}
	case "u16":
		return Kind{Class: Int, Bytes: 2}
	case "i16":
		return Kind{Class: Int, Signed: true, Bytes: 2}
	case "u32":
		return Kind{Class: Int, Bytes: 4}
	case "i32":
		return Kind{Class: Int, Signed: true, Bytes: 4}
	case "u64":
		return Kind{Class: Int, Bytes: 8}
	case "i64":
		return Kind{Class: Int, Signed: true, Bytes: 8}
	case "u128":
		return Kind{Class: Int, Bytes: 16}
	case "i128":
		return Kind{Class: Int, Signed: true, Bytes: 16}
	}

	return Kind{Class: Opaque}
}
