package schema

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/calebcase/bitpack/layout"
)

// TagKey is the struct tag consumed by FromStruct.
const TagKey = "bits"

// FromStruct derives field declarations from a struct type's `bits` tags.
//
// The tag's first element is the explicit width override; an empty element
// keeps the width inferred from the field's type. Options follow separated
// by commas: skip=N reserves N bits before the field. A tag of "-" excludes
// the field. Unexported fields are always excluded.
func FromStruct(t reflect.Type) (decls []layout.FieldDecl, err error) {
	if t.Kind() != reflect.Struct {
		return nil, Error.New("schema source must be a struct, got %v", t)
	}

	decls = make([]layout.FieldDecl, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get(TagKey)
		if tag == "-" {
			continue
		}

		decl := layout.FieldDecl{
			Name: sf.Name,
			Kind: layout.KindOf(sf.Type),
		}

		if tag != "" {
			decl.Width, decl.Skip, err = parseTag(tag)
			if err != nil {
				return nil, Error.Wrap(ErrTag.New(
					"field %s: %q: %v", sf.Name, tag, err,
				))
			}
		}

		decls = append(decls, decl)
	}

	return decls, nil
}

func parseTag(tag string) (width, skip uint, err error) {
	parts := strings.Split(tag, ",")

	if parts[0] != "" {
		w, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil {
			return 0, 0, Error.New("width: %v", err)
		}
		if w == 0 {
			return 0, 0, Error.New("width must be > 0")
		}

		width = uint(w)
	}

	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(part, "=")

		switch key {
		case "skip":
			s, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return 0, 0, Error.New("skip: %v", err)
			}
			if s == 0 {
				return 0, 0, Error.New("skip must be > 0")
			}

			skip = uint(s)
		default:
			return 0, 0, Error.New("unknown option %q", part)
		}
	}

	return width, skip, nil
}
