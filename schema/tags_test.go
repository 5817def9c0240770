package schema_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpack/layout"
	"github.com/calebcase/bitpack/schema"
)

func TestFromStruct(t *testing.T) {
	type Packet struct {
		Ver      uint8 `bits:"3"`
		Kind     uint8 `bits:",skip=1"`
		Priority uint8
		Delta    int16 `bits:"12"`

		Checksum uint16 `bits:"-"`
		hidden   uint8
	}

	_ = Packet{hidden: 0}

	decls, err := schema.FromStruct(reflect.TypeOf(Packet{}))
	require.NoError(t, err)

	require.Equal(t, []layout.FieldDecl{
		{Name: "Ver", Kind: layout.Kind{Class: layout.Int, Bytes: 1}, Width: 3},
		{Name: "Kind", Kind: layout.Kind{Class: layout.Int, Bytes: 1}, Skip: 1},
		{Name: "Priority", Kind: layout.Kind{Class: layout.Int, Bytes: 1}},
		{Name: "Delta", Kind: layout.Kind{Class: layout.Int, Signed: true, Bytes: 2}, Width: 12},
	}, decls)
}

func TestFromStructErrors(t *testing.T) {
	type TC struct {
		name string
		typ  reflect.Type
		mark error
	}

	tcs := []TC{
		{
			name: "not a struct",
			typ:  reflect.TypeOf(0),
			mark: oops.New("unexpected"),
		},
		{
			name: "width not a number",
			typ: reflect.TypeOf(struct {
				A uint8 `bits:"wide"`
			}{}),
			mark: oops.New("unexpected"),
		},
		{
			name: "width zero",
			typ: reflect.TypeOf(struct {
				A uint8 `bits:"0"`
			}{}),
			mark: oops.New("unexpected"),
		},
		{
			name: "skip zero",
			typ: reflect.TypeOf(struct {
				A uint8 `bits:"3,skip=0"`
			}{}),
			mark: oops.New("unexpected"),
		},
		{
			name: "skip not a number",
			typ: reflect.TypeOf(struct {
				A uint8 `bits:"3,skip=x"`
			}{}),
			mark: oops.New("unexpected"),
		},
		{
			name: "unknown option",
			typ: reflect.TypeOf(struct {
				A uint8 `bits:"3,align=2"`
			}{}),
			mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, err := schema.FromStruct(tc.typ)
			require.Error(t, err, tc.mark)
			require.True(t, schema.Error.Has(err), tc.mark)
		})
	}
}
