package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/calebcase/bitpack/layout"
)

// Document is a declarative container schema.
type Document struct {
	Container ContainerDoc `yaml:"container"`
	Fields    []FieldDoc   `yaml:"fields"`
}

// ContainerDoc holds the container-level options of a document. Bytes and
// Int are mutually exclusive; Int names an unsigned integer width (u8, u16,
// u32, u64, u128). Order is "lsb" (default) or "msb".
type ContainerDoc struct {
	Bytes int    `yaml:"bytes"`
	Int   string `yaml:"int"`
	Order string `yaml:"order"`
}

// FieldDoc declares one field. Type is a primitive name (bool, u8..u128,
// i8..i128); any other value is an opaque type and requires Bits. Skip
// reserves bits before the field. An empty Name makes the field positional.
type FieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Bits uint   `yaml:"bits"`
	Skip uint   `yaml:"skip"`
}

// Parse decodes a YAML schema document.
func Parse(data []byte) (doc *Document, err error) {
	doc = &Document{}

	err = yaml.Unmarshal(data, doc)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return doc, nil
}

// Options resolves the document's container options.
func (d *Document) Options() (c Container, err error) {
	if d.Container.Int != "" {
		kind := layout.KindByName(d.Container.Int)
		if kind.Class != layout.Int || kind.Signed {
			return Container{}, Error.New(
				"integer container must be one of u8, u16, u32, u64, u128; got %q",
				d.Container.Int,
			)
		}

		c.IntBytes = kind.Bytes
	}

	c.Bytes = d.Container.Bytes

	switch d.Container.Order {
	case "", "lsb":
		c.Order = layout.LSB0
	case "msb":
		c.Order = layout.MSB0
	default:
		return Container{}, Error.New(
			"order must be \"lsb\" or \"msb\", got %q", d.Container.Order,
		)
	}

	return c, nil
}

// Decls lowers the document's fields to planner declarations. Unnamed
// fields receive positional names f0..fn.
func (d *Document) Decls() []layout.FieldDecl {
	decls := make([]layout.FieldDecl, 0, len(d.Fields))

	for i, f := range d.Fields {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("f%d", i)
		}

		decls = append(decls, layout.FieldDecl{
			Name:  name,
			Kind:  layout.KindByName(f.Type),
			Width: f.Bits,
			Skip:  f.Skip,
		})
	}

	return decls
}

// Plan resolves the document into a planned layout.
func (d *Document) Plan() (lay *layout.Layout, err error) {
	c, err := d.Options()
	if err != nil {
		return nil, err
	}

	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}

	cfg.Tuple = len(d.Fields) > 0
	for _, f := range d.Fields {
		if f.Name != "" {
			cfg.Tuple = false

			break
		}
	}

	return layout.Plan(cfg, d.Decls())
}
