package bitpack

import (
	"reflect"
	"sync"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitpack/codec"
	"github.com/calebcase/bitpack/layout"
	"github.com/calebcase/bitpack/schema"
)

// Error is the class of all top-level bitpack errors.
var Error = errs.Class("bitpack")

type config struct {
	container schema.Container
}

// Option adjusts the container a type packs into.
type Option func(*config)

// Bytes requests an explicit container size in bytes. Mutually exclusive
// with Uint.
func Bytes(n int) Option {
	return func(c *config) {
		c.container.Bytes = n
	}
}

// Uint requests a container that is also viewed as a single little-endian
// unsigned integer of n bytes (1, 2, 4, 8, or 16). Mutually exclusive with
// Bytes.
func Uint(n int) Option {
	return func(c *config) {
		c.container.IntBytes = n
	}
}

// MSB0 numbers bit 0 as the most-significant bit of each byte. The default
// is LSB0.
func MSB0() Option {
	return func(c *config) {
		c.container.Order = layout.MSB0
	}
}

type cacheKey struct {
	typ       reflect.Type
	container schema.Container
}

type entry struct {
	once  sync.Once
	codec *codec.Codec
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]*entry{}
)

// For returns the codec for v's type under the given options. Each distinct
// (type, options) schema is planned and compiled at most once, even under
// concurrent first use, and the codec is shared thereafter.
func For(v any, opts ...Option) (*codec.Codec, error) {
	typ := reflect.TypeOf(v)
	if typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, Error.New("schema source must be a struct or pointer to struct, got %T", v)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	key := cacheKey{
		typ:       typ,
		container: cfg.container,
	}

	cacheMu.Lock()
	e, ok := cache[key]
	if !ok {
		e = &entry{}
		cache[key] = e
	}
	cacheMu.Unlock()

	e.once.Do(func() {
		e.codec, e.err = compile(typ, cfg.container)
	})

	return e.codec, e.err
}

func compile(typ reflect.Type, container schema.Container) (*codec.Codec, error) {
	decls, err := schema.FromStruct(typ)
	if err != nil {
		return nil, err
	}

	cfg, err := container.Config()
	if err != nil {
		return nil, err
	}

	lay, err := layout.Plan(cfg, decls)
	if err != nil {
		return nil, err
	}

	return codec.Compile(lay, typ)
}

// Pack encodes v into a freshly allocated container.
func Pack(v any, opts ...Option) (data []byte, err error) {
	c, err := For(v, opts...)
	if err != nil {
		return nil, err
	}

	return c.Pack(v)
}

// Unpack decodes data into v, which must be a non-nil pointer to a struct.
func Unpack(data []byte, v any, opts ...Option) (err error) {
	c, err := For(v, opts...)
	if err != nil {
		return err
	}

	return c.Unpack(data, v)
}
