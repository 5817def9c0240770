package schema

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/bitpack/layout"
)

// Error is the class of all schema surface errors.
var Error = errs.Class("schema")

// Schema error kinds.
var (
	ErrTag = errs.Class("invalid tag")

	// ErrConflictingContainer rejects schemas that request both an
	// explicit byte count and an integer-container width.
	ErrConflictingContainer = errs.Class("conflicting container options")
)

// Container carries the container-level requests of a schema. Bytes and
// IntBytes are mutually exclusive: the first asks for an arbitrary byte
// count, the second for a container that is also viewed as a single
// little-endian unsigned integer of that width.
type Container struct {
	Bytes    int
	IntBytes int
	Order    layout.BitOrder
}

// Size resolves the container size in bytes. With neither request present
// the container is a single byte.
func (c Container) Size() (n int, err error) {
	if c.Bytes > 0 && c.IntBytes > 0 {
		return 0, Error.Wrap(ErrConflictingContainer.New(
			"bytes=%d and an integer width of %d bytes both requested",
			c.Bytes, c.IntBytes,
		))
	}

	if c.IntBytes > 0 {
		switch c.IntBytes {
		case 1, 2, 4, 8, 16:
			return c.IntBytes, nil
		}

		return 0, Error.New(
			"integer container width must be 1, 2, 4, 8, or 16 bytes, got %d",
			c.IntBytes,
		)
	}

	if c.Bytes > 0 {
		return c.Bytes, nil
	}

	return 1, nil
}

// Config resolves the container into a planner configuration.
func (c Container) Config() (_ layout.Config, err error) {
	n, err := c.Size()
	if err != nil {
		return layout.Config{}, err
	}

	return layout.Config{
		Bytes: n,
		Order: c.Order,
	}, nil
}
