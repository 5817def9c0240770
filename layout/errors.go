package layout

import "github.com/zeebo/errs"

// Error is the class of all layout planning errors.
var Error = errs.Class("layout")

// Planning error kinds. Each carries the offending field's name and
// position; match with the class's Has method.
var (
	ErrWidthOutOfRange   = errs.Class("width out of range")
	ErrMissingWidth      = errs.Class("missing width")
	ErrGapOutOfBounds    = errs.Class("gap out of bounds")
	ErrInsufficientSpace = errs.Class("insufficient space")
)
