package codec

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all codec errors.
var Error = errs.Class("codec")

// Usage error sentinels.
var (
	// ErrNoIntegerBridge is returned by the integer bridge methods when
	// the container size has no matching native integer width.
	ErrNoIntegerBridge = Error.New("container has no integer bridge")

	// ErrTypeMismatch is returned when a value's type does not match the
	// type the codec was compiled for.
	ErrTypeMismatch = Error.New("value type does not match compiled type")
)

// ConversionError reports a failed opaque field conversion during pack or
// unpack. It is the only value-level runtime failure; structural problems
// are all rejected at planning time.
type ConversionError struct {
	Field string
	Err   error
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("field %q: conversion failed: %v", e.Field, e.Err)
}

// Unwrap returns the underlying conversion failure.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
