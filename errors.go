// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the readers. Use errors.Is to test for them;
// the error actually returned is a *ParseError wrapping one of these.
var (
	// ErrUnterminatedElement means a matching closing tag for an opened
	// element could not be located.
	ErrUnterminatedElement = errors.New("enclosing tag expected")

	// ErrUnterminatedObject means a closing "}" was not found where the
	// object grammar requires one.
	ErrUnterminatedObject = errors.New("object end expected")

	// ErrInvalidValue means a key's value position matched neither nested
	// object, string, number, nor null.
	ErrInvalidValue = errors.New("attribute value expected")
)

// A ParseError is the concrete type of errors reported by the readers.
// It records the byte offset in the input at which parsing failed.
type ParseError struct {
	Offset int   // byte offset of the failure, 0-based
	Err    error // the underlying sentinel error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }

func parseErrAt(pos int, err error) *ParseError {
	return &ParseError{Offset: pos, Err: err}
}
