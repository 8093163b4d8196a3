// FILE: lixenwraith/inifile/errors.go
package inifile

import (
	"errors"
	"fmt"
)

// Errors returned by document operations.
// Absent sections and keys are never errors: reads fall back to the caller's default.
var (
	// ErrConversion indicates stored text could not be coerced to the requested type.
	ErrConversion = errors.New("value conversion failed")

	// ErrCorruptBinary indicates a binary value holds a non-hex digit.
	ErrCorruptBinary = fmt.Errorf("%w: corrupt hex-pair binary value", ErrConversion)

	// ErrMalformedHeader indicates a section header line without a closing bracket.
	ErrMalformedHeader = errors.New("malformed section header")

	// ErrDuplicateSection indicates a repeated section header in strict mode.
	ErrDuplicateSection = errors.New("duplicate section")

	// ErrClosed indicates the document was already closed.
	ErrClosed = errors.New("document is closed")

	// ErrUnsupportedFormat indicates an unknown export or import format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingKey indicates a required key is absent or empty.
	ErrMissingKey = errors.New("missing required key")

	// ErrInvalidKey indicates a key that cannot be represented as an identifier=value line.
	ErrInvalidKey = errors.New("invalid key")
)

// ParseError reports a structurally invalid line found while loading a document.
type ParseError struct {
	// Path is the document location.
	Path string
	// Line is the 1-based line number.
	Line int
	// Message describes the problem.
	Message string
	// Err is the underlying sentinel.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
