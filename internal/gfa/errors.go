package gfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for the single-field failure modes. Record parsers
// wrap them with the offending token; Parse wraps everything again in
// a LineError carrying the line number and raw line text.
var (
	// ErrUnknownRecordType is returned for a line whose leading field
	// is not one of the recognized record type characters
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrMalformedTag is returned for a tag token that fails structural
	// or type-code validation
	ErrMalformedTag = errors.New("malformed tag")

	// ErrMissingOrientation is returned for a reference field without a
	// trailing + or -
	ErrMissingOrientation = errors.New("missing orientation")

	// ErrInvalidOrientation is returned for a reference field whose
	// trailing character is neither + nor -
	ErrInvalidOrientation = errors.New("invalid orientation")

	// ErrEncoding is returned for a byte-array tag with an odd hex
	// digit count or non-hex characters, and for a numeric-array tag
	// with an element that fails to parse as its declared element type
	ErrEncoding = errors.New("encoding error")
)

// FieldCountError reports a record line with fewer fields than its
// record kind requires. Counts include the leading type field.
type FieldCountError struct {
	// Kind is the record type character of the offending line
	Kind byte

	// Expected is the minimum field count for the record kind
	Expected int

	// Found is the field count of the offending line
	Found int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%c record needs %d fields, found %d", e.Kind, e.Expected, e.Found)
}

// LineError wraps a parse failure with the 1-based line number and the
// raw text of the offending line. A LineError anywhere in the input
// fails the whole-document parse; partial documents are never returned.
type LineError struct {
	// Line is the 1-based line number in the input text
	Line int

	// Text is the raw offending line
	Text string

	// Err is the originating parse error
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
