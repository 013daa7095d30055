package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when fewer bytes remain than a read needs
	ErrUnexpectedEOF = errors.New("unexpected end of replay data")

	// ErrInvalidBool is returned for a boolean byte other than 0 or 1
	ErrInvalidBool = errors.New("invalid boolean encoding")

	// ErrMalformedString is returned for a string with an impossible length prefix
	ErrMalformedString = errors.New("malformed string length")
)

// StringEncoding selects how string lengths are prefixed
type StringEncoding byte

const (
	// StringFixed32 prefixes strings with a little-endian int32 byte length
	StringFixed32 StringEncoding = iota

	// StringVarint prefixes strings with a 7-bit encoded length, as written
	// by .NET's BinaryWriter
	StringVarint
)

// String returns a string representation of the encoding
func (e StringEncoding) String() string {
	switch e {
	case StringFixed32:
		return "fixed32"
	case StringVarint:
		return "varint"
	default:
		return fmt.Sprintf("unknown encoding %d", byte(e))
	}
}

// ParseStringEncoding maps a name produced by String back to the encoding
func ParseStringEncoding(name string) (StringEncoding, error) {
	switch name {
	case "fixed32", "":
		return StringFixed32, nil
	case "varint":
		return StringVarint, nil
	default:
		return 0, fmt.Errorf("unknown string encoding: %q", name)
	}
}

// EOFError reports a short read and where it happened
type EOFError struct {
	Offset int // position of the failed read
	Want   int // bytes requested
	Have   int // bytes remaining
}

// Error implements the error interface
func (e *EOFError) Error() string {
	return fmt.Sprintf("unexpected end of replay data at offset %d: need %d bytes, have %d", e.Offset, e.Want, e.Have)
}

// Unwrap returns ErrUnexpectedEOF
func (e *EOFError) Unwrap() error {
	return ErrUnexpectedEOF
}

// BoolError reports a boolean byte outside {0, 1}
type BoolError struct {
	Offset int
	Value  byte
}

// Error implements the error interface
func (e *BoolError) Error() string {
	return fmt.Sprintf("invalid boolean encoding at offset %d: 0x%02x", e.Offset, e.Value)
}

// Unwrap returns ErrInvalidBool
func (e *BoolError) Unwrap() error {
	return ErrInvalidBool
}
