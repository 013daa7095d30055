package marblereplay

import (
	"errors"
	"fmt"

	"github.com/raniellyferreira/marble-replay/curve"
	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/replay"
)

// Error types for specific failure scenarios
var (
	// ErrInvalidConfig indicates invalid configuration options
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStructuralDecode indicates the outer envelope is malformed
	ErrStructuralDecode = replay.ErrStructuralDecode

	// ErrDecompression indicates the replay payload is not valid raw deflate
	ErrDecompression = replay.ErrDecompression

	// ErrNoMarbleController indicates a replay without a player marble
	ErrNoMarbleController = replay.ErrNoMarbleController

	// ErrUnexpectedEOF indicates the data ended in the middle of a value
	ErrUnexpectedEOF = protocol.ErrUnexpectedEOF

	// ErrInvalidBool indicates a boolean byte other than 0 or 1
	ErrInvalidBool = protocol.ErrInvalidBool

	// ErrMalformedString indicates an impossible string length prefix
	ErrMalformedString = protocol.ErrMalformedString

	// ErrUnknownCurveType indicates a curve tag outside the known set
	ErrUnknownCurveType = curve.ErrUnknownCurveType

	// ErrMismatchedCurveType indicates a curve tag other than the expected one
	ErrMismatchedCurveType = curve.ErrMismatchedCurveType

	// ErrNotAnArrayType indicates an element type was requested for a scalar tag
	ErrNotAnArrayType = curve.ErrNotAnArrayType

	// ErrMalformedCount indicates a negative count
	ErrMalformedCount = curve.ErrMalformedCount

	// ErrMissingField indicates a rewindable lacks a requested field
	ErrMissingField = curve.ErrMissingField
)

// DecodeError represents a decode failure with the phase it happened in
type DecodeError struct {
	Phase string // "envelope" or "buffer"
	Size  int
	Err   error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error in phase %s (%d bytes): %v", e.Phase, e.Size, e.Err)
}

// Unwrap returns the wrapped error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a short, stable label for err, suitable for metrics
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrStructuralDecode):
		return "structural"
	case errors.Is(err, ErrDecompression):
		return "decompression"
	case errors.Is(err, ErrUnexpectedEOF):
		return "unexpected_eof"
	case errors.Is(err, ErrInvalidBool):
		return "invalid_bool"
	case errors.Is(err, ErrMalformedString):
		return "malformed_string"
	case errors.Is(err, ErrUnknownCurveType):
		return "unknown_curve_type"
	case errors.Is(err, ErrMismatchedCurveType):
		return "mismatched_curve_type"
	case errors.Is(err, ErrMalformedCount):
		return "malformed_count"
	case errors.Is(err, ErrNotAnArrayType):
		return "not_an_array_type"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrNoMarbleController):
		return "no_marble_controller"
	default:
		return "other"
	}
}
