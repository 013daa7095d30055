package curve

import (
	"errors"
	"fmt"

	"github.com/raniellyferreira/marble-replay/protocol"
)

// Error types for curve decoding and field access
var (
	// ErrUnknownCurveType indicates a tag outside the known curve types
	ErrUnknownCurveType = errors.New("unknown curve type")

	// ErrMismatchedCurveType indicates a curve tag differs from the expected one
	ErrMismatchedCurveType = errors.New("mismatched curve type")

	// ErrNotAnArrayType indicates an element type was requested for a scalar tag
	ErrNotAnArrayType = errors.New("not an array curve type")

	// ErrMalformedCount indicates a negative sample, element or field count
	ErrMalformedCount = errors.New("malformed count")

	// ErrMissingField indicates a rewindable has no field with the requested name
	ErrMissingField = errors.New("missing field")
)

// Type is the tag identifying the element type of a curve
type Type int32

// Curve types as they appear on the wire
const (
	TypeUnknown Type = iota - 1
	TypeFloat
	TypeInt
	TypeBool
	TypeVector2
	TypeVector3
	TypeQuaternion
	TypeUShort
	TypeUInt32
	TypeUInt32Array
	TypeInt32Array
)

// ParseType validates a raw tag read from the stream
func ParseType(raw int32) (Type, error) {
	t := Type(raw)
	if t < TypeUnknown || t > TypeInt32Array {
		return TypeUnknown, fmt.Errorf("%w: %d", ErrUnknownCurveType, raw)
	}
	return t, nil
}

// ReadType reads an int32 tag and validates it
func ReadType(r *protocol.Reader) (Type, error) {
	raw, err := r.ReadInt32()
	if err != nil {
		return TypeUnknown, err
	}
	return ParseType(raw)
}

// Width returns the encoded size of one value of this type.
// Array types and Unknown have no direct width.
func (t Type) Width() (int, bool) {
	switch t {
	case TypeFloat, TypeInt, TypeUInt32:
		return 4, true
	case TypeBool:
		return 1, true
	case TypeUShort:
		return 2, true
	case TypeVector2:
		return 8, true
	case TypeVector3:
		return 12, true
	case TypeQuaternion:
		return 16, true
	default:
		return 0, false
	}
}

// IsArray reports whether the type is an array of another curve type
func (t Type) IsArray() bool {
	return t == TypeUInt32Array || t == TypeInt32Array
}

// ElementType returns the curve type of each element of an array type
func (t Type) ElementType() (Type, error) {
	switch t {
	case TypeUInt32Array:
		return TypeUInt32, nil
	case TypeInt32Array:
		return TypeInt, nil
	default:
		return TypeUnknown, fmt.Errorf("%w: %s", ErrNotAnArrayType, t)
	}
}

// String returns the type name used by the game
func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypeFloat:
		return "Float"
	case TypeInt:
		return "Int"
	case TypeBool:
		return "Bool"
	case TypeVector2:
		return "Vector2"
	case TypeVector3:
		return "Vector3"
	case TypeQuaternion:
		return "Quaternion"
	case TypeUShort:
		return "UShort"
	case TypeUInt32:
		return "UInt32"
	case TypeUInt32Array:
		return "UInt32Array"
	case TypeInt32Array:
		return "Int32Array"
	default:
		return fmt.Sprintf("Type(%d)", int32(t))
	}
}

// MismatchError reports a curve whose tag differs from the expected one
type MismatchError struct {
	Expected Type
	Found    Type
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatched curve types: expected %s, found %s", e.Expected, e.Found)
}

// Unwrap returns ErrMismatchedCurveType
func (e *MismatchError) Unwrap() error {
	return ErrMismatchedCurveType
}

// CountError reports a negative count read from the stream
type CountError struct {
	What  string // "sample", "element", "field" or "rewindable"
	Count int32
}

// Error implements the error interface
func (e *CountError) Error() string {
	return fmt.Sprintf("malformed %s count: %d", e.What, e.Count)
}

// Unwrap returns ErrMalformedCount
func (e *CountError) Unwrap() error {
	return ErrMalformedCount
}

// MissingFieldError reports a field lookup that found nothing
type MissingFieldError struct {
	Name string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s field is missing from the rewindable", e.Name)
}

// Unwrap returns ErrMissingField
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
