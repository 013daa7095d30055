package curve

import (
	"fmt"

	"github.com/raniellyferreira/marble-replay/protocol"
)

// minFitterSize is the smallest possible encoded Fitter: tag, interpolated
// flag, sample count and the curve's own interpolated flag.
const minFitterSize = 4 + 1 + 4 + 1

// Variant is the decoded curve payload of a field. It is implemented only by
// *Fitter[T] and *FitterArray[T] for the element types of the known tags.
type Variant interface {
	// CurveType returns the tag the payload was decoded with
	CurveType() Type

	// SampleCount returns the number of samples, summed over array elements
	SampleCount() int

	variant()
}

// Fitter wraps a curve whose tag has been checked against the expected one.
//
// Interpolated is the fitter-level flag and is authoritative for consumers;
// Curve.Interpolated is the flag stored with the curve body.
type Fitter[T any] struct {
	Interpolated bool
	Type         Type
	Curve        Curve[T]
}

// CurveType returns the fitter's tag
func (f *Fitter[T]) CurveType() Type {
	return f.Type
}

// SampleCount returns the number of samples in the curve
func (f *Fitter[T]) SampleCount() int {
	return f.Curve.Len()
}

func (f *Fitter[T]) variant() {}

// FitterArray is a sequence of fitters sharing one array tag
type FitterArray[T any] struct {
	Interpolated bool
	Type         Type
	ElementType  Type
	Count        int32
	Curves       []*Fitter[T]
}

// CurveType returns the array tag
func (a *FitterArray[T]) CurveType() Type {
	return a.Type
}

// SampleCount returns the total number of samples across all elements
func (a *FitterArray[T]) SampleCount() int {
	total := 0
	for _, c := range a.Curves {
		total += c.SampleCount()
	}
	return total
}

func (a *FitterArray[T]) variant() {}

// Decode reads the curve payload for a field tagged tag. The payload carries
// its own tag, which must match.
func Decode(r *protocol.Reader, tag Type) (Variant, error) {
	switch tag {
	case TypeFloat:
		return fitterVariant(r, tag, decodeFloat)
	case TypeInt:
		return fitterVariant(r, tag, decodeInt)
	case TypeBool:
		return fitterVariant(r, tag, decodeBool)
	case TypeVector2:
		return fitterVariant(r, tag, decodeVector2)
	case TypeVector3:
		return fitterVariant(r, tag, decodeVector3)
	case TypeQuaternion:
		return fitterVariant(r, tag, decodeQuaternion)
	case TypeUShort:
		return fitterVariant(r, tag, decodeUShort)
	case TypeUInt32:
		return fitterVariant(r, tag, decodeUInt32)
	case TypeUInt32Array:
		return arrayVariant(r, tag, decodeUInt32)
	case TypeInt32Array:
		return arrayVariant(r, tag, decodeInt)
	default:
		// TypeUnknown is part of the tag set but has no payload layout
		return nil, fmt.Errorf("%w: %s has no curve payload", ErrUnknownCurveType, tag)
	}
}

// fitterVariant and arrayVariant avoid storing a typed nil pointer in the
// interface on error
func fitterVariant[T any](r *protocol.Reader, tag Type, decode func([]byte, int) (T, error)) (Variant, error) {
	f, err := decodeFitter(r, tag, decode)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func arrayVariant[T any](r *protocol.Reader, tag Type, decode func([]byte, int) (T, error)) (Variant, error) {
	a, err := decodeFitterArray(r, tag, decode)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func decodeFitter[T any](r *protocol.Reader, expected Type, decode func([]byte, int) (T, error)) (*Fitter[T], error) {
	tag, err := ReadType(r)
	if err != nil {
		return nil, err
	}
	if tag != expected {
		return nil, &MismatchError{Expected: expected, Found: tag}
	}

	interpolated, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	c, err := decodeCurve(r, tag, decode)
	if err != nil {
		return nil, err
	}

	return &Fitter[T]{
		Interpolated: interpolated,
		Type:         tag,
		Curve:        c,
	}, nil
}

func decodeFitterArray[T any](r *protocol.Reader, expected Type, decode func([]byte, int) (T, error)) (*FitterArray[T], error) {
	tag, err := ReadType(r)
	if err != nil {
		return nil, err
	}
	if tag != expected {
		return nil, &MismatchError{Expected: expected, Found: tag}
	}

	elem, err := tag.ElementType()
	if err != nil {
		return nil, err
	}

	interpolated, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	count, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &CountError{What: "element", Count: count}
	}

	// a hostile count must not drive the allocation
	capacity := int(count)
	if limit := r.Remaining() / minFitterSize; capacity > limit {
		capacity = limit
	}

	curves := make([]*Fitter[T], 0, capacity)
	for i := int32(0); i < count; i++ {
		f, err := decodeFitter(r, elem, decode)
		if err != nil {
			return nil, err
		}
		f.Interpolated = interpolated
		curves = append(curves, f)
	}

	return &FitterArray[T]{
		Interpolated: interpolated,
		Type:         tag,
		ElementType:  elem,
		Count:        count,
		Curves:       curves,
	}, nil
}
