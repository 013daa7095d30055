package curve

import (
	"fmt"

	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/ring"
)

// Curve is a time-stamped sample series for one field.
// Times and Values always hold the same number of elements.
type Curve[T any] struct {
	Interpolated bool
	Times        *ring.Buffer[float32]
	Values       *ring.Buffer[T]
}

// Len returns the number of samples
func (c *Curve[T]) Len() int {
	if c.Times == nil {
		return 0
	}
	return c.Times.Size()
}

// Sample returns the time and value of sample i
func (c *Curve[T]) Sample(i int) (float32, T, error) {
	var zero T
	if c.Times == nil || c.Values == nil {
		return 0, zero, fmt.Errorf("sample %d: %w", i, ring.ErrIndexOutOfRange)
	}

	t, err := c.Times.Get(i)
	if err != nil {
		return 0, zero, err
	}
	v, err := c.Values.Get(i)
	if err != nil {
		return 0, zero, err
	}
	return t, v, nil
}

// decodeCurve reads a curve body whose tag the caller has already validated.
// decode turns one fixed-width value record into T; its offset argument is
// the record's stream position, used only for error reporting.
func decodeCurve[T any](r *protocol.Reader, tag Type, decode func([]byte, int) (T, error)) (Curve[T], error) {
	width, ok := tag.Width()
	if !ok {
		return Curve[T]{}, fmt.Errorf("%w: %s has no value width", ErrUnknownCurveType, tag)
	}

	count, err := r.ReadInt32()
	if err != nil {
		return Curve[T]{}, err
	}
	if count < 0 {
		return Curve[T]{}, &CountError{What: "sample", Count: count}
	}

	interpolated, err := r.ReadBool()
	if err != nil {
		return Curve[T]{}, err
	}

	n := int(count)

	// fail before allocating when the timestamps cannot all be present
	if err := r.RequireBlock(n, 4); err != nil {
		return Curve[T]{}, err
	}

	times := ring.New[float32](n)
	for i := 0; i < n; i++ {
		t, err := r.ReadFloat32()
		if err != nil {
			return Curve[T]{}, err
		}
		if err := times.PushBack(t); err != nil {
			return Curve[T]{}, err
		}
	}

	if err := r.RequireBlock(n, width); err != nil {
		return Curve[T]{}, err
	}
	base := r.BytesConsumed()
	raw, err := r.ReadBytes(n * width)
	if err != nil {
		return Curve[T]{}, err
	}

	values := ring.New[T](n)
	for i := 0; i < n; i++ {
		rec := raw[i*width : (i+1)*width]
		v, err := decode(rec, base+i*width)
		if err != nil {
			return Curve[T]{}, err
		}
		if err := values.PushBack(v); err != nil {
			return Curve[T]{}, err
		}
	}

	return Curve[T]{
		Interpolated: interpolated,
		Times:        times,
		Values:       values,
	}, nil
}
