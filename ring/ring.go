package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroCapacity is returned when pushing into a buffer with no storage
	ErrZeroCapacity = errors.New("ring buffer has zero capacity")

	// ErrIndexOutOfRange is returned for a logical index outside [0, Size)
	ErrIndexOutOfRange = errors.New("ring buffer index out of range")
)

// Buffer is a fixed-capacity circular buffer.
//
// When the buffer is full, PushBack overwrites the oldest element (logical
// index 0) and PushFront overwrites the newest one. The capacity is fixed at
// construction and never changes.
type Buffer[T any] struct {
	buf   []T
	start int // physical index of logical element 0
	end   int // physical index one past the last element
	size  int
}

// New creates a buffer able to hold capacity elements
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		buf: make([]T, capacity),
	}
}

// Capacity returns the maximum number of elements
func (b *Buffer[T]) Capacity() int {
	return len(b.buf)
}

// Size returns the number of stored elements
func (b *Buffer[T]) Size() int {
	return b.size
}

// IsFull reports whether Size equals Capacity
func (b *Buffer[T]) IsFull() bool {
	return b.size == len(b.buf)
}

// IsEmpty reports whether the buffer holds no elements
func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// PushBack appends v at the logical end, dropping the oldest element when full
func (b *Buffer[T]) PushBack(v T) error {
	if len(b.buf) == 0 {
		return ErrZeroCapacity
	}

	b.buf[b.end] = v
	b.end = b.increment(b.end)

	if b.size == len(b.buf) {
		b.start = b.end
	} else {
		b.size++
	}
	return nil
}

// PushFront inserts v at the logical front, dropping the newest element when full
func (b *Buffer[T]) PushFront(v T) error {
	if len(b.buf) == 0 {
		return ErrZeroCapacity
	}

	b.start = b.decrement(b.start)
	b.buf[b.start] = v

	if b.size == len(b.buf) {
		b.end = b.start
	} else {
		b.size++
	}
	return nil
}

// Get returns the element at logical index i
func (b *Buffer[T]) Get(i int) (T, error) {
	idx, err := b.physical(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.buf[idx], nil
}

// Set replaces the element at logical index i
func (b *Buffer[T]) Set(i int, v T) error {
	idx, err := b.physical(i)
	if err != nil {
		return err
	}
	b.buf[idx] = v
	return nil
}

// Front returns the oldest element
func (b *Buffer[T]) Front() (T, error) {
	return b.Get(0)
}

// Back returns the newest element
func (b *Buffer[T]) Back() (T, error) {
	return b.Get(b.size - 1)
}

// Slice returns a copy of the contents in logical order
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

// All calls fn for every element in logical order until fn returns false
func (b *Buffer[T]) All(fn func(i int, v T) bool) {
	for i := 0; i < b.size; i++ {
		if !fn(i, b.buf[(b.start+i)%len(b.buf)]) {
			return
		}
	}
}

func (b *Buffer[T]) physical(i int) (int, error) {
	if i < 0 || i >= b.size {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, b.size)
	}

	// i < size <= len(buf), so a single wrap is enough
	idx := b.start + i
	if idx >= len(b.buf) {
		idx -= len(b.buf)
	}
	return idx, nil
}

func (b *Buffer[T]) increment(idx int) int {
	idx++
	if idx == len(b.buf) {
		idx = 0
	}
	return idx
}

func (b *Buffer[T]) decrement(idx int) int {
	if idx == 0 {
		idx = len(b.buf)
	}
	return idx - 1
}
