package ring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_PushBackInOrder(t *testing.T) {
	b := New[int](4)
	require.True(t, b.IsEmpty())

	for i := 0; i < 4; i++ {
		require.NoError(t, b.PushBack(i*10))
	}

	assert.True(t, b.IsFull())
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 4, b.Capacity())

	for i := 0; i < 4; i++ {
		v, err := b.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*10, v)
	}
}

func TestBuffer_PushBackOverwritesOldest(t *testing.T) {
	b := New[string](3)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, b.PushBack(s))
	}

	require.NoError(t, b.PushBack("d"))

	assert.Equal(t, 3, b.Size())
	assert.Equal(t, 3, b.Capacity())
	assert.Equal(t, []string{"b", "c", "d"}, b.Slice())

	front, err := b.Front()
	require.NoError(t, err)
	assert.Equal(t, "b", front)

	back, err := b.Back()
	require.NoError(t, err)
	assert.Equal(t, "d", back)

	// keep wrapping well past one full turn
	for _, s := range []string{"e", "f", "g", "h"} {
		require.NoError(t, b.PushBack(s))
	}
	assert.Equal(t, []string{"f", "g", "h"}, b.Slice())
}

func TestBuffer_PushFront(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		back     []int
		front    []int
		expected []int
	}{
		{
			name:     "empty buffer",
			capacity: 3,
			front:    []int{1, 2},
			expected: []int{2, 1},
		},
		{
			name:     "mixed pushes",
			capacity: 4,
			back:     []int{3, 4},
			front:    []int{2, 1},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "full buffer drops newest",
			capacity: 3,
			back:     []int{1, 2, 3},
			front:    []int{0},
			expected: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New[int](tt.capacity)
			for _, v := range tt.back {
				require.NoError(t, b.PushBack(v))
			}
			for _, v := range tt.front {
				require.NoError(t, b.PushFront(v))
			}
			assert.Equal(t, tt.expected, b.Slice())
			assert.LessOrEqual(t, b.Size(), b.Capacity())
		})
	}
}

func TestBuffer_SetWraps(t *testing.T) {
	b := New[int](3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, b.PushBack(i))
	}

	require.NoError(t, b.Set(0, 30))
	require.NoError(t, b.Set(2, 50))
	assert.Equal(t, []int{30, 4, 50}, b.Slice())
}

func TestBuffer_Errors(t *testing.T) {
	empty := New[float32](0)
	assert.ErrorIs(t, empty.PushBack(1), ErrZeroCapacity)
	assert.ErrorIs(t, empty.PushFront(1), ErrZeroCapacity)
	_, err := empty.Front()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	b := New[int](2)
	require.NoError(t, b.PushBack(7))

	_, err = b.Get(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = b.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(5, 1), ErrIndexOutOfRange)

	negative := New[int](-4)
	assert.Equal(t, 0, negative.Capacity())
}

func TestBuffer_All(t *testing.T) {
	b := New[int](3)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.PushBack(i))
	}

	var seen []int
	b.All(func(i int, v int) bool {
		seen = append(seen, v)
		return i < 1
	})
	assert.Equal(t, []int{1, 2}, seen)
}
