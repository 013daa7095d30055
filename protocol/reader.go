package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// maxVarintBytes is the longest 7-bit encoded int32 length prefix
const maxVarintBytes = 5

// Reader is a forward-only little-endian cursor over an in-memory byte slice.
//
// A failed read never advances the cursor and never reads past the end of
// the slice.
type Reader struct {
	buf     []byte
	pos     int
	strings StringEncoding
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithStringEncoding selects the string length prefix format
func WithStringEncoding(enc StringEncoding) ReaderOption {
	return func(r *Reader) {
		r.strings = enc
	}
}

// NewReader creates a reader positioned at the start of b
func NewReader(b []byte, opts ...ReaderOption) *Reader {
	r := &Reader{buf: b}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BytesConsumed returns the number of bytes read so far
func (r *Reader) BytesConsumed() int {
	return r.pos
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Require fails with an EOFError unless at least n bytes remain.
// It does not advance the cursor.
func (r *Reader) Require(n int) error {
	if n < 0 || n > r.Remaining() {
		return &EOFError{Offset: r.pos, Want: n, Have: r.Remaining()}
	}
	return nil
}

// RequireBlock is Require for count records of width bytes each, computed
// without overflowing int.
func (r *Reader) RequireBlock(count, width int) error {
	want := int64(count) * int64(width)
	if count < 0 || width < 0 || want > int64(r.Remaining()) {
		if want > math.MaxInt32 {
			want = math.MaxInt32
		}
		return &EOFError{Offset: r.pos, Want: int(want), Have: r.Remaining()}
	}
	return nil
}

// next returns the next n bytes and advances past them
func (r *Reader) next(n int) ([]byte, error) {
	if err := r.Require(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadByte reads a single byte
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a one-byte boolean that must be exactly 0 or 1
func (r *Reader) ReadBool() (bool, error) {
	offset := r.pos
	b, err := r.next(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.pos = offset
		return false, &BoolError{Offset: offset, Value: b[0]}
	}
}

// ReadUint16 reads a little-endian uint16
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt32 reads a little-endian int32
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads a little-endian uint32
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadFloat32 reads a little-endian IEEE-754 float32
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes reads exactly n bytes.
// The returned slice aliases the reader's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.next(n)
}

// ReadString reads a length-prefixed UTF-8 string
func (r *Reader) ReadString() (string, error) {
	offset := r.pos

	var length int
	switch r.strings {
	case StringVarint:
		n, err := r.read7BitInt()
		if err != nil {
			return "", err
		}
		length = n
	default:
		n, err := r.ReadInt32()
		if err != nil {
			return "", err
		}
		length = int(n)
	}

	if length < 0 {
		r.pos = offset
		return "", fmt.Errorf("%w: %d at offset %d", ErrMalformedString, length, offset)
	}

	b, err := r.next(length)
	if err != nil {
		r.pos = offset
		return "", err
	}

	if !utf8.Valid(b) {
		// .NET substitutes invalid sequences rather than failing
		return string([]rune(string(b))), nil
	}
	return string(b), nil
}

// read7BitInt decodes a .NET 7-bit encoded int32
func (r *Reader) read7BitInt() (int, error) {
	offset := r.pos

	var result uint32
	for i := 0; i < maxVarintBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			r.pos = offset
			return 0, err
		}

		result |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return int(int32(result)), nil
		}
	}

	r.pos = offset
	return 0, fmt.Errorf("%w: 7-bit length longer than %d bytes at offset %d", ErrMalformedString, maxVarintBytes, offset)
}
