package protocol

import (
	"encoding/binary"
	"math"
)

// Writer builds little-endian byte sequences in memory using the same
// primitive layout Reader consumes. It is used to assemble fixtures and
// synthetic replay payloads.
type Writer struct {
	buf     []byte
	strings StringEncoding
}

// NewWriter creates an empty writer using the given string encoding
func NewWriter(enc StringEncoding) *Writer {
	return &Writer{
		buf:     make([]byte, 0, 256),
		strings: enc,
	}
}

// Bytes returns the written bytes
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of written bytes
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteByte appends a single byte
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteBool appends a one-byte boolean
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

// WriteUint16 appends a little-endian uint16
func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteInt32 appends a little-endian int32
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

// WriteUint32 appends a little-endian uint32
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteFloat32 appends a little-endian float32
func (w *Writer) WriteFloat32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteBytes appends raw bytes
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString appends a length-prefixed string
func (w *Writer) WriteString(s string) {
	switch w.strings {
	case StringVarint:
		w.write7BitInt(uint32(len(s)))
	default:
		w.WriteInt32(int32(len(s)))
	}
	w.buf = append(w.buf, s...)
}

func (w *Writer) write7BitInt(v uint32) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}
