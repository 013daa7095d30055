// Package protocol implements the primitive binary layer of replay payloads.
//
// Replay buffers are a flat little-endian stream of int32, float32, one-byte
// booleans and length-prefixed strings. Reader is a forward-only cursor over
// a byte slice already resident in memory; every read either consumes
// exactly the bytes it needs or fails without moving the cursor.
//
// Basic usage:
//
//	r := protocol.NewReader(data)
//	session, err := r.ReadInt32()
//	if err != nil {
//		return err
//	}
//	name, err := r.ReadString()
//
// Short reads fail with an *EOFError that matches ErrUnexpectedEOF and
// carries the offset of the failed read. Booleans must be exactly 0 or 1.
//
// Writer produces the same layout and is used to build fixtures.
package protocol
