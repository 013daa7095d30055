// Package ring provides a generic fixed-capacity circular buffer.
//
// The buffer backs the time and value series of every decoded curve. It is
// sized once from the declared sample count and filled in stream order:
//
//	times := ring.New[float32](count)
//	for i := 0; i < count; i++ {
//		if err := times.PushBack(t); err != nil {
//			return err
//		}
//	}
//
// Misuse (pushing into a zero-capacity buffer, indexing outside the stored
// range) is reported as an error rather than a panic.
package ring
