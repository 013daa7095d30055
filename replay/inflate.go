package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/raniellyferreira/marble-replay/protocol"
)

// Inflate decompresses a raw deflate stream (no zlib or gzip framing).
// A positive limit caps the decompressed size; 0 means unlimited.
//
// A stream that ends early matches both ErrDecompression and
// protocol.ErrUnexpectedEOF.
func Inflate(b []byte, limit int64) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(b))
	defer fr.Close()

	var src io.Reader = fr
	if limit > 0 {
		src = io.LimitReader(fr, limit+1)
	}

	out, err := io.ReadAll(src)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, protocol.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	if limit > 0 && int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: inflated size exceeds %d bytes", ErrDecompression, limit)
	}

	return out, nil
}
