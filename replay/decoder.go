package replay

import (
	"fmt"

	"github.com/raniellyferreira/marble-replay/curve"
	"github.com/raniellyferreira/marble-replay/protocol"
)

// Smallest possible encodings, used to bound allocations driven by counts
// read from the stream. Strings are counted at their one byte minimum.
const (
	minFieldSize      = 4 + 1 + 4
	minRewindableSize = 1 + 1 + 12 + 4
)

// Decoder decodes replay buffers. It holds only configuration and is safe
// for concurrent use.
type Decoder struct {
	logger      Logger
	maxInflated int64
	strings     protocol.StringEncoding
}

// DecoderOption configures a Decoder
type DecoderOption func(*Decoder)

// WithLogger sets the decoder's logger
func WithLogger(logger Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxInflatedSize caps the decompressed payload size. 0 disables the cap.
func WithMaxInflatedSize(n int64) DecoderOption {
	return func(d *Decoder) {
		d.maxInflated = n
	}
}

// WithStringEncoding selects how string lengths are prefixed in the payload
func WithStringEncoding(enc protocol.StringEncoding) DecoderOption {
	return func(d *Decoder) {
		d.strings = enc
	}
}

// NewDecoder creates a decoder
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		logger:  nopLogger{},
		strings: protocol.StringFixed32,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes a replay buffer with the default decoder
func Decode(raw []byte) (*Buffer, error) {
	return NewDecoder().Decode(raw)
}

// Decode decodes a raw replay buffer: header, then the deflate payload of
// rewindables. The first error aborts decoding and no partial result is
// returned. Bytes after the last rewindable are ignored.
func (d *Decoder) Decode(raw []byte) (*Buffer, error) {
	r := protocol.NewReader(raw)

	header, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	d.logger.Debug("Replay header", "session", header.Session, "version", header.Version)

	compressed, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}

	payload, err := Inflate(compressed, d.maxInflated)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("Payload inflated", "compressed", len(compressed), "inflated", len(payload))

	pr := protocol.NewReader(payload, protocol.WithStringEncoding(d.strings))

	count, err := pr.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	if count < 0 {
		return nil, &curve.CountError{What: "rewindable", Count: count}
	}

	capacity := int(count)
	if limit := pr.Remaining() / minRewindableSize; capacity > limit {
		capacity = limit
	}

	rewindables := make([]Rewindable, 0, capacity)
	for i := int32(0); i < count; i++ {
		rw, err := decodeRewindable(pr)
		if err != nil {
			return nil, fmt.Errorf("payload: rewindable %d: %w", i, err)
		}
		rewindables = append(rewindables, rw)
	}

	if rest := pr.Remaining(); rest > 0 {
		d.logger.Debug("Ignoring trailing payload bytes", "bytes", rest)
	}
	d.logger.Debug("Replay buffer decoded", "rewindables", count)

	return &Buffer{
		Header:          header,
		RewindableCount: count,
		Rewindables:     rewindables,
		InflatedSize:    len(payload),
	}, nil
}

func readHeader(r *protocol.Reader) (Header, error) {
	session, err := r.ReadInt32()
	if err != nil {
		return Header{}, err
	}
	version, err := r.ReadInt32()
	if err != nil {
		return Header{}, err
	}
	return Header{Session: session, Version: version}, nil
}

func decodeRewindable(r *protocol.Reader) (Rewindable, error) {
	goName, err := r.ReadString()
	if err != nil {
		return Rewindable{}, err
	}
	typeName, err := r.ReadString()
	if err != nil {
		return Rewindable{}, err
	}
	refPos, err := curve.ReadVector3(r)
	if err != nil {
		return Rewindable{}, err
	}

	count, err := r.ReadInt32()
	if err != nil {
		return Rewindable{}, err
	}
	if count < 0 {
		return Rewindable{}, &curve.CountError{What: "field", Count: count}
	}

	capacity := int(count)
	if limit := r.Remaining() / minFieldSize; capacity > limit {
		capacity = limit
	}

	fields := make([]curve.Field, 0, capacity)
	for i := int32(0); i < count; i++ {
		f, err := decodeField(r)
		if err != nil {
			return Rewindable{}, fmt.Errorf("%s: %w", typeName, err)
		}
		fields = append(fields, f)
	}

	return Rewindable{
		GameObjectName: goName,
		TypeName:       typeName,
		RefPos:         refPos,
		Fields:         fields,
	}, nil
}

// decodeField reads one field header and dispatches on its tag. The fitter
// re-reads the tag from its own payload and checks it against this one.
func decodeField(r *protocol.Reader) (curve.Field, error) {
	index, err := r.ReadInt32()
	if err != nil {
		return curve.Field{}, err
	}
	name, err := r.ReadString()
	if err != nil {
		return curve.Field{}, err
	}
	tag, err := curve.ReadType(r)
	if err != nil {
		return curve.Field{}, fmt.Errorf("field %q: %w", name, err)
	}

	v, err := curve.Decode(r, tag)
	if err != nil {
		return curve.Field{}, fmt.Errorf("field %q: %w", name, err)
	}

	return curve.Field{
		Index: index,
		Name:  name,
		Type:  tag,
		Curve: v,
	}, nil
}
