package marblereplay

import (
	"time"

	"github.com/raniellyferreira/marble-replay/replay"
)

// Decoder decodes replay files with a fixed configuration and keeps running
// statistics. It is safe for concurrent use.
type Decoder struct {
	config *config
	buffer *replay.Decoder

	// Statistics (exported for monitoring)
	Stats DecodeStats
}

// New creates a Decoder with the given options
//
// Example:
//
//	dec, err := marblereplay.New(
//		marblereplay.WithMaxInflatedSize(64 << 20),
//		marblereplay.WithMetrics(metrics.New()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
func New(opts ...Option) (*Decoder, error) {
	cfg := defaultConfig()

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	buffer := replay.NewDecoder(
		replay.WithLogger(&replayLogger{logger: cfg.logger}),
		replay.WithMaxInflatedSize(cfg.maxInflatedSize),
		replay.WithStringEncoding(cfg.stringEncoding),
	)

	return &Decoder{
		config: cfg,
		buffer: buffer,
		Stats: DecodeStats{
			Errors: make(map[string]int64),
		},
	}, nil
}

// ParseEnvelope decodes only the MessagePack envelope of a replay file
func (d *Decoder) ParseEnvelope(data []byte) (*replay.Replay, error) {
	start := time.Now()
	rp, err := replay.ParseReplay(data)
	d.config.metrics.RecordDecodeDuration("envelope", time.Since(start))
	if err != nil {
		return nil, d.fail(&DecodeError{Phase: "envelope", Size: len(data), Err: err})
	}
	return rp, nil
}

// DecodeBuffer decodes a raw replay buffer (the envelope's replayBuffer)
func (d *Decoder) DecodeBuffer(raw []byte) (*replay.Buffer, error) {
	start := time.Now()
	buf, err := d.buffer.Decode(raw)
	d.config.metrics.RecordDecodeDuration("buffer", time.Since(start))
	if err != nil {
		return nil, d.fail(&DecodeError{Phase: "buffer", Size: len(raw), Err: err})
	}

	d.config.metrics.RecordBytes(int64(len(raw)), int64(buf.InflatedSize))
	d.config.metrics.RecordRewindables(len(buf.Rewindables))
	d.Stats.recordSuccess(int64(len(raw)), int64(buf.InflatedSize), len(buf.Rewindables))

	d.config.logger.Debug("Replay buffer decoded",
		Field{Key: "session", Value: buf.Header.Session},
		Field{Key: "version", Value: buf.Header.Version},
		Field{Key: "rewindables", Value: buf.RewindableCount},
		Field{Key: "duration", Value: time.Since(start)},
	)
	return buf, nil
}

// DecodeReplay decodes a complete replay file: envelope, then buffer
func (d *Decoder) DecodeReplay(data []byte) (*replay.Replay, *replay.Buffer, error) {
	rp, err := d.ParseEnvelope(data)
	if err != nil {
		return nil, nil, err
	}

	buf, err := d.DecodeBuffer(rp.Data.ReplayBuffer)
	if err != nil {
		return rp, nil, err
	}
	return rp, buf, nil
}

func (d *Decoder) fail(err *DecodeError) error {
	kind := ErrorKind(err)
	d.config.metrics.RecordError(kind)
	d.Stats.recordFailure(kind)
	d.config.logger.Error("Replay decode failed",
		Field{Key: "phase", Value: err.Phase},
		Field{Key: "kind", Value: kind},
		Field{Key: "error", Value: err.Err},
	)
	return err
}
