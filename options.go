package marblereplay

import (
	"github.com/raniellyferreira/marble-replay/protocol"
)

// config holds the configuration for a Decoder
type config struct {
	// Limits
	maxInflatedSize int64

	// Wire format
	stringEncoding protocol.StringEncoding

	// Observability
	logger  Logger
	metrics MetricsCollector
}

// defaultConfig returns a configuration with sensible defaults
func defaultConfig() *config {
	return &config{
		maxInflatedSize: 0, // unlimited
		stringEncoding:  protocol.StringFixed32,
		logger:          defaultLogger(),
		metrics:         nopMetrics{},
	}
}

// Option represents a configuration option for a Decoder
type Option func(*config) error

// WithLogger sets a custom logger for the decoder
//
// Example:
//
//	WithLogger(marblereplay.NewLogrusLogger(logrus.StandardLogger()))
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return ErrInvalidConfig
		}
		c.logger = logger
		return nil
	}
}

// WithMetrics enables metrics collection with the provided collector
//
// Example:
//
//	WithMetrics(metrics.New())
func WithMetrics(collector MetricsCollector) Option {
	return func(c *config) error {
		if collector == nil {
			return ErrInvalidConfig
		}
		c.metrics = collector
		return nil
	}
}

// WithMaxInflatedSize caps the decompressed size of a replay payload.
// 0 means unlimited.
//
// Example:
//
//	WithMaxInflatedSize(64 << 20) // 64MB limit
func WithMaxInflatedSize(bytes int64) Option {
	return func(c *config) error {
		if bytes < 0 {
			return ErrInvalidConfig
		}
		c.maxInflatedSize = bytes
		return nil
	}
}

// WithStringEncoding selects the string length prefix used inside the
// payload. Replays written by the game's .NET writer use StringVarint.
func WithStringEncoding(enc protocol.StringEncoding) Option {
	return func(c *config) error {
		switch enc {
		case protocol.StringFixed32, protocol.StringVarint:
			c.stringEncoding = enc
			return nil
		default:
			return ErrInvalidConfig
		}
	}
}
