// Package metrics implements marblereplay.MetricsCollector with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records decode metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	DecodeDuration *prometheus.HistogramVec
	CompressedSize prometheus.Histogram
	InflatedSize   prometheus.Histogram
	Rewindables    prometheus.Counter
	Errors         *prometheus.CounterVec
}

// New creates a collector with a fresh registry
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		DecodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marble_replay_decode_duration_seconds",
				Help:    "Decode duration in seconds by phase",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"phase"},
		),

		CompressedSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "marble_replay_compressed_bytes",
				Help:    "Size of decoded replay buffers in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),

		InflatedSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "marble_replay_inflated_bytes",
				Help:    "Size of inflated replay payloads in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),

		Rewindables: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "marble_replay_rewindables_total",
				Help: "Total number of rewindables decoded",
			},
		),

		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marble_replay_decode_errors_total",
				Help: "Total number of failed decodes by error kind",
			},
			[]string{"kind"},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) RecordDecodeDuration(phase string, duration time.Duration) {
	c.DecodeDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

func (c *Collector) RecordBytes(compressed, inflated int64) {
	c.CompressedSize.Observe(float64(compressed))
	c.InflatedSize.Observe(float64(inflated))
}

func (c *Collector) RecordRewindables(count int) {
	c.Rewindables.Add(float64(count))
}

func (c *Collector) RecordError(kind string) {
	c.Errors.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the current metrics in the text exposition format,
// for the node exporter's textfile collector
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
