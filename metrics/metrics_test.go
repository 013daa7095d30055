package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marblereplay "github.com/raniellyferreira/marble-replay"
	"github.com/raniellyferreira/marble-replay/internal/fixture"
	"github.com/raniellyferreira/marble-replay/metrics"
	"github.com/raniellyferreira/marble-replay/protocol"
)

var _ marblereplay.MetricsCollector = (*metrics.Collector)(nil)

func TestCollectorTextfile(t *testing.T) {
	c := metrics.New()
	c.RecordDecodeDuration("buffer", 2*time.Millisecond)
	c.RecordBytes(1500, 9000)
	c.RecordRewindables(5)
	c.RecordRewindables(2)
	c.RecordError("unexpected_eof")

	path := filepath.Join(t.TempDir(), "replay.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `marble_replay_decode_duration_seconds_count{phase="buffer"} 1`)
	assert.Contains(t, text, "marble_replay_compressed_bytes_sum 1500")
	assert.Contains(t, text, "marble_replay_inflated_bytes_sum 9000")
	assert.Contains(t, text, "marble_replay_rewindables_total 7")
	assert.Contains(t, text, `marble_replay_decode_errors_total{kind="unexpected_eof"} 1`)
}

func TestCollectorWithDecoder(t *testing.T) {
	c := metrics.New()
	dec, err := marblereplay.New(marblereplay.WithMetrics(c))
	require.NoError(t, err)

	raw := fixture.BufferBytes(1, 1, fixture.Payload(protocol.StringFixed32, fixture.Level()...))
	_, err = dec.DecodeBuffer(raw)
	require.NoError(t, err)
	_, err = dec.DecodeBuffer(raw[:4])
	require.Error(t, err)

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["marble_replay_rewindables_total"])
	assert.True(t, names["marble_replay_decode_errors_total"])
	assert.True(t, names["marble_replay_decode_duration_seconds"])
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.RecordRewindables(3)

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "marble_replay_rewindables_total" {
			assert.Zero(t, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}
