package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raniellyferreira/marble-replay/internal/fixture"
	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/replay"
)

func TestParseReplay(t *testing.T) {
	buffer := fixture.BufferBytes(4, 2, fixture.Payload(protocol.StringFixed32, fixture.Level()...))

	rp, err := replay.ParseReplay(fixture.Envelope(buffer))
	require.NoError(t, err)

	assert.Equal(t, int32(1), rp.TypeID)
	assert.Equal(t, int32(3), rp.Version)
	assert.Equal(t, "2024-05-01T12:00:00Z", rp.UpdatedAt)
	assert.Equal(t, "Learning To Roll", rp.Data.Level)
	assert.Equal(t, 12.5, rp.Data.Score)
	assert.Equal(t, "none", rp.Data.Cosmetics.Hat)
	assert.Equal(t, buffer, rp.Data.ReplayBuffer)
	assert.Contains(t, rp.Data.String(), "replayBuffer=")

	buf, err := rp.DecodeReplayBuffer()
	require.NoError(t, err)
	assert.Equal(t, replay.Header{Session: 4, Version: 2}, buf.Header)
	assert.Len(t, buf.Rewindables, 5)
}

func TestParseReplayMalformed(t *testing.T) {
	tests := map[string][]byte{
		"empty":         {},
		"not a map":     {0xC3},
		"truncated map": {0x84, 0xA6, 't', 'y'},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			rp, err := replay.ParseReplay(data)
			require.ErrorIs(t, err, replay.ErrStructuralDecode)
			assert.Nil(t, rp)
		})
	}
}
