package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marblereplay "github.com/raniellyferreira/marble-replay"
	"github.com/raniellyferreira/marble-replay/internal/fixture"
	"github.com/raniellyferreira/marble-replay/protocol"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...marblereplay.Field) {}
func (nopLogger) Info(string, ...marblereplay.Field)  {}
func (nopLogger) Error(string, ...marblereplay.Field) {}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// replayTree lays out:
//
//	a.replay        full level
//	bad.replay      not an envelope
//	notes.txt       ignored
//	sub/b.replay    copy of a.replay
//	sub/c.replay    marble only
func replayTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	level := fixture.Envelope(fixture.BufferBytes(1, 1, fixture.Payload(protocol.StringFixed32, fixture.Level()...)))
	marble := fixture.Envelope(fixture.BufferBytes(1, 1, fixture.Payload(protocol.StringFixed32, fixture.Marble())))

	writeFile(t, filepath.Join(root, "a.replay"), level)
	writeFile(t, filepath.Join(root, "bad.replay"), []byte{0xC3, 0x01, 0x02})
	writeFile(t, filepath.Join(root, "notes.txt"), []byte("not a replay"))
	writeFile(t, filepath.Join(root, "sub", "b.replay"), level)
	writeFile(t, filepath.Join(root, "sub", "c.replay"), marble)
	return root
}

func newScanner(t *testing.T) *Scanner {
	t.Helper()
	dec, err := marblereplay.New(marblereplay.WithLogger(nopLogger{}))
	require.NoError(t, err)
	return &Scanner{Decoder: dec, Workers: 4, Logger: nopLogger{}}
}

func TestScan(t *testing.T) {
	root := replayTree(t)
	s := newScanner(t)

	results, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, results, 4)

	var rel []string
	for _, r := range results {
		p, err := filepath.Rel(root, r.Path)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(p))
	}
	assert.Equal(t, []string{"a.replay", "bad.replay", "sub/b.replay", "sub/c.replay"}, rel)

	a, bad, b, c := results[0], results[1], results[2], results[3]

	assert.NoError(t, a.Err)
	assert.False(t, a.Duplicate)
	assert.Equal(t, 5, a.Rewindables)
	assert.Equal(t, 2, a.Types["Powerup"])

	assert.ErrorIs(t, bad.Err, marblereplay.ErrStructuralDecode)

	assert.True(t, b.Duplicate)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Rewindables, b.Rewindables)

	assert.NoError(t, c.Err)
	assert.Equal(t, 1, c.Rewindables)
	assert.NotEqual(t, a.Fingerprint, c.Fingerprint)

	sum := Summarize(results)
	assert.Equal(t, Summary{
		Files:       4,
		Decoded:     2,
		Failed:      1,
		Duplicates:  1,
		Rewindables: 6,
		Bytes:       a.Size + bad.Size + b.Size + c.Size,
		Types: map[string]int{
			"Powerup":          2,
			"MarbleController": 2,
			"BumperController": 1,
			"ElevatorMover":    1,
		},
	}, sum)
}

func TestScanFailFast(t *testing.T) {
	root := replayTree(t)
	s := newScanner(t)
	s.Workers = 1
	s.FailFast = true

	results, err := s.Scan(context.Background(), root)
	require.ErrorIs(t, err, marblereplay.ErrStructuralDecode)
	assert.Contains(t, err.Error(), "bad.replay")
	assert.Len(t, results, 2)
}

func TestScanCustomExt(t *testing.T) {
	root := replayTree(t)
	s := newScanner(t)
	s.Ext = ".txt"

	results, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestScanCanceled(t *testing.T) {
	root := replayTree(t)
	s := newScanner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := s.Scan(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestScanErrors(t *testing.T) {
	s := &Scanner{}
	_, err := s.Scan(context.Background(), t.TempDir())
	assert.Error(t, err, "scanner without decoder")

	s = newScanner(t)
	_, err = s.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	results, err := s.Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, results)
}
