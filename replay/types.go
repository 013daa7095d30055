package replay

import (
	"errors"

	"github.com/raniellyferreira/marble-replay/curve"
)

// Error types for replay decoding
var (
	// ErrStructuralDecode indicates the outer envelope could not be decoded
	ErrStructuralDecode = errors.New("malformed replay envelope")

	// ErrDecompression indicates the compressed payload is not a valid raw deflate stream
	ErrDecompression = errors.New("replay payload decompression failed")

	// ErrNoMarbleController indicates the buffer holds no MarbleController rewindable
	ErrNoMarbleController = errors.New("replay is missing a 'MarbleController' rewindable")
)

// Rewindable type names used by the game
const (
	TypeMarbleController = "MarbleController"
	TypePowerup          = "Powerup"
	TypeBumperController = "BumperController"
	TypeElevatorMover    = "ElevatorMover"
)

// Header is the uncompressed prefix of a replay buffer
type Header struct {
	Session int32
	Version int32
}

// Buffer is a fully decoded replay buffer.
//
// RewindableCount is the count declared by the stream. It equals
// len(Rewindables) after decoding and is not changed by extraction.
type Buffer struct {
	Header          Header
	RewindableCount int32
	Rewindables     []Rewindable

	// InflatedSize is the size of the decompressed payload in bytes
	InflatedSize int
}

// Rewindable is one recorded game object and its sampled fields in stream order
type Rewindable struct {
	GameObjectName string
	TypeName       string
	RefPos         curve.Vector3
	Fields         []curve.Field
}

// Field returns the first field called name
func (r *Rewindable) Field(name string) (curve.Field, error) {
	return curve.Lookup(r.Fields, name)
}

// Logger interface for decoder logging
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...interface{}) {}
func (nopLogger) Info(msg string, fields ...interface{})  {}
func (nopLogger) Error(msg string, fields ...interface{}) {}
