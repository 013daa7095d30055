package curve

import (
	"encoding/binary"
	"math"

	"github.com/raniellyferreira/marble-replay/protocol"
)

// Vector2 is a pair of float32 components
type Vector2 struct {
	X, Y float32
}

// Vector3 is a triple of float32 components
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is a rotation stored as x, y, z, w
type Quaternion struct {
	X, Y, Z, W float32
}

// ReadVector3 reads three consecutive float32 components
func ReadVector3(r *protocol.Reader) (Vector3, error) {
	b, err := r.ReadBytes(12)
	if err != nil {
		return Vector3{}, err
	}
	return decodeVector3(b, 0)
}

func f32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func decodeFloat(rec []byte, _ int) (float32, error) {
	return f32(rec), nil
}

func decodeInt(rec []byte, _ int) (int32, error) {
	return int32(binary.LittleEndian.Uint32(rec)), nil
}

func decodeUInt32(rec []byte, _ int) (uint32, error) {
	return binary.LittleEndian.Uint32(rec), nil
}

func decodeUShort(rec []byte, _ int) (uint16, error) {
	return binary.LittleEndian.Uint16(rec), nil
}

func decodeBool(rec []byte, offset int) (bool, error) {
	switch rec[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &protocol.BoolError{Offset: offset, Value: rec[0]}
	}
}

func decodeVector2(rec []byte, _ int) (Vector2, error) {
	return Vector2{X: f32(rec[0:]), Y: f32(rec[4:])}, nil
}

func decodeVector3(rec []byte, _ int) (Vector3, error) {
	return Vector3{X: f32(rec[0:]), Y: f32(rec[4:]), Z: f32(rec[8:])}, nil
}

func decodeQuaternion(rec []byte, _ int) (Quaternion, error) {
	return Quaternion{X: f32(rec[0:]), Y: f32(rec[4:]), Z: f32(rec[8:]), W: f32(rec[12:])}, nil
}
