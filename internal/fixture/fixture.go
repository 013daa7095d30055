// Package fixture builds replay buffers and envelopes for tests and examples.
package fixture

import (
	"bytes"

	"github.com/klauspost/compress/flate"

	"github.com/raniellyferreira/marble-replay/curve"
	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/replay"
)

// Field is one encoded rewindable field. Write emits the fitter payload,
// starting with the fitter's own tag.
type Field struct {
	Index int32
	Name  string
	Type  curve.Type
	Write func(w *protocol.Writer)
}

// Rewindable is an encodable rewindable
type Rewindable struct {
	GameObjectName string
	TypeName       string
	RefPos         curve.Vector3
	Fields         []Field
}

// Time returns the timestamp used for sample i
func Time(i int) float32 {
	return float32(i) / 60
}

// WriteFitter writes a scalar fitter whose samples are stamped with Time(i)
func WriteFitter[T any](w *protocol.Writer, tag curve.Type, interpolated bool, values []T, put func(*protocol.Writer, T)) {
	w.WriteInt32(int32(tag))
	w.WriteBool(interpolated)
	w.WriteInt32(int32(len(values)))
	w.WriteBool(interpolated)
	for i := range values {
		w.WriteFloat32(Time(i))
	}
	for _, v := range values {
		put(w, v)
	}
}

func scalar[T any](index int32, name string, tag curve.Type, values []T, put func(*protocol.Writer, T)) Field {
	return Field{
		Index: index,
		Name:  name,
		Type:  tag,
		Write: func(w *protocol.Writer) {
			WriteFitter(w, tag, true, values, put)
		},
	}
}

func array[T any](index int32, name string, tag curve.Type, elements [][]T, put func(*protocol.Writer, T)) Field {
	elem, _ := tag.ElementType()
	return Field{
		Index: index,
		Name:  name,
		Type:  tag,
		Write: func(w *protocol.Writer) {
			w.WriteInt32(int32(tag))
			w.WriteBool(false)
			w.WriteInt32(int32(len(elements)))
			for _, values := range elements {
				// element flags are overridden by the array flag on decode
				WriteFitter(w, elem, true, values, put)
			}
		},
	}
}

func Float(index int32, name string, values ...float32) Field {
	return scalar(index, name, curve.TypeFloat, values, PutFloat)
}

func Int(index int32, name string, values ...int32) Field {
	return scalar(index, name, curve.TypeInt, values, PutInt)
}

func Bool(index int32, name string, values ...bool) Field {
	return scalar(index, name, curve.TypeBool, values, PutBool)
}

func UShort(index int32, name string, values ...uint16) Field {
	return scalar(index, name, curve.TypeUShort, values, PutUShort)
}

func UInt32(index int32, name string, values ...uint32) Field {
	return scalar(index, name, curve.TypeUInt32, values, PutUInt32)
}

func Vector2(index int32, name string, values ...curve.Vector2) Field {
	return scalar(index, name, curve.TypeVector2, values, PutVector2)
}

func Vector3(index int32, name string, values ...curve.Vector3) Field {
	return scalar(index, name, curve.TypeVector3, values, PutVector3)
}

func Quaternion(index int32, name string, values ...curve.Quaternion) Field {
	return scalar(index, name, curve.TypeQuaternion, values, PutQuaternion)
}

func UInt32Array(index int32, name string, elements ...[]uint32) Field {
	return array(index, name, curve.TypeUInt32Array, elements, PutUInt32)
}

func Int32Array(index int32, name string, elements ...[]int32) Field {
	return array(index, name, curve.TypeInt32Array, elements, PutInt)
}

// Raw is a field whose payload is written verbatim, for malformed input
func Raw(index int32, name string, tag curve.Type, write func(w *protocol.Writer)) Field {
	return Field{Index: index, Name: name, Type: tag, Write: write}
}

func PutFloat(w *protocol.Writer, v float32) { w.WriteFloat32(v) }
func PutInt(w *protocol.Writer, v int32)     { w.WriteInt32(v) }
func PutUInt32(w *protocol.Writer, v uint32) { w.WriteUint32(v) }
func PutUShort(w *protocol.Writer, v uint16) { w.WriteUint16(v) }
func PutBool(w *protocol.Writer, v bool)     { w.WriteBool(v) }

func PutVector2(w *protocol.Writer, v curve.Vector2) {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
}

func PutVector3(w *protocol.Writer, v curve.Vector3) {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
	w.WriteFloat32(v.Z)
}

func PutQuaternion(w *protocol.Writer, v curve.Quaternion) {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
	w.WriteFloat32(v.Z)
	w.WriteFloat32(v.W)
}

// WriteRewindable appends one rewindable to w
func WriteRewindable(w *protocol.Writer, rw Rewindable) {
	w.WriteString(rw.GameObjectName)
	w.WriteString(rw.TypeName)
	PutVector3(w, rw.RefPos)
	w.WriteInt32(int32(len(rw.Fields)))
	for _, f := range rw.Fields {
		w.WriteInt32(f.Index)
		w.WriteString(f.Name)
		w.WriteInt32(int32(f.Type))
		f.Write(w)
	}
}

// Payload encodes the uncompressed rewindable stream
func Payload(enc protocol.StringEncoding, rws ...Rewindable) []byte {
	w := protocol.NewWriter(enc)
	w.WriteInt32(int32(len(rws)))
	for _, rw := range rws {
		WriteRewindable(w, rw)
	}
	return w.Bytes()
}

// Deflate compresses payload as a raw deflate stream
func Deflate(payload []byte) []byte {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		panic(err) // constant level
	}
	fw.Write(payload)
	fw.Close()
	return buf.Bytes()
}

// BufferBytes returns a complete replay buffer around an uncompressed payload
func BufferBytes(session, version int32, payload []byte) []byte {
	w := protocol.NewWriter(protocol.StringFixed32)
	w.WriteInt32(session)
	w.WriteInt32(version)
	w.WriteBytes(Deflate(payload))
	return w.Bytes()
}

// Envelope wraps a replay buffer in a MessagePack envelope
func Envelope(buffer []byte) []byte {
	out, err := replay.MarshalEnvelope(&replay.Replay{
		TypeID:    1,
		Version:   3,
		UpdatedAt: "2024-05-01T12:00:00Z",
		Data: replay.Data{
			Level:  "Learning To Roll",
			Player: "fixture",
			Score:  12.5,
			Cosmetics: replay.Cosmetics{
				Skin:    "default",
				Trail:   "none",
				Respawn: "default",
				Hat:     "none",
				Blast:   "default",
			},
			ReplayBuffer: buffer,
		},
	})
	if err != nil {
		panic(err)
	}
	return out
}

// Marble returns a MarbleController carrying every field the typed accessors read
func Marble() Rewindable {
	return Rewindable{
		GameObjectName: "Marble",
		TypeName:       replay.TypeMarbleController,
		RefPos:         curve.Vector3{X: 0, Y: 1, Z: 0},
		Fields: []Field{
			Int(0, "StartingRemainingTicks", 6000, 5999),
			Int(1, "Mode", 0, 0),
			UShort(2, "InvokableEffectId", 0, 3),
			UShort(3, "InvokableSourceId", 0, 1),
			UInt32Array(4, "EffectState", []uint32{0, 1}, []uint32{2}),
			Int32Array(5, "EffectTicks", []int32{10, 9}),
			Quaternion(6, "qW", curve.Quaternion{W: 1}, curve.Quaternion{Y: 0.5, W: 0.5}),
			Quaternion(7, "GravityQuat", curve.Quaternion{W: 1}),
			Vector3(8, "Position", curve.Vector3{Y: 1}, curve.Vector3{X: 0.5, Y: 1}),
			Vector3(9, "Velocity", curve.Vector3{}, curve.Vector3{X: 30}),
			Vector3(10, "Omega", curve.Vector3{}, curve.Vector3{Z: -2}),
			Float(11, "BonusTime", 0, 0),
			Float(12, "TimeSinceContact", 0, 0.016),
			Vector3(13, "BestContactNormal", curve.Vector3{Y: 1}),
			Vector3(14, "BestContactSurfaceVelocity", curve.Vector3{}),
			Float(15, "ElapsedTime", 0, 0.016),
			UShort(16, "CollectedGems", 0, 1),
			Float(17, "MegaMarbleSizeScale", 1, 1),
			Bool(18, "DoneFirstBounce", false, true),
			Float(19, "BlastCooldown", 0, 0),
			Int(20, "RespawnCounter", 0, 0),
		},
	}
}

// Powerup returns a Powerup rewindable
func Powerup(name string) Rewindable {
	return Rewindable{
		GameObjectName: name,
		TypeName:       replay.TypePowerup,
		RefPos:         curve.Vector3{X: 3, Y: 0, Z: 4},
		Fields: []Field{
			Bool(0, "AvailableForPickup", true, false),
			UShort(1, "PointValue", 100),
		},
	}
}

// Bumper returns a BumperController rewindable
func Bumper(name string) Rewindable {
	return Rewindable{
		GameObjectName: name,
		TypeName:       replay.TypeBumperController,
		Fields: []Field{
			Float(0, "StrikeTimeLeft", 0, 0.25),
		},
	}
}

// Elevator returns an ElevatorMover rewindable
func Elevator(name string) Rewindable {
	return Rewindable{
		GameObjectName: name,
		TypeName:       replay.TypeElevatorMover,
		Fields: []Field{
			Int(0, "T", 0, 1),
			Bool(1, "Collapsing", false, false),
			Float(2, "StopTime", 0),
			Bool(3, "EnableBob", true),
			Int(4, "GlobalTime", 100, 101),
		},
	}
}

// Level returns the rewindables of a small level, in stream order:
// powerup, marble, bumper, powerup, elevator
func Level() []Rewindable {
	return []Rewindable{
		Powerup("Gem_1"),
		Marble(),
		Bumper("Bumper_1"),
		Powerup("Gem_2"),
		Elevator("Elevator_1"),
	}
}
