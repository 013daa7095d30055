package replay

import "github.com/raniellyferreira/marble-replay/curve"

// Marble is the player's MarbleController rewindable
type Marble struct {
	Rewindable
}

func (m Marble) StartingRemainingTicks() (*curve.Fitter[int32], error) {
	return curve.FitterOf[int32](m.Fields, "StartingRemainingTicks", curve.TypeInt)
}

func (m Marble) Mode() (*curve.Fitter[int32], error) {
	return curve.FitterOf[int32](m.Fields, "Mode", curve.TypeInt)
}

func (m Marble) InvokableEffectID() (*curve.Fitter[uint16], error) {
	return curve.FitterOf[uint16](m.Fields, "InvokableEffectId", curve.TypeUShort)
}

func (m Marble) InvokableSourceID() (*curve.Fitter[uint16], error) {
	return curve.FitterOf[uint16](m.Fields, "InvokableSourceId", curve.TypeUShort)
}

func (m Marble) EffectState() (*curve.FitterArray[uint32], error) {
	return curve.ArrayOf[uint32](m.Fields, "EffectState", curve.TypeUInt32Array)
}

func (m Marble) EffectTicks() (*curve.FitterArray[int32], error) {
	return curve.ArrayOf[int32](m.Fields, "EffectTicks", curve.TypeInt32Array)
}

// QW is the marble's rotation
func (m Marble) QW() (*curve.Fitter[curve.Quaternion], error) {
	return curve.FitterOf[curve.Quaternion](m.Fields, "qW", curve.TypeQuaternion)
}

func (m Marble) GravityQuat() (*curve.Fitter[curve.Quaternion], error) {
	return curve.FitterOf[curve.Quaternion](m.Fields, "GravityQuat", curve.TypeQuaternion)
}

func (m Marble) Position() (*curve.Fitter[curve.Vector3], error) {
	return curve.FitterOf[curve.Vector3](m.Fields, "Position", curve.TypeVector3)
}

func (m Marble) Velocity() (*curve.Fitter[curve.Vector3], error) {
	return curve.FitterOf[curve.Vector3](m.Fields, "Velocity", curve.TypeVector3)
}

// Omega is the angular velocity
func (m Marble) Omega() (*curve.Fitter[curve.Vector3], error) {
	return curve.FitterOf[curve.Vector3](m.Fields, "Omega", curve.TypeVector3)
}

func (m Marble) BonusTime() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](m.Fields, "BonusTime", curve.TypeFloat)
}

func (m Marble) TimeSinceContact() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](m.Fields, "TimeSinceContact", curve.TypeFloat)
}

func (m Marble) BestContactNormal() (*curve.Fitter[curve.Vector3], error) {
	return curve.FitterOf[curve.Vector3](m.Fields, "BestContactNormal", curve.TypeVector3)
}

func (m Marble) BestContactSurfaceVelocity() (*curve.Fitter[curve.Vector3], error) {
	return curve.FitterOf[curve.Vector3](m.Fields, "BestContactSurfaceVelocity", curve.TypeVector3)
}

func (m Marble) ElapsedTime() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](m.Fields, "ElapsedTime", curve.TypeFloat)
}

func (m Marble) CollectedGems() (*curve.Fitter[uint16], error) {
	return curve.FitterOf[uint16](m.Fields, "CollectedGems", curve.TypeUShort)
}

func (m Marble) MegaMarbleSizeScale() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](m.Fields, "MegaMarbleSizeScale", curve.TypeFloat)
}

func (m Marble) DoneFirstBounce() (*curve.Fitter[bool], error) {
	return curve.FitterOf[bool](m.Fields, "DoneFirstBounce", curve.TypeBool)
}

func (m Marble) BlastCooldown() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](m.Fields, "BlastCooldown", curve.TypeFloat)
}

func (m Marble) RespawnCounter() (*curve.Fitter[int32], error) {
	return curve.FitterOf[int32](m.Fields, "RespawnCounter", curve.TypeInt)
}

// Powerup is a Powerup rewindable
type Powerup struct {
	Rewindable
}

func (p Powerup) AvailableForPickup() (*curve.Fitter[bool], error) {
	return curve.FitterOf[bool](p.Fields, "AvailableForPickup", curve.TypeBool)
}

func (p Powerup) PointValue() (*curve.Fitter[uint16], error) {
	return curve.FitterOf[uint16](p.Fields, "PointValue", curve.TypeUShort)
}

// Bumper is a BumperController rewindable
type Bumper struct {
	Rewindable
}

func (b Bumper) StrikeTimeLeft() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](b.Fields, "StrikeTimeLeft", curve.TypeFloat)
}

// Elevator is an ElevatorMover rewindable
type Elevator struct {
	Rewindable
}

// T is the elevator's path position in ticks
func (e Elevator) T() (*curve.Fitter[int32], error) {
	return curve.FitterOf[int32](e.Fields, "T", curve.TypeInt)
}

func (e Elevator) Collapsing() (*curve.Fitter[bool], error) {
	return curve.FitterOf[bool](e.Fields, "Collapsing", curve.TypeBool)
}

func (e Elevator) StopTime() (*curve.Fitter[float32], error) {
	return curve.FitterOf[float32](e.Fields, "StopTime", curve.TypeFloat)
}

func (e Elevator) EnableBob() (*curve.Fitter[bool], error) {
	return curve.FitterOf[bool](e.Fields, "EnableBob", curve.TypeBool)
}

func (e Elevator) GlobalTime() (*curve.Fitter[int32], error) {
	return curve.FitterOf[int32](e.Fields, "GlobalTime", curve.TypeInt)
}
