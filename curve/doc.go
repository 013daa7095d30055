// Package curve decodes the type-tagged animation curves stored for every
// field of a rewindable object.
//
// Each field payload starts with a tag (Type) naming its element type. Scalar
// tags decode to a *Fitter[T] holding one Curve[T]; the two array tags decode
// to a *FitterArray[T] holding one fitter per element. Both satisfy Variant,
// so a field can be stored without knowing its element type and narrowed
// later:
//
//	v, err := curve.Decode(r, curve.TypeVector3)
//	if err != nil {
//		return err
//	}
//	field := curve.Field{Name: "Position", Type: curve.TypeVector3, Curve: v}
//	pos, err := curve.As[*curve.Fitter[curve.Vector3]](field, curve.TypeVector3)
//
// Value records are decoded component by component in little-endian order
// through a fixed table keyed by tag. Tags are validated twice: once by the
// caller that read the field header and once by the fitter that re-reads its
// own tag.
package curve
