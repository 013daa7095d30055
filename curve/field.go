package curve

// Field is one named, tagged curve of a rewindable
type Field struct {
	Index int32
	Name  string
	Type  Type
	Curve Variant
}

// Lookup returns the first field called name
func Lookup(fields []Field, name string) (Field, error) {
	for _, f := range fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, &MissingFieldError{Name: name}
}

// As narrows a field's payload to V after checking its tag against want
func As[V Variant](f Field, want Type) (V, error) {
	var zero V
	if f.Type != want {
		return zero, &MismatchError{Expected: want, Found: f.Type}
	}

	v, ok := f.Curve.(V)
	if !ok {
		found := f.Type
		if f.Curve != nil {
			found = f.Curve.CurveType()
		}
		return zero, &MismatchError{Expected: want, Found: found}
	}
	return v, nil
}

// FitterOf looks up a scalar field by name and narrows it to *Fitter[T]
func FitterOf[T any](fields []Field, name string, want Type) (*Fitter[T], error) {
	f, err := Lookup(fields, name)
	if err != nil {
		return nil, err
	}
	return As[*Fitter[T]](f, want)
}

// ArrayOf looks up an array field by name and narrows it to *FitterArray[T]
func ArrayOf[T any](fields []Field, name string, want Type) (*FitterArray[T], error) {
	f, err := Lookup(fields, name)
	if err != nil {
		return nil, err
	}
	return As[*FitterArray[T]](f, want)
}
