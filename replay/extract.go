package replay

import "slices"

// Extract removes and returns every rewindable whose type name is typeName.
// Both the result and the remaining rewindables keep stream order.
func (b *Buffer) Extract(typeName string) []Rewindable {
	var out []Rewindable
	kept := b.Rewindables[:0]
	for _, rw := range b.Rewindables {
		if rw.TypeName == typeName {
			out = append(out, rw)
		} else {
			kept = append(kept, rw)
		}
	}
	clear(b.Rewindables[len(kept):])
	b.Rewindables = kept
	return out
}

// Marble removes and returns the first MarbleController rewindable
func (b *Buffer) Marble() (Marble, error) {
	i := slices.IndexFunc(b.Rewindables, func(rw Rewindable) bool {
		return rw.TypeName == TypeMarbleController
	})
	if i < 0 {
		return Marble{}, ErrNoMarbleController
	}

	m := Marble{Rewindable: b.Rewindables[i]}
	b.Rewindables = slices.Delete(b.Rewindables, i, i+1)
	return m, nil
}

// Powerups removes and returns all Powerup rewindables
func (b *Buffer) Powerups() []Powerup {
	matches := b.Extract(TypePowerup)
	out := make([]Powerup, 0, len(matches))
	for _, rw := range matches {
		out = append(out, Powerup{Rewindable: rw})
	}
	return out
}

// Bumpers removes and returns all BumperController rewindables
func (b *Buffer) Bumpers() []Bumper {
	matches := b.Extract(TypeBumperController)
	out := make([]Bumper, 0, len(matches))
	for _, rw := range matches {
		out = append(out, Bumper{Rewindable: rw})
	}
	return out
}

// Elevators removes and returns all ElevatorMover rewindables
func (b *Buffer) Elevators() []Elevator {
	matches := b.Extract(TypeElevatorMover)
	out := make([]Elevator, 0, len(matches))
	for _, rw := range matches {
		out = append(out, Elevator{Rewindable: rw})
	}
	return out
}

// TypeCounts returns how many rewindables of each type name remain
func (b *Buffer) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, rw := range b.Rewindables {
		counts[rw.TypeName]++
	}
	return counts
}
