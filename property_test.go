package keyframe

import "testing"

func TestVarGetSet(t *testing.T) {
	v := NewVar(3.5)
	if got := v.Get(); got != 3.5 {
		t.Errorf("Get() = %v, want 3.5", got)
	}
	v.Set(-1)
	if got := v.Get(); got != -1 {
		t.Errorf("Get() after Set(-1) = %v, want -1", got)
	}
}

func TestFieldWritesInPlace(t *testing.T) {
	sprite := struct{ X float64 }{X: 7}
	w := Field(&sprite.X)
	if got := w.Get(); got != 7 {
		t.Errorf("Get() = %v, want 7", got)
	}
	w.Set(42)
	if sprite.X != 42 {
		t.Errorf("sprite.X = %v, want 42", sprite.X)
	}
}

func TestFieldComparable(t *testing.T) {
	// The timeline keys segment chains by target, so two Field wrappers
	// around the same pointer must compare equal.
	x := 0.0
	if Field(&x) != Field(&x) {
		t.Error("Field(&x) != Field(&x), want equal")
	}
	y := 0.0
	if Field(&x) == Field(&y) {
		t.Error("Field(&x) == Field(&y), want distinct")
	}
}
