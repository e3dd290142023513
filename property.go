package keyframe

// Writable is an opaque handle to a mutable external value. The engine only
// ever reads and writes through it; ownership stays with the caller, and the
// engine never assumes any other capability.
//
// Implementations must be comparable (the timeline uses them as map keys when
// chaining segments that target the same property), so use pointer receivers
// or wrap a pointer as [Field] does.
type Writable interface {
	Get() float64
	Set(float64)
}

// Var is a standalone writable value, convenient for values that do not
// already live in a struct field.
type Var struct {
	v float64
}

// NewVar returns a Var holding the given initial value.
func NewVar(v float64) *Var {
	return &Var{v: v}
}

// Get returns the current value.
func (v *Var) Get() float64 { return v.v }

// Set replaces the current value.
func (v *Var) Set(x float64) { v.v = x }

// fieldProp adapts an existing float64 field to the Writable interface.
type fieldProp struct {
	p *float64
}

func (f fieldProp) Get() float64  { return *f.p }
func (f fieldProp) Set(x float64) { *f.p = x }

// Field wraps a pointer to a float64 so an existing struct field can be
// animated in place:
//
//	sprite := struct{ X, Y float64 }{}
//	action, _ := keyframe.NewAction().Target(keyframe.Field(&sprite.X)).End(100).Build()
func Field(p *float64) Writable {
	return fieldProp{p: p}
}
