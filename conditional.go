package keyframe

// Conditional wraps an interpolator with a gating predicate. While the gate
// reports true the wrapped interpolator runs normally. The first time the
// gate reports false, the target's value at that instant is captured and
// every later query returns it unchanged, no matter how far progress
// advances. The transition is one-way: a frozen Conditional never re-arms;
// recompiling the template produces fresh ones.
//
// This lets a template express "animate this property only while some
// external condition holds" without the compilers knowing anything about
// conditions.
type Conditional struct {
	fn     Interpolator
	gate   func() bool
	target Writable
	frozen bool
	held   float64
}

// NewConditional wraps fn so interpolation toward target only advances while
// gate reports true. A nil gate never freezes.
func NewConditional(fn Interpolator, gate func() bool, target Writable) *Conditional {
	return &Conditional{fn: fn, gate: gate, target: target}
}

// Value returns the interpolated value between start and end at progress t.
// The gate is re-evaluated on every query until the first false, after which
// the captured value is returned unconditionally.
func (c *Conditional) Value(start, end, t float64) float64 {
	if c.frozen {
		return c.held
	}
	if c.gate != nil && !c.gate() {
		c.frozen = true
		c.held = c.target.Get()
		return c.held
	}
	return Lerp(start, end, t, c.fn)
}

// Frozen reports whether the gate has been observed false.
func (c *Conditional) Frozen() bool { return c.frozen }
