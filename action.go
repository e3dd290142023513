package keyframe

import "fmt"

// Action is one property's animation definition: which writable to drive,
// the value it should reach, optionally how to get there, and what to do
// when its time point fires. Actions are built with [NewAction] and are
// immutable afterwards except for the execution counter.
//
// Actions must not be shared between templates; the counter belongs to
// exactly one template instance at a time.
type Action struct {
	target      Writable
	end         float64
	interp      Interpolator // nil means use the template config's default
	executeWhen func() bool  // nil means always
	onFinish    func(FinishEvent)
	executions  int
}

// Target returns the writable this action drives.
func (a *Action) Target() Writable { return a.target }

// End returns the value the target reaches at the action's time point.
func (a *Action) End() float64 { return a.end }

// Interpolator returns the action's own interpolator, or nil if the action
// defers to the template config's default.
func (a *Action) Interpolator() Interpolator { return a.interp }

// Executions reports how many firings this action has completed since its
// template was built. The counter is monotonic for the lifetime of one
// template instance; it survives replays of a compiled schedule and is only
// zeroed when a new template is built. ExecuteWhen predicates may read it to
// gate future firings on past completions:
//
//	var once *keyframe.Action
//	once, _ = keyframe.NewAction().
//		Target(t).End(1).
//		ExecuteWhen(func() bool { return once.Executions() == 0 }).
//		Build()
func (a *Action) Executions() int { return a.executions }

// runs evaluates the execution gate. A nil predicate always runs.
func (a *Action) runs() bool {
	return a.executeWhen == nil || a.executeWhen()
}

// fire invokes the completion handler, converting a handler panic into a
// returned value so sibling handlers in a combined callback still run.
func (a *Action) fire(ev FinishEvent) (recovered any) {
	defer func() { recovered = recover() }()
	if a.onFinish != nil {
		a.onFinish(ev)
	}
	return nil
}

// ActionBuilder assembles an Action. Obtain one with [NewAction]; the zero
// value is not usable.
type ActionBuilder struct {
	a Action
}

// NewAction starts building an Action.
func NewAction() *ActionBuilder {
	return &ActionBuilder{}
}

// Target sets the writable the action drives. Required.
func (b *ActionBuilder) Target(w Writable) *ActionBuilder {
	b.a.target = w
	return b
}

// End sets the value the target reaches at the action's time point.
func (b *ActionBuilder) End(v float64) *ActionBuilder {
	b.a.end = v
	return b
}

// Interpolate overrides the template config's default interpolator for this
// action only.
func (b *ActionBuilder) Interpolate(fn Interpolator) *ActionBuilder {
	b.a.interp = fn
	return b
}

// ExecuteWhen sets the gating predicate. It is re-evaluated on every
// interpolation query and at every firing; once it reports false during
// interpolation the action's value freezes (see [Conditional]), and at a
// firing a false result skips the action's completion handler and counter.
func (b *ActionBuilder) ExecuteWhen(pred func() bool) *ActionBuilder {
	b.a.executeWhen = pred
	return b
}

// OnFinish sets the completion handler invoked when the action's time point
// fires and its gate allows it. Only the discrete backend compiles these in;
// the continuous backend does not support per-action completion.
func (b *ActionBuilder) OnFinish(fn func(FinishEvent)) *ActionBuilder {
	b.a.onFinish = fn
	return b
}

// Build validates and returns the finished Action.
func (b *ActionBuilder) Build() (*Action, error) {
	if b.a.target == nil {
		return nil, fmt.Errorf("keyframe: action has no target")
	}
	a := b.a
	return &a, nil
}
