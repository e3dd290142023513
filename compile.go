package keyframe

import "time"

// Schedule is the executable, backend-native form of a compiled template.
// Both backends share the same drive surface: the host loop starts the
// schedule and advances it synchronously; nothing here blocks or spawns
// goroutines.
type Schedule interface {
	Start()
	Stop()
	Advance(dt time.Duration)
	Running() bool
}

// Compiler turns a template into a schedule for one backend. The two
// implementations, [TimelineCompiler] and [TimerCompiler], differ in which
// parts of the template's policy their backend can honor.
type Compiler interface {
	Compile(t *Template) Schedule
}

var (
	_ Compiler = TimelineCompiler{}
	_ Compiler = TimerCompiler{}
	_ Schedule = (*Timeline)(nil)
	_ Schedule = (*Timer)(nil)
)

// TimelineCompiler compiles a template for the discrete backend, honoring
// the full policy set: delay, rate, cycle count, auto-reverse and the
// schedule-level completion callback.
type TimelineCompiler struct{}

// Compile builds a [Timeline] from the template. Each distinct absolute
// time yields exactly one frame: buckets are coalesced per percent when the
// template is built, and percents that round to the same absolute time are
// merged here, so the frame list is strictly ascending.
func (TimelineCompiler) Compile(t *Template) Schedule {
	cfg := t.Config()

	type group struct {
		at      time.Duration
		actions []*Action
	}
	var groups []group
	for _, pct := range t.Percents() {
		at := t.timeAt(pct)
		if n := len(groups); n > 0 && groups[n-1].at == at {
			groups[n-1].actions = append(groups[n-1].actions, t.ActionsAt(pct)...)
			continue
		}
		groups = append(groups, group{at: at, actions: t.ActionsAt(pct)})
	}

	frames := make([]*Frame, 0, len(groups))
	for _, g := range groups {
		frames = append(frames, &Frame{
			At:       g.at,
			Values:   compileValues(cfg, g.actions),
			OnFinish: combineFinish(g.actions),
		})
	}

	return &Timeline{
		frames:   frames,
		duration: cfg.Duration,
		delay:    cfg.Delay,
		rate:     cfg.Rate,
		cycles:   cfg.CycleCount,
		yoyo:     cfg.AutoReverse,
		onFinish: cfg.OnFinish,
	}
}

// TimerCompiler compiles a template for the continuous backend. Delay,
// rate, cycle count and auto-reverse are outside that backend's capability
// set and are ignored, not errors; per-action completion handlers and
// execution counting are likewise not compiled in. Compilation is
// best-effort: a checkpoint the timer refuses is dropped and the rest of
// the template still compiles.
type TimerCompiler struct {
	// Rejected, if set, observes every dropped checkpoint. The default is
	// to drop silently.
	Rejected func(at time.Duration, err error)
}

// Compile builds a [Timer] from the template. The schedule-level completion
// callback is attached through the timer's finished hook with a synthetic
// event, since this backend produces no completion event of its own.
func (c TimerCompiler) Compile(t *Template) Schedule {
	cfg := t.Config()
	tm := NewTimer()
	for _, pct := range t.Percents() {
		at := t.timeAt(pct)
		cp := &Checkpoint{At: at, Values: compileValues(cfg, t.ActionsAt(pct))}
		if err := tm.AddCheckpoint(cp); err != nil {
			if c.Rejected != nil {
				c.Rejected(at, err)
			}
			continue
		}
	}
	if fn := cfg.OnFinish; fn != nil {
		end := cfg.Duration
		tm.OnFinished(func() {
			fn(FinishEvent{At: end, Synthetic: true})
		})
	}
	return tm
}

// compileValues resolves each action's effective interpolator (its own, or
// the config default) and wraps it in a fresh gate bound to the action's
// predicate.
func compileValues(cfg Config, actions []*Action) []*KeyValue {
	values := make([]*KeyValue, 0, len(actions))
	for _, a := range actions {
		fn := a.Interpolator()
		if fn == nil {
			fn = cfg.Interpolator
		}
		values = append(values, &KeyValue{
			Target: a.Target(),
			End:    a.End(),
			Interp: NewConditional(fn, a.runs, a.Target()),
		})
	}
	return values
}

// combineFinish reduces a bucket's per-action completion handlers into one
// ordered callback. Handlers run in registration order, each inside its own
// recover, so a panicking handler never suppresses its siblings; the first
// recovered panic is re-raised after every handler has been attempted. An
// action's execution counter increments only when its gate allowed the
// firing and its handler returned normally.
func combineFinish(actions []*Action) func(FinishEvent) {
	return func(ev FinishEvent) {
		var failure any
		for _, a := range actions {
			if !a.runs() {
				continue
			}
			if recovered := a.fire(ev); recovered != nil {
				if failure == nil {
					failure = recovered
				}
				continue
			}
			a.executions++
		}
		if failure != nil {
			panic(failure)
		}
	}
}
