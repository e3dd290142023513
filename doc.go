// Package keyframe is a declarative animation templating and scheduling
// engine.
//
// A template describes what should change, by how much, and when, as a
// mapping from percent-of-duration to actions. Compiling the template turns
// it into a time-ordered schedule that a host loop drives synchronously.
// The engine knows nothing about rendering or widgets, only how to
// interpolate values over time and invoke callbacks at the right moments.
//
// # Building a template
//
// Everything is assembled through builders and validated up front:
//
//	x := 0.0
//	cfg, err := keyframe.NewConfig().
//		Duration(time.Second).
//		Cycles(2).
//		AutoReverse(true).
//		Build()
//	// handle err ...
//
//	move, err := keyframe.NewAction().
//		Target(keyframe.Field(&x)).
//		End(100).
//		Interpolate(ease.OutQuad).
//		Build()
//	// handle err ...
//
//	tmpl, err := keyframe.NewTemplate(cfg).
//		At(50, move).
//		Build()
//
// # Two backends
//
// One template compiles to either of two backends behind the shared
// [Compiler] and [Schedule] interfaces:
//
//   - [TimelineCompiler] produces a [Timeline], the full-feature discrete
//     backend: delay, playback rate, cycle count and auto-reverse.
//   - [TimerCompiler] produces a [Timer], the reduced continuous backend: a
//     running clock that plays forward exactly once per activation and
//     silently ignores the policy fields it cannot honor.
//
// Either way the host loop owns time:
//
//	sched := keyframe.TimelineCompiler{}.Compile(tmpl)
//	sched.Start()
//	for sched.Running() {
//		sched.Advance(time.Second / 60) // e.g. once per frame
//	}
//
// # Gated interpolation
//
// An action built with ExecuteWhen only animates while its predicate holds;
// the moment the predicate turns false the value freezes where it stands
// (see [Conditional]). Predicates can read the action's own
// [Action.Executions] counter, so "run my completion once" is a template
// concern, not an engine one.
//
// # Interpolators
//
// [Interpolator] is a plain func(t float64) float64 over normalized
// progress, so every function in [github.com/fogleman/ease] works directly,
// and [Easing] adapts the [github.com/tanema/gween/ease] catalog.
//
// # Threading
//
// The engine is single-threaded and cooperative: compilation and
// advancement happen on whatever goroutine owns the animated properties,
// and nothing here locks, blocks, or spawns goroutines. A concurrent host
// must serialize all calls itself.
package keyframe
