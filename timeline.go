package keyframe

import (
	"sort"
	"time"
)

// KeyValue binds one writable target to the end value it reaches at its
// frame's time. The segment start value is resolved when playback starts:
// the end value the same target reached at the previous frame driving it,
// or the target's current value for its first frame.
type KeyValue struct {
	Target Writable
	End    float64
	Interp *Conditional

	start float64
}

// apply writes the value for normalized segment progress t to the target.
func (v *KeyValue) apply(t float64) {
	v.Target.Set(v.Interp.Value(v.start, v.End, t))
}

// resolveStarts chains segment start values across an ordered run of value
// sets, reading each target's current value for its first appearance.
func resolveStarts(sets [][]*KeyValue) {
	last := make(map[Writable]float64)
	for _, values := range sets {
		for _, v := range values {
			if s, ok := last[v.Target]; ok {
				v.start = s
			} else {
				v.start = v.Target.Get()
			}
			last[v.Target] = v.End
		}
	}
}

// Frame is one discrete schedule entry: every value that completes at At,
// plus the combined completion callback for the actions that produced them.
type Frame struct {
	At       time.Duration
	Values   []*KeyValue
	OnFinish func(FinishEvent)
}

// Timeline is the discrete backend: a compiled schedule supporting delay,
// playback rate, cycle count and auto-reverse. It never blocks; the host
// loop drives it by calling [Timeline.Advance] with elapsed wall time.
// Compile one with [TimelineCompiler].
//
// All methods must be called from the single goroutine that owns the
// animated properties.
type Timeline struct {
	frames   []*Frame // strictly ascending At
	duration time.Duration
	delay    time.Duration
	rate     float64
	cycles   int
	yoyo     bool
	onFinish func(FinishEvent)

	running bool
	wait    time.Duration
	pos     time.Duration
	dir     int
	cycle   int
	next    int
}

// Frames returns the schedule entries in ascending time order.
func (tl *Timeline) Frames() []*Frame {
	out := make([]*Frame, len(tl.frames))
	copy(out, tl.frames)
	return out
}

// Start (re)starts playback from the beginning. Segment start values are
// resolved from the targets' current values; execution counters and frozen
// gates are deliberately left alone, they belong to the template instance.
func (tl *Timeline) Start() {
	sets := make([][]*KeyValue, len(tl.frames))
	for i, f := range tl.frames {
		sets[i] = f.Values
	}
	resolveStarts(sets)

	tl.wait = tl.delay
	tl.pos = 0
	tl.dir = 1
	tl.cycle = 0
	tl.next = 0
	tl.running = true
}

// Stop halts playback before the next Advance. There is no rollback; values
// already written and callbacks already run stay as they are.
func (tl *Timeline) Stop() { tl.running = false }

// Running reports whether the timeline is still playing.
func (tl *Timeline) Running() bool { return tl.running }

// Advance moves the playhead by dt of host time, scaled by the playback
// rate. It fires every frame the playhead crosses, interpolates the active
// segment's values, and handles cycle boundaries (repeat, reverse, finish).
// Calling Advance on a stopped timeline is a no-op.
func (tl *Timeline) Advance(dt time.Duration) {
	if !tl.running || dt <= 0 {
		return
	}
	dt = time.Duration(float64(dt) * tl.rate)
	if tl.wait > 0 {
		if dt < tl.wait {
			tl.wait -= dt
			return
		}
		dt -= tl.wait
		tl.wait = 0
	}
	for dt > 0 && tl.running {
		room := tl.duration - tl.pos
		if tl.dir < 0 {
			room = tl.pos
		}
		step := dt
		if step > room {
			step = room
		}
		tl.pos += time.Duration(tl.dir) * step
		dt -= step
		tl.fireCrossed()
		tl.applySegment()
		if step == room {
			tl.finishCycle()
		}
	}
}

// fireCrossed fires every frame the playhead passed in the current
// direction since the last call.
func (tl *Timeline) fireCrossed() {
	if tl.dir > 0 {
		for tl.next < len(tl.frames) && tl.frames[tl.next].At <= tl.pos {
			tl.fireFrame(tl.frames[tl.next])
			tl.next++
		}
	} else {
		for tl.next >= 0 && tl.frames[tl.next].At >= tl.pos {
			tl.fireFrame(tl.frames[tl.next])
			tl.next--
		}
	}
}

// fireFrame pins the frame's values to their exact targets and runs the
// combined completion callback. At the frame's own time the property holds
// the frame's end value regardless of travel direction.
func (tl *Timeline) fireFrame(f *Frame) {
	for _, v := range f.Values {
		v.apply(1)
	}
	if f.OnFinish != nil {
		f.OnFinish(FinishEvent{At: f.At})
	}
}

// applySegment interpolates the values of the frame the playhead is moving
// toward (or away from, when reversed). Past the last frame values hold.
func (tl *Timeline) applySegment() {
	j := sort.Search(len(tl.frames), func(i int) bool { return tl.frames[i].At >= tl.pos })
	if j >= len(tl.frames) {
		return
	}
	f := tl.frames[j]
	segStart := time.Duration(0)
	if j > 0 {
		segStart = tl.frames[j-1].At
	}
	t := 1.0
	if denom := f.At - segStart; denom > 0 {
		t = float64(tl.pos-segStart) / float64(denom)
	}
	for _, v := range f.Values {
		v.apply(t)
	}
}

// finishCycle runs when the playhead reaches a cycle boundary: stop and fire
// the schedule-level completion once all cycles are done, reverse direction
// when auto-reversing, or jump back to the start otherwise. With
// auto-reverse each direction counts as one cycle.
func (tl *Timeline) finishCycle() {
	tl.cycle++
	if tl.cycles != Indefinite && tl.cycle >= tl.cycles {
		tl.running = false
		if tl.onFinish != nil {
			tl.onFinish(FinishEvent{At: tl.pos})
		}
		return
	}
	if tl.yoyo {
		tl.dir = -tl.dir
		if tl.dir > 0 {
			// Skip a frame sitting exactly on the start boundary; it
			// already fired on the backward pass.
			tl.next = sort.Search(len(tl.frames), func(i int) bool { return tl.frames[i].At > tl.pos })
		} else {
			tl.next = sort.Search(len(tl.frames), func(i int) bool { return tl.frames[i].At >= tl.pos }) - 1
		}
		return
	}
	tl.pos = 0
	tl.next = 0
}
