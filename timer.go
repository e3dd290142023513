package keyframe

import (
	"fmt"
	"sort"
	"time"
)

// Checkpoint is one time point in a continuous schedule: the values that
// reach their targets at At. Checkpoints carry no completion callbacks; the
// continuous backend does not support per-action completion.
type Checkpoint struct {
	At     time.Duration
	Values []*KeyValue
}

// Timer is the continuous backend: a running-clock schedule that always
// plays forward exactly once per Start. It has no notion of delay, rate,
// cycles or reversal. The host loop drives it by calling [Timer.Advance]
// with elapsed wall time, typically once per frame. Compile one with
// [TimerCompiler], or assemble it directly with [Timer.AddCheckpoint].
type Timer struct {
	checkpoints []*Checkpoint // ascending At
	finished    []func()

	running bool
	elapsed time.Duration
	next    int
}

// NewTimer returns an empty, stopped timer.
func NewTimer() *Timer {
	return &Timer{}
}

// AddCheckpoint inserts a checkpoint in time order. Checkpoints sharing a
// time merge into one entry. Adding while the timer is running is refused
// with an error and leaves the schedule unchanged.
func (tm *Timer) AddCheckpoint(c *Checkpoint) error {
	if tm.running {
		return fmt.Errorf("keyframe: timer is running, checkpoint at %v rejected", c.At)
	}
	i := sort.Search(len(tm.checkpoints), func(i int) bool { return tm.checkpoints[i].At >= c.At })
	if i < len(tm.checkpoints) && tm.checkpoints[i].At == c.At {
		tm.checkpoints[i].Values = append(tm.checkpoints[i].Values, c.Values...)
		return nil
	}
	tm.checkpoints = append(tm.checkpoints, nil)
	copy(tm.checkpoints[i+1:], tm.checkpoints[i:])
	tm.checkpoints[i] = c
	return nil
}

// Checkpoints returns the schedule entries in ascending time order.
func (tm *Timer) Checkpoints() []*Checkpoint {
	out := make([]*Checkpoint, len(tm.checkpoints))
	copy(out, tm.checkpoints)
	return out
}

// OnFinished registers a hook run when the last checkpoint has fired. Hooks
// run in registration order, once per completed activation.
func (tm *Timer) OnFinished(fn func()) {
	tm.finished = append(tm.finished, fn)
}

// Start (re)starts the clock from zero. Segment start values are resolved
// from the targets' current values.
func (tm *Timer) Start() {
	sets := make([][]*KeyValue, len(tm.checkpoints))
	for i, c := range tm.checkpoints {
		sets[i] = c.Values
	}
	resolveStarts(sets)

	tm.elapsed = 0
	tm.next = 0
	tm.running = true
}

// Stop halts the timer before the next Advance without running the
// finished hooks.
func (tm *Timer) Stop() { tm.running = false }

// Running reports whether the timer is still playing.
func (tm *Timer) Running() bool { return tm.running }

// Advance moves the clock forward by dt, pins the values of every
// checkpoint passed, and interpolates the values of the next one. Passing
// the last checkpoint stops the timer and runs the finished hooks.
func (tm *Timer) Advance(dt time.Duration) {
	if !tm.running || dt <= 0 {
		return
	}
	tm.elapsed += dt
	for tm.next < len(tm.checkpoints) && tm.checkpoints[tm.next].At <= tm.elapsed {
		for _, v := range tm.checkpoints[tm.next].Values {
			v.apply(1)
		}
		tm.next++
	}
	if tm.next >= len(tm.checkpoints) {
		tm.running = false
		for _, fn := range tm.finished {
			fn()
		}
		return
	}
	c := tm.checkpoints[tm.next]
	segStart := time.Duration(0)
	if tm.next > 0 {
		segStart = tm.checkpoints[tm.next-1].At
	}
	if denom := c.At - segStart; denom > 0 {
		t := float64(tm.elapsed-segStart) / float64(denom)
		for _, v := range c.Values {
			v.apply(t)
		}
	}
}
