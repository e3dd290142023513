package keyframe

import (
	"fmt"
	"sort"
	"time"
)

// Template is the declarative description of an animation: an ordered
// mapping from percent-of-duration to the actions active at that percent,
// plus one [Config]. Templates are built with [NewTemplate] and are
// immutable afterwards; compile one as often as needed with a
// [TimelineCompiler] or [TimerCompiler].
type Template struct {
	cfg      Config
	percents []float64 // ascending, unique
	buckets  map[float64][]*Action
}

// Config returns a copy of the template's playback policy.
func (t *Template) Config() Config { return t.cfg }

// Percents returns the template's distinct percent keys in ascending order.
func (t *Template) Percents() []float64 {
	out := make([]float64, len(t.percents))
	copy(out, t.percents)
	return out
}

// ActionsByPercent returns the percent buckets. The map and its slices are
// copies; the actions themselves are the template's own (their execution
// counters are live).
func (t *Template) ActionsByPercent() map[float64][]*Action {
	out := make(map[float64][]*Action, len(t.buckets))
	for pct, actions := range t.buckets {
		bucket := make([]*Action, len(actions))
		copy(bucket, actions)
		out[pct] = bucket
	}
	return out
}

// ActionsAt returns the actions registered at one percent, in registration
// order. The slice is a copy.
func (t *Template) ActionsAt(percent float64) []*Action {
	actions := t.buckets[percent]
	bucket := make([]*Action, len(actions))
	copy(bucket, actions)
	return bucket
}

// timeAt converts a percent key to its absolute time within one cycle.
func (t *Template) timeAt(percent float64) time.Duration {
	return time.Duration(float64(t.cfg.Duration) * percent / 100)
}

// TemplateBuilder assembles a Template. Obtain one with [NewTemplate]; the
// zero value is not usable.
type TemplateBuilder struct {
	cfg     Config
	order   []float64
	buckets map[float64][]*Action
	err     error
}

// NewTemplate starts building a Template using the given playback policy.
func NewTemplate(cfg Config) *TemplateBuilder {
	return &TemplateBuilder{
		cfg:     cfg,
		buckets: make(map[float64][]*Action),
	}
}

// At registers actions at a percent of the total duration. Percents need not
// be distinct or in order across calls; all actions sharing a percent are
// coalesced into a single schedule entry, in registration order. Percents
// outside [0,100] are rejected, not clamped: Build reports the error.
func (b *TemplateBuilder) At(percent float64, actions ...*Action) *TemplateBuilder {
	if b.err == nil && (percent < 0 || percent > 100) {
		b.err = fmt.Errorf("keyframe: percent %v out of range [0,100]", percent)
	}
	if b.err == nil && len(actions) == 0 {
		b.err = fmt.Errorf("keyframe: no actions registered at percent %v", percent)
	}
	if b.err != nil {
		return b
	}
	if _, ok := b.buckets[percent]; !ok {
		b.order = append(b.order, percent)
	}
	b.buckets[percent] = append(b.buckets[percent], actions...)
	return b
}

// Build validates and returns the finished Template. All contained actions'
// execution counters are zeroed; replaying a compiled schedule does not
// reset them, only building a fresh template does.
func (b *TemplateBuilder) Build() (*Template, error) {
	if b.err != nil {
		return nil, b.err
	}
	percents := make([]float64, len(b.order))
	copy(percents, b.order)
	sort.Float64s(percents)

	buckets := make(map[float64][]*Action, len(b.buckets))
	for pct, actions := range b.buckets {
		bucket := make([]*Action, len(actions))
		copy(bucket, actions)
		for _, a := range bucket {
			a.executions = 0
		}
		buckets[pct] = bucket
	}

	return &Template{cfg: b.cfg, percents: percents, buckets: buckets}, nil
}
