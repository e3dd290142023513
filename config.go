package keyframe

import (
	"fmt"
	"time"
)

// Indefinite as a cycle count makes the discrete backend repeat forever.
const Indefinite = -1

// Config is the global timing and playback policy for one template. Build
// one with [NewConfig]; the returned value is a copy, so a template's policy
// cannot be mutated after the fact.
//
// Delay, Rate, CycleCount and AutoReverse are honored only by the discrete
// backend; the continuous backend always plays forward exactly once per
// activation and ignores them.
type Config struct {
	Duration     time.Duration
	Interpolator Interpolator
	Delay        time.Duration
	Rate         float64
	CycleCount   int
	AutoReverse  bool
	OnFinish     func(FinishEvent)
}

// ConfigBuilder assembles a Config. Obtain one with [NewConfig]; the zero
// value is not usable.
type ConfigBuilder struct {
	c Config
}

// NewConfig starts building a Config with defaults: linear interpolation,
// no delay, rate 1, a single cycle, no auto-reverse.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{c: Config{
		Interpolator: Linear,
		Rate:         1,
		CycleCount:   1,
	}}
}

// Duration sets the total duration of one cycle. Required, must be positive.
func (b *ConfigBuilder) Duration(d time.Duration) *ConfigBuilder {
	b.c.Duration = d
	return b
}

// Interpolate sets the default interpolator for actions that do not carry
// their own.
func (b *ConfigBuilder) Interpolate(fn Interpolator) *ConfigBuilder {
	b.c.Interpolator = fn
	return b
}

// Delay sets how long the discrete backend waits before the first cycle.
func (b *ConfigBuilder) Delay(d time.Duration) *ConfigBuilder {
	b.c.Delay = d
	return b
}

// Rate sets the playback speed multiplier for the discrete backend.
func (b *ConfigBuilder) Rate(r float64) *ConfigBuilder {
	b.c.Rate = r
	return b
}

// Cycles sets how many times the discrete backend plays the schedule.
// Pass [Indefinite] to repeat forever.
func (b *ConfigBuilder) Cycles(n int) *ConfigBuilder {
	b.c.CycleCount = n
	return b
}

// AutoReverse makes the discrete backend alternate direction on every other
// cycle instead of jumping back to the start.
func (b *ConfigBuilder) AutoReverse(on bool) *ConfigBuilder {
	b.c.AutoReverse = on
	return b
}

// OnFinish sets the schedule-level completion handler, fired once when the
// entire (possibly cyclic) run completes.
func (b *ConfigBuilder) OnFinish(fn func(FinishEvent)) *ConfigBuilder {
	b.c.OnFinish = fn
	return b
}

// Build validates and returns the finished Config.
func (b *ConfigBuilder) Build() (Config, error) {
	c := b.c
	if c.Duration <= 0 {
		return Config{}, fmt.Errorf("keyframe: duration must be positive, got %v", c.Duration)
	}
	if c.Delay < 0 {
		return Config{}, fmt.Errorf("keyframe: delay must not be negative, got %v", c.Delay)
	}
	if c.Rate <= 0 {
		return Config{}, fmt.Errorf("keyframe: rate must be positive, got %v", c.Rate)
	}
	if c.CycleCount <= 0 && c.CycleCount != Indefinite {
		return Config{}, fmt.Errorf("keyframe: cycle count must be positive or Indefinite, got %d", c.CycleCount)
	}
	if c.Interpolator == nil {
		c.Interpolator = Linear
	}
	return c, nil
}
