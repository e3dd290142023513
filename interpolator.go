package keyframe

import (
	"github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// Interpolator maps normalized progress t in [0,1] to an eased progress
// value. The signature is directly compatible with the functions in
// [github.com/fogleman/ease], so any of them can be used as-is:
//
//	cfg, _ := keyframe.NewConfig().Duration(time.Second).Interpolate(ease.InOutQuad).Build()
type Interpolator func(t float64) float64

// Linear is the identity interpolator and the default everywhere an
// interpolator is optional.
var Linear Interpolator = ease.Linear

// Lerp interpolates between start and end at progress t using fn.
// A nil fn falls back to [Linear].
func Lerp(start, end, t float64, fn Interpolator) float64 {
	if fn == nil {
		fn = Linear
	}
	return start + (end-start)*fn(t)
}

// Easing adapts a gween easing function to an Interpolator, so the whole
// [github.com/tanema/gween/ease] catalog is usable alongside fogleman/ease:
//
//	action, _ := keyframe.NewAction().
//		Target(target).
//		End(10).
//		Interpolate(keyframe.Easing(gease.OutBounce)).
//		Build()
func Easing(fn gease.TweenFunc) Interpolator {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
