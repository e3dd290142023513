package keyframe

import "time"

// FinishEvent is passed to completion callbacks. At is the schedule time of
// the firing. Synthetic is true when the event was reconstructed by the
// continuous backend, which has no native completion event of its own.
type FinishEvent struct {
	At        time.Duration
	Synthetic bool
}
