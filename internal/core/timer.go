package core

import "time"

// Interval accumulates elapsed frame time and fires once the accumulated
// time reaches Period. Firing resets the accumulator to zero; any time past
// the threshold is dropped, so a slow frame never fires twice.
type Interval struct {
	Period  time.Duration
	elapsed time.Duration
}

// NewInterval creates an interval that fires every period.
func NewInterval(period time.Duration) Interval {
	return Interval{Period: period}
}

// Advance adds dt to the accumulator and reports whether the interval fired.
// Negative deltas are ignored.
func (iv *Interval) Advance(dt time.Duration) bool {
	if dt > 0 {
		iv.elapsed += dt
	}
	if iv.elapsed >= iv.Period {
		iv.elapsed = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last firing.
func (iv Interval) Elapsed() time.Duration {
	return iv.elapsed
}

// FrameDelta returns the fixed simulation step for a tick rate.
// Non-positive rates fall back to 60 ticks per second.
func FrameDelta(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
