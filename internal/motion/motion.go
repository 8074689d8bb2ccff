// Package motion holds the time-based animations of the page: counters,
// skill bars, staggered reveals and smooth scrolling. Every animation is a
// pure function of a start time and "now", so the host only needs to redraw
// on its frame tick. Reduced motion collapses every animation to its end
// state.
package motion

import (
	"math"
	"time"
)

// FrameInterval is the redraw cadence while anything is animating.
const FrameInterval = time.Second / 30

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(p float64) float64 {
	p = clamp01(p)
	return 1 - math.Pow(1-p, 3)
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(p float64) float64 {
	p = clamp01(p)
	if p < 0.5 {
		return 4 * p * p * p
	}
	return (p-1)*(2*p-2)*(2*p-2) + 1
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Tween interpolates From to To over Duration starting at Start.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     func(float64) float64
	Reduced  bool
}

// Progress returns the linear progress in [0,1] at now.
func (t Tween) Progress(now time.Time) float64 {
	if t.Reduced || t.Duration <= 0 {
		return 1
	}
	if now.Before(t.Start) {
		return 0
	}
	return clamp01(float64(now.Sub(t.Start)) / float64(t.Duration))
}

// Value returns the eased value at now.
func (t Tween) Value(now time.Time) float64 {
	p := t.Progress(now)
	if p >= 1 {
		return t.To
	}
	ease := t.Ease
	if ease == nil {
		ease = func(x float64) float64 { return x }
	}
	return t.From + (t.To-t.From)*ease(p)
}

// Done reports whether the tween has reached its end at now.
func (t Tween) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}
