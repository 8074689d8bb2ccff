package motion

import (
	"math"
	"time"
)

const (
	CounterDuration = 2000 * time.Millisecond
	SkillDelay      = 300 * time.Millisecond
	SkillDuration   = 600 * time.Millisecond
	ScrollDuration  = 800 * time.Millisecond
)

// Counter animates a stat from zero to Target once it is first seen.
type Counter struct {
	Target  int
	started bool
	tween   Tween
}

// Trigger starts the counter at now. Later calls are ignored.
func (c *Counter) Trigger(now time.Time, reduced bool) {
	if c.started {
		return
	}
	c.started = true
	c.tween = Tween{To: float64(c.Target), Start: now, Duration: CounterDuration, Ease: EaseOutCubic, Reduced: reduced}
}

func (c *Counter) Started() bool { return c.started }

// Value is floored while running and exact once finished.
func (c *Counter) Value(now time.Time) int {
	if !c.started {
		return 0
	}
	if c.tween.Done(now) {
		return c.Target
	}
	return int(math.Floor(c.tween.Value(now)))
}

func (c *Counter) Animating(now time.Time) bool {
	return c.started && !c.tween.Done(now)
}

// SkillBar fills to Percent shortly after it is first seen.
type SkillBar struct {
	Percent int
	started bool
	tween   Tween
}

func (s *SkillBar) Trigger(now time.Time, reduced bool) {
	if s.started {
		return
	}
	s.started = true
	s.tween = Tween{To: float64(s.Percent) / 100, Start: now.Add(SkillDelay), Duration: SkillDuration, Ease: EaseOutCubic, Reduced: reduced}
}

func (s *SkillBar) Started() bool { return s.started }

// Fraction is the filled share in [0,1].
func (s *SkillBar) Fraction(now time.Time) float64 {
	if !s.started {
		return 0
	}
	return s.tween.Value(now)
}

func (s *SkillBar) Animating(now time.Time) bool {
	return s.started && !s.tween.Done(now)
}

// Scroll is a smooth scroll between two offsets.
type Scroll struct {
	tween  Tween
	active bool
}

// NewScroll builds a smooth scroll from one offset to another.
func NewScroll(from, to int, now time.Time, reduced bool) Scroll {
	return Scroll{
		tween:  Tween{From: float64(from), To: float64(to), Start: now, Duration: ScrollDuration, Ease: EaseInOutCubic, Reduced: reduced},
		active: true,
	}
}

func (s Scroll) Active() bool { return s.active }

// Target returns the final offset.
func (s Scroll) Target() int { return int(s.tween.To) }

// Offset returns the offset at now and whether the scroll is still running.
func (s Scroll) Offset(now time.Time) (int, bool) {
	if !s.active {
		return 0, false
	}
	v := int(math.Round(s.tween.Value(now)))
	return v, !s.tween.Done(now)
}
