package motion

import "time"

// Reveal fades blocks in once they enter the viewport. Blocks entering in the
// same observation are staggered by their position in that batch.
type Reveal struct {
	Stagger time.Duration
	Fade    time.Duration
	Reduced bool

	shown map[string]time.Time
}

const (
	RevealStagger       = 100 * time.Millisecond
	RevealStaggerNarrow = 50 * time.Millisecond
	RevealFade          = 400 * time.Millisecond
)

func NewReveal(reduced bool) *Reveal {
	return &Reveal{Stagger: RevealStagger, Fade: RevealFade, Reduced: reduced, shown: map[string]time.Time{}}
}

// Observe schedules every id in visible that has not been seen before and
// returns how many were new.
func (r *Reveal) Observe(visible []string, now time.Time) int {
	added := 0
	for _, id := range visible {
		if _, ok := r.shown[id]; ok {
			continue
		}
		at := now
		if !r.Reduced {
			at = now.Add(time.Duration(added) * r.Stagger)
		}
		r.shown[id] = at
		added++
	}
	return added
}

// Opacity returns 0 for unseen blocks, 1 once faded in.
func (r *Reveal) Opacity(id string, now time.Time) float64 {
	at, ok := r.shown[id]
	if !ok {
		return 0
	}
	if r.Reduced {
		return 1
	}
	return Tween{To: 1, Start: at, Duration: r.Fade}.Value(now)
}

// Visible reports whether a block is at least partly faded in.
func (r *Reveal) Visible(id string, now time.Time) bool {
	return r.Opacity(id, now) > 0
}

// Animating reports whether any block is mid-fade at now.
func (r *Reveal) Animating(now time.Time) bool {
	if r.Reduced {
		return false
	}
	for _, at := range r.shown {
		if now.Before(at.Add(r.Fade)) {
			return true
		}
	}
	return false
}
