package schedule

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into one run after Delay of quiet.
// Trigger hands out a tag; only the most recent tag is accepted by Fire.
type Debouncer struct {
	Delay time.Duration

	mu  sync.Mutex
	tag int
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger records a new event and returns its tag.
func (d *Debouncer) Trigger() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tag++
	return d.tag
}

// Fire reports whether tag is still the latest trigger.
func (d *Debouncer) Fire(tag int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return tag == d.tag
}
