package typing

import (
	"time"

	"github.com/atomicstack/termfolio/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Cycler drives the phrase cycle on a Bubble Tea program.
type Cycler struct {
	loop
	state  State
	timing Timing
	sink   Sink
}

// NewCycler builds a stopped cycler over phrases.
func NewCycler(phrases []string, timing Timing, sink Sink) (*Cycler, error) {
	state, err := NewState(phrases)
	if err != nil {
		return nil, err
	}
	return &Cycler{loop: newLoop(), state: state, timing: timing, sink: sink}, nil
}

func (c *Cycler) ID() int        { return c.id }
func (c *Cycler) State() State   { return c.state }
func (c *Cycler) Running() bool  { return c.running }
func (c *Cycler) Timing() Timing { return c.timing }

// Start begins the loop. The first step fires after Timing.Start; each step
// schedules the next one.
func (c *Cycler) Start() tea.Cmd {
	c.start()
	events.Typing.Start(len(c.state.Phrases))
	return c.schedule(c.timing.Start)
}

// Stop cancels the pending step. The displayed text is left as is.
func (c *Cycler) Stop() {
	if !c.running {
		return
	}
	c.stop()
	events.Typing.Stop()
}

// Pending returns the tick the cycler is waiting for. Delivering it to Update
// advances one step without waiting on the timer.
func (c *Cycler) Pending() TickMsg {
	return c.current()
}

// Update applies one step for a matching tick, renders it and schedules the
// next step. Other messages are ignored.
func (c *Cycler) Update(msg tea.Msg) tea.Cmd {
	if !c.accepts(msg) {
		return nil
	}
	delay := c.advance()
	return c.schedule(delay)
}

func (c *Cycler) advance() time.Duration {
	prev := c.state.Mode
	next, delay := Step(c.state, c.timing)
	c.state = next
	if c.sink != nil {
		c.sink.Render(next.Displayed)
	}
	if prev == Typing && next.Mode == Deleting {
		events.Typing.PhraseComplete(next.Index, next.Phrase())
	}
	return delay
}
