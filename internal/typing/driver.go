package typing

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Sink receives every rendered frame.
type Sink interface {
	Render(text string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string)

func (f SinkFunc) Render(text string) { f(text) }

// TickMsg asks the driver identified by ID to take one step. Ticks carrying
// an old tag are ignored, which is how Stop cancels the pending timer.
type TickMsg struct {
	ID  int
	tag int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// loop carries the identity and cancellation tag shared by the drivers.
type loop struct {
	id      int
	tag     int
	running bool
}

func newLoop() loop {
	return loop{id: nextID()}
}

func (l *loop) start() {
	l.tag++
	l.running = true
}

func (l *loop) stop() {
	l.tag++
	l.running = false
}

func (l *loop) accepts(msg tea.Msg) bool {
	tick, ok := msg.(TickMsg)
	return ok && l.running && tick.ID == l.id && tick.tag == l.tag
}

func (l *loop) current() TickMsg {
	return TickMsg{ID: l.id, tag: l.tag}
}

func (l *loop) schedule(delay time.Duration) tea.Cmd {
	msg := l.current()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}
