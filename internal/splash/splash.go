// Package splash models the loading screen shown before the page: a progress
// bar that advances in random increments while cycling status messages, then
// holds briefly at 100%.
package splash

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	Interval = 300 * time.Millisecond
	Hold     = 500 * time.Millisecond
	minStep  = 5
	maxStep  = 15
)

// DefaultMessages are shown one per tick until exhausted.
var DefaultMessages = []string{
	"Initialising components...",
	"Loading assets...",
	"Preparing animations...",
	"Setting up the gold theme...",
	"Almost there...",
	"Done!",
}

// TickMsg advances the splash by one interval.
type TickMsg struct{}

// DoneMsg is emitted once the hold after 100% has elapsed.
type DoneMsg struct{}

// Splash is the loading screen state.
type Splash struct {
	Progress int
	Message  string

	messages []string
	next     int
	rng      *rand.Rand
	done     bool
}

// New builds a splash using rng for increments; nil seeds from the clock.
func New(messages []string, rng *rand.Rand) *Splash {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(messages) == 0 {
		messages = DefaultMessages
	}
	return &Splash{messages: messages, rng: rng}
}

// Start schedules the first tick.
func (s *Splash) Start() tea.Cmd {
	return tea.Tick(Interval, func(time.Time) tea.Msg { return TickMsg{} })
}

// Complete reports whether progress reached 100.
func (s *Splash) Complete() bool { return s.done }

// Update advances on TickMsg and returns the next command: another tick, or
// the delayed DoneMsg once progress is full.
func (s *Splash) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(TickMsg); !ok || s.done {
		return nil
	}
	s.Progress += minStep + s.rng.Intn(maxStep-minStep+1)
	if s.Progress >= 100 {
		s.Progress = 100
		s.done = true
	}
	if s.next < len(s.messages) {
		s.Message = s.messages[s.next]
		s.next++
	}
	if s.done {
		return tea.Tick(Hold, func(time.Time) tea.Msg { return DoneMsg{} })
	}
	return tea.Tick(Interval, func(time.Time) tea.Msg { return TickMsg{} })
}

// Fraction is Progress in [0,1].
func (s *Splash) Fraction() float64 {
	return float64(s.Progress) / 100
}
