// Package typing implements the typewriter effects on the hero line and the
// code snippet. Each effect is a pure state machine (Step) plus a thin driver
// that reschedules itself through Bubble Tea ticks and writes every rendered
// frame to a Sink.
package typing

import (
	"errors"
	"time"
)

// Mode is the direction the cycler is currently moving in.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	if m == Deleting {
		return "deleting"
	}
	return "typing"
}

// ErrNoPhrases is returned when a cycler is built without phrases.
var ErrNoPhrases = errors.New("typing: at least one phrase is required")

// Timing holds the delays between steps.
type Timing struct {
	Start  time.Duration // before the first step
	Type   time.Duration // between typed characters
	Hold   time.Duration // after a phrase is complete
	Delete time.Duration // between deleted characters
	Pause  time.Duration // after a phrase is fully erased
}

// DefaultTiming mirrors the hero line of the site.
func DefaultTiming() Timing {
	return Timing{
		Start:  1000 * time.Millisecond,
		Type:   80 * time.Millisecond,
		Hold:   1500 * time.Millisecond,
		Delete: 50 * time.Millisecond,
		Pause:  200 * time.Millisecond,
	}
}

// State is one frame of the cycle. Displayed is always a prefix of
// Phrases[Index].
type State struct {
	Phrases   []string
	Index     int
	Displayed string
	Mode      Mode
}

// NewState returns the initial state: first phrase, nothing shown, typing.
func NewState(phrases []string) (State, error) {
	if len(phrases) == 0 {
		return State{}, ErrNoPhrases
	}
	return State{Phrases: append([]string(nil), phrases...)}, nil
}

// Phrase returns the phrase currently being typed or deleted.
func (s State) Phrase() string {
	return s.Phrases[s.Index]
}

// Step advances s by one character and returns the delay before the next
// step. Mode flips only at the boundaries: a complete phrase switches to
// Deleting (after Hold), an empty display switches to Typing on the next
// phrase (after Pause).
func Step(s State, t Timing) (State, time.Duration) {
	full := []rune(s.Phrases[s.Index])
	shown := []rune(s.Displayed)

	if s.Mode == Deleting {
		if len(shown) > 0 {
			shown = shown[:len(shown)-1]
		}
		s.Displayed = string(shown)
		if len(shown) == 0 {
			s.Mode = Typing
			s.Index = (s.Index + 1) % len(s.Phrases)
			return s, t.Pause
		}
		return s, t.Delete
	}

	if len(shown) < len(full) {
		shown = full[:len(shown)+1]
	}
	s.Displayed = string(shown)
	if len(shown) == len(full) {
		s.Mode = Deleting
		return s, t.Hold
	}
	return s, t.Type
}
