package typing

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoLines is returned when a code typer is built without lines.
var ErrNoLines = errors.New("typing: at least one code line is required")

// CodeTiming holds the delays of the code snippet animation.
type CodeTiming struct {
	Start time.Duration
	Char  time.Duration
	Line  time.Duration // after a finished line
	Hold  time.Duration // after the last line, before clearing
}

func DefaultCodeTiming() CodeTiming {
	return CodeTiming{
		Start: 2000 * time.Millisecond,
		Char:  50 * time.Millisecond,
		Line:  500 * time.Millisecond,
		Hold:  4000 * time.Millisecond,
	}
}

// CodeState is one frame of the snippet: the lines committed so far plus the
// partially typed current line.
type CodeState struct {
	Lines     []string
	Line      int
	Col       int
	Committed string
}

func NewCodeState(lines []string) (CodeState, error) {
	if len(lines) == 0 {
		return CodeState{}, ErrNoLines
	}
	return CodeState{Lines: append([]string(nil), lines...)}, nil
}

// Text is what the snippet shows for this frame.
func (s CodeState) Text() string {
	if s.Line >= len(s.Lines) {
		return s.Committed
	}
	runes := []rune(s.Lines[s.Line])
	return s.Committed + string(runes[:s.Col])
}

// Finished reports whether every line has been committed.
func (s CodeState) Finished() bool {
	return s.Line >= len(s.Lines)
}

// CodeStep advances the snippet by one character, one line commit, or one
// reset after the hold.
func CodeStep(s CodeState, t CodeTiming) (CodeState, time.Duration) {
	if s.Finished() {
		s.Line, s.Col, s.Committed = 0, 0, ""
		return s, t.Char
	}
	line := []rune(s.Lines[s.Line])
	if s.Col < len(line) {
		s.Col++
		return s, t.Char
	}
	var b strings.Builder
	b.WriteString(s.Committed)
	b.WriteString(string(line))
	b.WriteByte('\n')
	s.Committed = b.String()
	s.Line++
	s.Col = 0
	if s.Finished() {
		return s, t.Hold
	}
	return s, t.Line
}

// CodeTyper drives the snippet on a Bubble Tea program.
type CodeTyper struct {
	loop
	state  CodeState
	timing CodeTiming
	sink   Sink
}

func NewCodeTyper(lines []string, timing CodeTiming, sink Sink) (*CodeTyper, error) {
	state, err := NewCodeState(lines)
	if err != nil {
		return nil, err
	}
	return &CodeTyper{loop: newLoop(), state: state, timing: timing, sink: sink}, nil
}

func (c *CodeTyper) State() CodeState { return c.state }
func (c *CodeTyper) Running() bool    { return c.running }
func (c *CodeTyper) Pending() TickMsg { return c.current() }

func (c *CodeTyper) Start() tea.Cmd {
	c.start()
	return c.schedule(c.timing.Start)
}

func (c *CodeTyper) Stop() { c.stop() }

func (c *CodeTyper) Update(msg tea.Msg) tea.Cmd {
	if !c.accepts(msg) {
		return nil
	}
	next, delay := CodeStep(c.state, c.timing)
	c.state = next
	if c.sink != nil {
		c.sink.Render(next.Text())
	}
	return c.schedule(delay)
}
