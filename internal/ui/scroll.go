package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/motion"
)

const (
	jumpOffsetWide   = 80
	jumpOffsetNarrow = 60
	wheelStep        = 3
)

type scrollFlushMsg struct{}

type resizeSettledMsg struct {
	tag int
}

type frameMsg struct{}

// relayout sizes the viewport to the space left by the chrome and re-renders
// the page into it.
func (m *Model) relayout() {
	m.viewport.Width = m.viewWidth()
	m.viewport.Height = m.bodyHeight()
	m.doc = m.buildDocument(m.now())
	m.viewport.SetContent(strings.Join(m.doc.lines, "\n"))
}

func (m *Model) bodyHeight() int {
	h := m.viewHeight() - m.chromeRows()
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) chromeRows() int {
	rows := len(m.toasts)
	if !m.nav.Hidden() {
		rows++
	}
	if m.showFooter || m.tracker != nil && m.tracker.ShowTop() {
		rows++
	}
	return rows
}

func (m *Model) maxOffset() int {
	n := len(m.doc.lines) - m.viewport.Height
	if n < 0 {
		return 0
	}
	return n
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(m.viewport.YOffset + delta)
}

// scrollTo moves immediately and cancels any smooth scroll in flight.
func (m *Model) scrollTo(row int) tea.Cmd {
	m.scroll = motion.Scroll{}
	return m.setOffset(row)
}

func (m *Model) setOffset(row int) tea.Cmd {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(row)
	if m.viewport.YOffset == before {
		return nil
	}
	return m.onScroll()
}

// onScroll runs the tracker at most once per throttle window. A dropped
// scroll is evaluated by the trailing flush so the final position is never
// lost.
func (m *Model) onScroll() tea.Cmd {
	now := m.now()
	if m.throttle.Allow(now) {
		return m.evaluate(now, false)
	}
	events.Scroll.Throttled(m.viewport.YOffset * m.rowUnits)
	return m.queueFlush()
}

func (m *Model) queueFlush() tea.Cmd {
	if m.flushQueued {
		return nil
	}
	m.flushQueued = true
	return tea.Tick(m.throttle.Interval(), func(time.Time) tea.Msg { return scrollFlushMsg{} })
}

func (m *Model) handleScrollFlushMsg(tea.Msg) tea.Cmd {
	m.flushQueued = false
	now := m.now()
	if m.throttle.Flush(now) {
		return m.evaluate(now, false)
	}
	if m.throttle.Pending() {
		return m.queueFlush()
	}
	return nil
}

// evaluate feeds the tracker and starts reveals for blocks now on screen.
func (m *Model) evaluate(now time.Time, resize bool) tea.Cmd {
	if resize {
		m.tracker.OnResize()
	} else {
		m.tracker.OnScrollOrResize()
	}
	m.observeVisible(now)
	m.dirty = true
	return m.scheduleFrame()
}

func (m *Model) observeVisible(now time.Time) {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	m.reveal.Stagger = motion.RevealStagger
	if m.tracker.Narrow() {
		m.reveal.Stagger = motion.RevealStaggerNarrow
	}
	visible := []string{}
	for _, blk := range m.doc.blocks {
		if blk.end <= top || blk.start >= bottom {
			continue
		}
		if blk.reveal {
			visible = append(visible, blk.id)
		}
		if blk.skill >= 0 && blk.skill < len(m.skills) {
			m.skills[blk.skill].Trigger(now, m.reduced)
		}
		if blk.stat >= 0 && blk.stat < len(m.counters) {
			m.counters[blk.stat].Trigger(now, m.reduced)
		}
	}
	m.reveal.Observe(visible, now)
}

func (m *Model) animating(now time.Time) bool {
	if m.scroll.Active() || m.reveal.Animating(now) {
		return true
	}
	for i := range m.counters {
		if m.counters[i].Animating(now) {
			return true
		}
	}
	for i := range m.skills {
		if m.skills[i].Animating(now) {
			return true
		}
	}
	return false
}

func (m *Model) scheduleFrame() tea.Cmd {
	if m.frameQueued || !m.animating(m.now()) {
		return nil
	}
	m.frameQueued = true
	return tea.Tick(motion.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.frameQueued = false
	now := m.now()
	var cmd tea.Cmd
	if m.scroll.Active() {
		offset, running := m.scroll.Offset(now)
		if !running {
			m.scroll = motion.Scroll{}
		}
		cmd = m.setOffset(offset)
	}
	m.dirty = true
	return tea.Batch(cmd, m.scheduleFrame())
}

// smoothScrollTo eases the viewport to row over motion.ScrollDuration, or
// jumps straight there with reduced motion.
func (m *Model) smoothScrollTo(row int) tea.Cmd {
	if row < 0 {
		row = 0
	}
	if limit := m.maxOffset(); row > limit {
		row = limit
	}
	if m.reduced {
		return m.scrollTo(row)
	}
	m.scroll = motion.NewScroll(m.viewport.YOffset, row, m.now(), false)
	return m.scheduleFrame()
}

// jumpTo scrolls so section id starts just below the navbar.
func (m *Model) jumpTo(id string) tea.Cmd {
	sec, ok := m.doc.section(id)
	if !ok {
		return nil
	}
	offset := jumpOffsetWide
	if m.tracker.Narrow() {
		offset = jumpOffsetNarrow
	}
	target := sec.start*m.rowUnits - offset
	row := 0
	if target > 0 {
		row = target / m.rowUnits
	}
	events.Scroll.Jump(id, row)
	return m.smoothScrollTo(row)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.phase != phasePage || m.paletteOpen {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelStep)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.relayout()
	tag := m.resize.Trigger()
	return tea.Tick(m.resize.Delay, func(time.Time) tea.Msg { return resizeSettledMsg{tag: tag} })
}

// handleResizeSettledMsg runs once a burst of resizes has been quiet for the
// debounce delay.
func (m *Model) handleResizeSettledMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(resizeSettledMsg)
	if !ok || !m.resize.Fire(settled.tag) || m.phase != phasePage {
		return nil
	}
	return m.evaluate(m.now(), true)
}
