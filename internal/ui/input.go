package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		return m.quit("interrupt")
	}
	if m.phase == phaseSplash {
		switch key.String() {
		case "q", "esc":
			return m.quit("splash")
		case "enter", " ":
			return m.startPage()
		}
		return nil
	}
	if m.paletteOpen {
		return m.handlePaletteKey(key)
	}

	switch key.String() {
	case "q":
		return m.quit("key")
	case "/":
		m.openPalette()
		return nil
	case "j", "down":
		return m.scrollBy(1)
	case "k", "up":
		return m.scrollBy(-1)
	case "pgdown", " ", "f":
		return m.scrollBy(m.viewport.Height)
	case "pgup", "b":
		return m.scrollBy(-m.viewport.Height)
	case "ctrl+d":
		return m.scrollBy(m.viewport.Height / 2)
	case "ctrl+u":
		return m.scrollBy(-m.viewport.Height / 2)
	case "g", "home":
		return m.scrollTo(0)
	case "G", "end":
		return m.scrollTo(m.maxOffset())
	case "t":
		if !m.tracker.ShowTop() {
			return nil
		}
		return m.smoothScrollTo(0)
	case "c":
		return m.focusContact()
	case "m":
		return m.setReducedMotion(!m.reduced)
	case "esc":
		m.dismissToast()
		return nil
	}
	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		if r := key.Runes[0]; r >= '1' && r <= '9' {
			return m.jumpToLink(int(r - '1'))
		}
	}
	return nil
}

func (m *Model) jumpToLink(idx int) tea.Cmd {
	links := m.nav.Links()
	if idx < 0 || idx >= len(links) {
		return nil
	}
	return m.jumpTo(links[idx].Fragment())
}

// setReducedMotion switches animations off or on. A smooth scroll in flight
// lands on its target at once.
func (m *Model) setReducedMotion(reduced bool) tea.Cmd {
	m.reduced = reduced
	m.reveal.Reduced = reduced
	events.App.ReducedMotion(reduced)
	m.dirty = true
	if reduced && m.scroll.Active() {
		return m.scrollTo(m.scroll.Target())
	}
	return nil
}
