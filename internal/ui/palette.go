package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
)

const paletteChromeRows = 3

func (m *Model) openPalette() {
	if m.paletteOpen {
		return
	}
	m.paletteOpen = true
	m.palette.Reset(m.tracker.Active())
	m.palette.EnsureCursorVisible(m.paletteRows())
	events.Nav.MenuOpen(true)
	m.dirty = true
}

func (m *Model) closePalette() {
	if !m.paletteOpen {
		return
	}
	m.paletteOpen = false
	events.Nav.MenuOpen(false)
	m.dirty = true
}

func (m *Model) paletteRows() int {
	rows := m.viewport.Height - paletteChromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) handlePaletteKey(key tea.KeyMsg) tea.Cmd {
	p := m.palette
	defer func() {
		p.EnsureCursorVisible(m.paletteRows())
		m.dirty = true
	}()

	switch key.String() {
	case "esc":
		m.closePalette()
		return nil
	case "enter":
		item, ok := p.Selected()
		m.closePalette()
		if !ok {
			return nil
		}
		return m.jumpTo(item.ID)
	case "up", "ctrl+p":
		p.MoveCursorUp()
		return nil
	case "down", "ctrl+n":
		p.MoveCursorDown()
		return nil
	case "pgup":
		p.MoveCursorPageUp(m.paletteRows())
		return nil
	case "pgdown":
		p.MoveCursorPageDown(m.paletteRows())
		return nil
	case "home":
		p.MoveCursorHome()
		return nil
	case "end":
		p.MoveCursorEnd()
		return nil
	case "ctrl+u":
		p.SetFilter("", 0)
		m.traceFilter()
		return nil
	case "ctrl+w":
		if p.DeleteFilterWordBackward() {
			m.traceFilter()
		}
		return nil
	case "left":
		p.MoveFilterCursorRuneBackward()
		return nil
	case "right":
		p.MoveFilterCursorRuneForward()
		return nil
	case "ctrl+a":
		p.MoveFilterCursorStart()
		return nil
	case "ctrl+e":
		p.MoveFilterCursorEnd()
		return nil
	case "alt+b":
		p.MoveFilterCursorWordBackward()
		return nil
	case "alt+f":
		p.MoveFilterCursorWordForward()
		return nil
	}

	switch key.Type {
	case tea.KeyBackspace:
		if p.DeleteFilterRuneBackward() {
			m.traceFilter()
		}
	case tea.KeySpace:
		p.InsertFilterText(" ")
		m.traceFilter()
	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return nil
		}
		p.InsertFilterText(string(key.Runes))
		m.traceFilter()
	}
	return nil
}

func (m *Model) traceFilter() {
	events.Nav.MenuFilter(m.palette.Filter, len(m.palette.Items))
}

func (m *Model) paletteView(width, height int) string {
	p := m.palette
	lines := make([]styledLine, 0, height)
	lines = append(lines, styledLine{text: p.Title, style: styles.PaletteTitle})

	prompt := styles.FilterPrompt.Render("/ ")
	if p.Filter == "" {
		lines = append(lines, styledLine{text: prompt + styles.FilterPlaceholder.Render("type to filter"), raw: true})
	} else {
		runes := []rune(p.Filter)
		pos := p.FilterCursorPos()
		cursor := " "
		after := ""
		if pos < len(runes) {
			cursor = string(runes[pos])
			after = string(runes[pos+1:])
		}
		text := prompt + styles.Filter.Render(string(runes[:pos])) + styles.PaletteSelected.Render(cursor) + styles.Filter.Render(after)
		lines = append(lines, styledLine{text: text, raw: true})
	}
	lines = append(lines, styledLine{})

	if len(p.Items) == 0 {
		lines = append(lines, styledLine{text: "No matching sections", style: styles.Muted})
	}
	end := p.ViewportOffset + m.paletteRows()
	if end > len(p.Items) {
		end = len(p.Items)
	}
	active := m.tracker.Active()
	for i := p.ViewportOffset; i < end; i++ {
		item := p.Items[i]
		marker := "  "
		if item.ID == active {
			marker = "● "
		}
		text := fmt.Sprintf(" %s %s%s", item.Hint, marker, item.Label)
		style := styles.PaletteItem
		if i == p.Cursor {
			style = styles.PaletteSelected
			text = padRight(text, width)
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	return renderLines(applyWidth(limitHeight(lines, height, width), width))
}

func padRight(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
