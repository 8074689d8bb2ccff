package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/contact"
)

const (
	maxToasts = 3
	// toastPadding is the horizontal padding the toast styles add.
	toastPadding = 4
)

type toast struct {
	id   int
	text string
	kind contact.NoticeKind
}

type toastExpiredMsg struct {
	id int
}

// pushToast shows n until its duration runs out. The oldest toast is dropped
// when the stack is full.
func (m *Model) pushToast(n *contact.Notice) tea.Cmd {
	if n == nil {
		return nil
	}
	m.toastSeq++
	id := m.toastSeq
	m.toasts = append(m.toasts, toast{id: id, text: n.Text, kind: n.Kind})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
	m.dirty = true
	return tea.Tick(n.Duration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) handleToastExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return nil
	}
	for i, t := range m.toasts {
		if t.id == expired.id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			m.dirty = true
			break
		}
	}
	return nil
}

// dismissToast removes the newest toast before its timer runs out.
func (m *Model) dismissToast() {
	if len(m.toasts) == 0 {
		return
	}
	m.toasts = m.toasts[:len(m.toasts)-1]
	m.dirty = true
}

func (m *Model) toastLines(width int) []styledLine {
	width -= toastPadding
	lines := make([]styledLine, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := styles.ToastSuccess
		icon := "✓ "
		if t.kind == contact.NoticeError {
			style = styles.ToastError
			icon = "✗ "
		}
		lines = append(lines, styledLine{text: truncateText(padRight(icon+t.text, width), width), style: style})
	}
	return lines
}
