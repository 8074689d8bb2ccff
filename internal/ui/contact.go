package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/contact"
	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/logging/events"
)

// handleActiveForm gives the contact form first look at every message. Keys
// are consumed while the form holds focus; everything else still reaches the
// regular handlers so timers keep running.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if _, ok := msg.(contact.ResetMsg); ok {
			cmd, _, _ := m.form.Update(msg)
			m.dirty = true
			return true, cmd
		}
		if !m.form.Active() {
			return false, nil
		}
		cmd, _, _ := m.form.Update(msg)
		return false, cmd
	}
	if m.phase != phasePage || m.paletteOpen || !m.form.Active() {
		return false, nil
	}
	if key.String() == "ctrl+c" {
		return true, m.quit("interrupt")
	}
	cmd, submit, cancel := m.form.Update(msg)
	m.dirty = true
	if cancel {
		events.Contact.Focus("")
		return true, cmd
	}
	if submit {
		return true, tea.Batch(cmd, m.submitContact())
	}
	return true, cmd
}

func (m *Model) focusContact() tea.Cmd {
	if _, ok := m.doc.section("contact"); !ok {
		return nil
	}
	m.dirty = true
	return tea.Batch(m.jumpTo("contact"), m.form.Focus())
}

// submitContact validates the form and hands the message to the outbox.
func (m *Model) submitContact() tea.Cmd {
	msg, notice, err := m.form.Begin()
	if err != nil {
		if errors.Is(err, contact.ErrBusy) {
			return nil
		}
		return m.pushToast(notice)
	}
	m.dirty = true
	if m.outbox == nil {
		logging.Error(errors.New("contact: no relay configured"))
		notice, reset := m.form.Abort()
		return tea.Batch(reset, m.pushToast(notice))
	}
	id, err := m.outbox.Submit(msg)
	if err != nil {
		logging.Error(err)
		notice, reset := m.form.Abort()
		return tea.Batch(reset, m.pushToast(notice))
	}
	m.form.Queued(id)
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || m.form.Status() != contact.Sending {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	m.dirty = true
	return cmd
}
