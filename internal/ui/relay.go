package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/relay"
)

type relayResultMsg struct {
	result relay.Result
}

type relayDoneMsg struct{}

func waitForRelayResult(outbox Outbox) tea.Cmd {
	if outbox == nil {
		return nil
	}
	ch := outbox.Results()
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return relayDoneMsg{}
		}
		return relayResultMsg{result: res}
	}
}

func (m *Model) handleRelayResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(relayResultMsg)
	if !ok {
		return nil
	}
	if res.result.Err != nil {
		logging.Error(res.result.Err)
	}
	cmds := []tea.Cmd{waitForRelayResult(m.outbox)}
	if notice, reset := m.form.Resolve(res.result); notice != nil {
		m.dirty = true
		cmds = append(cmds, reset, m.pushToast(notice))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleRelayDoneMsg(tea.Msg) tea.Cmd {
	m.outbox = nil
	return nil
}
