package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.InterruptMsg:
		// SIGINT: shut the engine down and leave the alt screen cleanly.
		return m.quit()

	case tickMsg:
		select {
		case snap, ok := <-m.stream:
			if ok {
				m.latest = snap
				m.sel.Resize(len(snap.Processes))
				// Status messages live for one tick.
				m.statusText = ""
				m.statusErr = false
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.sel.Mode {
	case ModeNormal:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Kill):
			m.sel.EnterKill(len(m.latest.Processes))
		}

	case ModeKill:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Up):
			m.sel.Move(-1, len(m.latest.Processes))
		case key.Matches(msg, m.keys.Down):
			m.sel.Move(1, len(m.latest.Processes))
		case key.Matches(msg, m.keys.Kill):
			m.sel.Capture(m.latest.Processes)
		case key.Matches(msg, m.keys.Deny), key.Matches(msg, m.keys.Back):
			m.sel.Cancel()
		}

	case ModeConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmKill()
		case key.Matches(msg, m.keys.Deny), key.Matches(msg, m.keys.Back):
			m.sel.Cancel()
		}
	}
	return m, nil
}

// confirmKill issues the termination request for the captured target and
// returns to normal mode on both outcomes. The request is fire-and-forget:
// the status line reports whether the signal was sent, not whether the
// process died.
func (m *Model) confirmKill() {
	pid, name := m.sel.Target()
	m.sel.Cancel()

	killed, err := m.terminate(pid)
	switch {
	case err != nil:
		m.log.Warn("terminate failed", zap.Int32("pid", pid), zap.Error(err))
		m.setStatus(fmt.Sprintf("Failed to terminate %s (pid %d): %v", name, pid, err), true)
	case killed:
		m.log.Info("sent SIGTERM", zap.Int32("pid", pid), zap.String("name", name))
		m.setStatus(fmt.Sprintf("Sent SIGTERM to %s (pid %d)", name, pid), false)
	default:
		m.setStatus(fmt.Sprintf("%s (pid %d) already exited", name, pid), false)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusText = text
	m.statusErr = isErr
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
