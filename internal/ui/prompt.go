package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/menu"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: reset pending state, then
// run the action and apply its result.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.clearPending()
	m.dismissInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleConfirmPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.ConfirmPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.confirm = &prompt
		m.mode = ModeConfirm
		return promptResult{}
	})
}

// handleConfirmKey consumes key presses while a confirmation is pending.
func (m *Model) handleConfirmKey(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeConfirm || m.confirm == nil {
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	prompt := *m.confirm
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(keyMsg, m.keys.Confirm):
		m.endConfirm()
		events.UI.Confirm(prompt.ActionID, true)
		return true, m.withPrompt(func() promptResult {
			if prompt.Run != nil {
				if err := prompt.Run(); err != nil {
					events.Action.Error(err)
					m.refreshLevels()
					return promptResult{Err: err}
				}
			}
			m.refreshLevels()
			events.Action.Success(prompt.Done)
			return promptResult{Info: prompt.Done}
		})
	case key.Matches(keyMsg, m.keys.Cancel):
		m.endConfirm()
		events.UI.Confirm(prompt.ActionID, false)
		return true, nil
	}
	return true, nil
}

func (m *Model) endConfirm() {
	m.confirm = nil
	m.mode = ModeMenu
}
