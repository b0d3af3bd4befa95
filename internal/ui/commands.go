package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/logging"
	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/menu"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.clearPending()
	if result.Navigate != "" {
		// The destination was reached even when recording it failed.
		m.selected = result.Navigate
		if result.Err != nil {
			logging.Error(result.Err)
			events.Action.Error(result.Err)
		} else {
			events.Action.Success(result.Info)
		}
		return tea.Quit
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.dismissInfo()
		events.Action.Error(result.Err)
		return nil
	}
	events.Action.Success(result.Info)
	if result.Stay {
		m.errMsg = ""
		m.refreshLevels()
		if result.Info != "" {
			m.setInfo(result.Info)
		}
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.dismissInfo()
	}
	return tea.Quit
}

// handleNavigateMsg records the chosen item on the event loop, where the
// store lives, and then finishes like any other action.
func (m *Model) handleNavigateMsg(msg tea.Msg) tea.Cmd {
	nav, ok := msg.(menu.NavigateMsg)
	if !ok {
		return nil
	}
	return m.handleActionResultMsg(menu.Visit(m.menuContext(), nav.Item))
}

// loadMenuCmd runs the loader on the event loop since loaders read the
// store; only the delivery of the rows is left to the command.
func (m *Model) loadMenuCmd(id, title string, loader menu.Loader) tea.Cmd {
	items, err := loader(m.menuContext())
	if err != nil {
		logging.Error(err)
	}
	loaded := categoryLoadedMsg{id: id, title: title, items: items, err: err}
	return func() tea.Msg { return loaded }
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{Store: m.store, Search: m.engine}
}
