package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/logging/events"
)

// NavigateMsg carries the item the user chose. The UI answers it with Visit.
type NavigateMsg struct {
	Item catalog.MenuItem
}

// NavigateAction resolves the row to a menu item and reports it as the
// navigation target. The returned command does not touch the store.
func NavigateAction(ctx Context, item Item) tea.Cmd {
	record, ok := ctx.Lookup(item.ID)
	if !ok {
		err := fmt.Errorf("unknown menu item %q", item.ID)
		return func() tea.Msg { return ActionResult{Err: err, Stay: true} }
	}
	return func() tea.Msg { return NavigateMsg{Item: record} }
}

// Visit records the item as recent. It must run on the UI event loop.
func Visit(ctx Context, record catalog.MenuItem) ActionResult {
	events.App.Navigate(record.ID, record.Name)
	if err := ctx.Store.TrackRecentItem(record); err != nil {
		return ActionResult{Err: err, Navigate: record.ID}
	}
	return ActionResult{Info: fmt.Sprintf("Opened %s", record.Name), Navigate: record.ID}
}
