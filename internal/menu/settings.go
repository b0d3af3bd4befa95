package menu

import (
	tea "github.com/charmbracelet/bubbletea"
)

func loadSettingsMenu(Context) ([]Item, error) {
	ids := []string{"reset-pins", "clear-recent"}
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items, nil
}

// ResetPinsAction asks for confirmation before restoring the default pins.
func ResetPinsAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		return ConfirmPrompt{
			ActionID: "settings:reset-pins",
			Question: "Reset pinned items to the defaults?",
			Run:      ctx.Store.ResetPinned,
			Done:     "Pinned items reset",
		}
	}
}

// ClearRecentAction asks for confirmation before forgetting recent items.
func ClearRecentAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		return ConfirmPrompt{
			ActionID: "settings:clear-recent",
			Question: "Clear recently visited items?",
			Run:      ctx.Store.ClearRecent,
			Done:     "Recent items cleared",
		}
	}
}
