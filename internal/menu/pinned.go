package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
)

func loadPinnedMenu(ctx Context) ([]Item, error) {
	return MenuItemsToItems(ctx, ctx.Store.Pinned()), nil
}

func loadRecentMenu(ctx Context) ([]Item, error) {
	return MenuItemsToItems(ctx, ctx.Store.Recent()), nil
}

// PinnedAction opens category pins and navigates to item pins.
func PinnedAction(ctx Context, item Item) tea.Cmd {
	if strings.HasPrefix(item.ID, catalog.CategoryPinPrefix) {
		return OpenCategoryAction(ctx, item)
	}
	return NavigateAction(ctx, item)
}

// TogglePin pins or unpins the row identified by id. Category rows toggle
// the category pin. It reports the resulting pin state.
func TogglePin(ctx Context, id string) (bool, error) {
	if ctx.Store.IsPinned(id) {
		if categoryID, ok := strings.CutPrefix(id, catalog.CategoryPinPrefix); ok {
			return false, UnpinCategory(ctx, categoryID)
		}
		return false, ctx.Store.RemoveFromPinned(id)
	}
	if categoryID, ok := strings.CutPrefix(id, catalog.CategoryPinPrefix); ok {
		if _, known := ctx.Catalog().Category(categoryID); known {
			return true, ctx.Store.AddCategoryToPinned(categoryID)
		}
	}
	record, ok := ctx.Lookup(id)
	if !ok {
		return false, nil
	}
	record.FromRecent = false
	return true, ctx.Store.AddToPinned(record)
}

// UnpinCategory removes the pin of a whole category.
func UnpinCategory(ctx Context, categoryID string) error {
	return ctx.Store.RemoveFromPinned(catalog.CategoryPinID(categoryID))
}
