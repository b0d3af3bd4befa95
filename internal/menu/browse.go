package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
)

func loadBrowseMenu(ctx Context) ([]Item, error) {
	return CategoriesToItems(ctx, ctx.Catalog().Categories()), nil
}

// CategoryItems returns the rows of a category, parent first.
func CategoryItems(ctx Context, categoryID string) []Item {
	return MenuItemsToItems(ctx, ctx.Catalog().ItemsInCategory(categoryID))
}

// OpenCategoryAction pushes the items of the selected category. The rows
// are built before the command runs.
func OpenCategoryAction(ctx Context, item Item) tea.Cmd {
	categoryID := strings.TrimPrefix(item.ID, catalog.CategoryPinPrefix)
	cat, ok := ctx.Catalog().Category(categoryID)
	if !ok {
		err := fmt.Errorf("unknown category %q", categoryID)
		return func() tea.Msg { return ActionResult{Err: err, Stay: true} }
	}
	msg := CategoryOpenMsg{
		CategoryID: cat.ID,
		Title:      cat.Name,
		Items:      CategoryItems(ctx, cat.ID),
	}
	return func() tea.Msg { return msg }
}
