package menu

import (
	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/format/table"
	"github.com/atomicstack/navshell/internal/search"
	"github.com/atomicstack/navshell/internal/theme"
)

const pinMark = "★"

// rowColumns lays out pin mark, glyph, name and category. Long names are
// cut so the category column stays readable.
var rowColumns = []table.Column{{}, {}, {MaxWidth: 32}, {}}

// MenuItemsToItems renders catalog records as aligned rows:
// pin mark, icon glyph, name and category name.
func MenuItemsToItems(ctx Context, records []catalog.MenuItem) []Item {
	if len(records) == 0 {
		return nil
	}
	cat := ctx.Catalog()
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			pinColumn(ctx, rec.ID),
			theme.Glyph(ctx.Store.GetParentIcon(rec)),
			rec.Name,
			cat.CategoryName(rec.Category),
		})
	}
	return toItems(records, rows)
}

// MatchesToItems renders search matches as aligned rows.
func MatchesToItems(ctx Context, matches []search.Match) []Item {
	if len(matches) == 0 {
		return nil
	}
	records := make([]catalog.MenuItem, 0, len(matches))
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		records = append(records, m.MenuItem)
		rows = append(rows, []string{
			pinColumn(ctx, m.ID),
			theme.Glyph(ctx.Store.GetParentIcon(m.MenuItem)),
			m.Name,
			m.CategoryName,
		})
	}
	return toItems(records, rows)
}

// CategoriesToItems renders categories as rows whose ids are category pin ids.
func CategoriesToItems(ctx Context, categories []catalog.Category) []Item {
	if len(categories) == 0 {
		return nil
	}
	records := make([]catalog.MenuItem, 0, len(categories))
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		id := catalog.CategoryPinID(c.ID)
		records = append(records, catalog.MenuItem{ID: id, Name: c.Name, Category: c.ID, IsParent: true})
		rows = append(rows, []string{
			pinColumn(ctx, id),
			theme.Glyph(ctx.Store.GetCategoryIcon(c.ID)),
			c.Name,
			"",
		})
	}
	return toItems(records, rows)
}

func toItems(records []catalog.MenuItem, rows [][]string) []Item {
	lines := table.Format(rows, rowColumns)
	items := make([]Item, len(records))
	for i, rec := range records {
		items[i] = Item{ID: rec.ID, Label: table.TrimRight(lines[i]), Name: rec.Name}
	}
	return items
}

func pinColumn(ctx Context, id string) string {
	if ctx.Store != nil && ctx.Store.IsPinned(id) {
		return pinMark
	}
	return " "
}
