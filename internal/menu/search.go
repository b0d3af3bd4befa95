package menu

// loadSearchMenu opens the search surface with no rows; the query fills it.
func loadSearchMenu(Context) ([]Item, error) {
	return nil, nil
}

// SearchItems runs query through the engine and returns the rows visible
// under the active filter chip.
func SearchItems(ctx Context, query string) []Item {
	if ctx.Search.Query() != query {
		ctx.Search.SetQuery(query)
	}
	return MatchesToItems(ctx, ctx.Search.ActiveResults())
}
