// Package search implements the mega menu search: substring matching over
// the catalog, grouping by category and the filter chips built from the groups.
package search

import (
	"strings"

	"github.com/atomicstack/navshell/internal/catalog"
)

// AllFilter selects every match regardless of category.
const AllFilter = "all"

// Match is a catalog item annotated with its category display name.
type Match struct {
	catalog.MenuItem
	CategoryName string
}

// FilterOption is a filter chip: a category (or "all") and its match count.
type FilterOption struct {
	ID    string
	Name  string
	Count int
}

// Search returns the items whose name contains query, ignoring case, in
// catalog order. A blank query matches nothing; otherwise the query is
// matched as typed, surrounding spaces included.
func Search(query string, cat *catalog.Catalog) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var matches []Match
	for _, item := range cat.Items() {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		matches = append(matches, Match{MenuItem: item, CategoryName: cat.CategoryName(item.Category)})
	}
	return matches
}

// GroupByCategory partitions matches by category id, keeping their order.
func GroupByCategory(matches []Match) map[string][]Match {
	groups := make(map[string][]Match)
	for _, m := range matches {
		groups[m.Category] = append(groups[m.Category], m)
	}
	return groups
}

// FilterOptions builds the chip list: "all" first, then every category with
// at least one match in catalog order.
func FilterOptions(matches []Match, groups map[string][]Match, categories []catalog.Category) []FilterOption {
	options := []FilterOption{{ID: AllFilter, Name: "All", Count: len(matches)}}
	for _, c := range categories {
		n := len(groups[c.ID])
		if n == 0 {
			continue
		}
		options = append(options, FilterOption{ID: c.ID, Name: c.Name, Count: n})
	}
	return options
}
