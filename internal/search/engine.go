package search

import (
	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/logging/events"
)

// Engine holds the query and active filter of the search surface along with
// the results derived from them.
type Engine struct {
	catalog *catalog.Catalog

	query        string
	activeFilter string

	matches []Match
	groups  map[string][]Match
	options []FilterOption
}

// NewEngine returns an engine with an empty query and the "all" filter.
func NewEngine(cat *catalog.Catalog) *Engine {
	e := &Engine{catalog: cat, activeFilter: AllFilter}
	e.recompute()
	return e
}

// Query returns the current query text.
func (e *Engine) Query() string {
	return e.query
}

// SetQuery recomputes matches, groups and filter options. The active filter
// is left untouched.
func (e *Engine) SetQuery(query string) {
	e.query = query
	e.recompute()
	events.Search.Query(query, len(e.matches))
}

// ActiveFilter returns the selected category id or AllFilter.
func (e *Engine) ActiveFilter() string {
	return e.activeFilter
}

// SetActiveFilter selects a category id (or AllFilter). An empty id selects AllFilter.
func (e *Engine) SetActiveFilter(id string) {
	if id == "" {
		id = AllFilter
	}
	e.activeFilter = id
	events.Search.Filter(id, len(e.ActiveResults()))
}

// Matches returns every match for the current query.
func (e *Engine) Matches() []Match {
	return append([]Match(nil), e.matches...)
}

// Groups returns the matches grouped by category id.
func (e *Engine) Groups() map[string][]Match {
	out := make(map[string][]Match, len(e.groups))
	for k, v := range e.groups {
		out[k] = append([]Match(nil), v...)
	}
	return out
}

// FilterOptions returns the chips for the current query.
func (e *Engine) FilterOptions() []FilterOption {
	return append([]FilterOption(nil), e.options...)
}

// ActiveResults returns the matches visible under the active filter. A filter
// with no group, e.g. one left over from a previous query, yields nothing.
func (e *Engine) ActiveResults() []Match {
	if e.activeFilter == AllFilter {
		return e.Matches()
	}
	return append([]Match(nil), e.groups[e.activeFilter]...)
}

// NextFilter selects the chip after the active one, wrapping around.
func (e *Engine) NextFilter() {
	e.stepFilter(1)
}

// PrevFilter selects the chip before the active one, wrapping around.
func (e *Engine) PrevFilter() {
	e.stepFilter(-1)
}

func (e *Engine) stepFilter(delta int) {
	n := len(e.options)
	if n == 0 {
		return
	}
	idx := 0
	for i, opt := range e.options {
		if opt.ID == e.activeFilter {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	e.SetActiveFilter(e.options[idx].ID)
}

// Reset clears the query and returns the filter to AllFilter. The search
// surface calls it when it closes.
func (e *Engine) Reset() {
	e.query = ""
	e.activeFilter = AllFilter
	e.recompute()
	events.Search.Reset()
}

func (e *Engine) recompute() {
	e.matches = Search(e.query, e.catalog)
	e.groups = GroupByCategory(e.matches)
	e.options = FilterOptions(e.matches, e.groups, e.catalog.Categories())
}
