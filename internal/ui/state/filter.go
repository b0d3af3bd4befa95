package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/navshell/internal/menu"
)

// SetFilter replaces the query, places the filter caret and re-filters the
// rows. Starting a query remembers the row cursor; clearing it restores it.
func (l *Level) SetFilter(query string, caret int) {
	was := strings.TrimSpace(l.Filter)
	now := strings.TrimSpace(query)
	l.Filter = query
	l.FilterCursor = min(max(caret, 0), len([]rune(query)))

	switch {
	case now != "" && was == "":
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case now != "":
		l.Cursor = 0
	}
	l.applyFilter()

	switch {
	case now != "":
		if idx := BestMatchIndex(l.Items, now); idx >= 0 {
			l.Cursor = idx
		}
	case was != "":
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	}
}

// applyFilter recomputes the visible rows from the matcher, or from the
// level's own rows when it has none.
func (l *Level) applyFilter() {
	if l.Matcher != nil {
		l.Items = CloneItems(l.Matcher(l.Filter))
	} else {
		l.Items = FilterItems(l.Full, l.Filter)
	}
	l.clampCursor()
	if len(l.Items) == 0 || l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

// FilterItems keeps the rows whose name fuzzy-matches the query. When the
// fuzzy pass finds nothing, a substring match over names and ids is used.
func FilterItems(items []menu.Item, query string) []menu.Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return CloneItems(items)
	}
	if hits := fuzzyHits(items, q); len(hits) > 0 {
		out := make([]menu.Item, 0, len(hits))
		for i, item := range items {
			if hits[i] {
				out = append(out, item)
			}
		}
		return out
	}
	lower := strings.ToLower(q)
	out := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if containsFold(item.DisplayName(), lower) || containsFold(item.ID, lower) {
			out = append(out, item)
		}
	}
	return out
}

func fuzzyHits(items []menu.Item, query string) map[int]bool {
	ranks := fuzzy.RankFindNormalizedFold(query, names(items))
	hits := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		hits[r.OriginalIndex] = true
	}
	return hits
}

// BestMatchIndex picks the row the cursor should land on for a query.
// Exact names win over prefixes, prefixes over substrings, and the closest
// fuzzy match is the last resort.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	tiers := []func(menu.Item) bool{
		func(it menu.Item) bool { return strings.EqualFold(it.DisplayName(), q) || strings.EqualFold(it.ID, q) },
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.DisplayName()), q) },
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), q) },
		func(it menu.Item) bool { return containsFold(it.DisplayName(), q) || containsFold(it.ID, q) },
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names(items))
	best := -1
	bestDistance := 0
	for _, r := range ranks {
		if best < 0 || r.Distance < bestDistance || (r.Distance == bestDistance && r.OriginalIndex < best) {
			best, bestDistance = r.OriginalIndex, r.Distance
		}
	}
	if best < 0 || best >= len(items) {
		return 0
	}
	return best
}

func names(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.DisplayName()
	}
	return out
}

func containsFold(s, lower string) bool {
	return strings.Contains(strings.ToLower(s), lower)
}
