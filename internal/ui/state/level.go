package state

import (
	"strings"

	"github.com/atomicstack/navshell/internal/menu"
)

// Matcher produces the visible rows for a filter query. Levels without a
// matcher filter their own items.
type Matcher func(query string) []menu.Item

// Reloader rebuilds the unfiltered rows of a level from their source.
type Reloader func() ([]menu.Item, error)

// Level encapsulates menu level state such as cursor position, filter, and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	Node           *menu.Node
	Matcher        Matcher
	Reloader       Reloader
	ViewportOffset int
}

// NewLevel constructs a Level using the provided items and menu node.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// Pinnable reports whether rows on this level accept the pin toggle.
func (l *Level) Pinnable() bool {
	return l.Node != nil && l.Node.Pinnable
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		suffix := id[idx+1:]
		for i, item := range l.Items {
			if item.ID == suffix {
				return i
			}
		}
	}
	return -1
}

// UpdateItems replaces the level items and re-applies the filter, keeping
// the viewport where it was when it still fits.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// Refresh re-runs the filter or matcher without changing the query.
func (l *Level) Refresh() {
	l.applyFilter()
}

// Reload rebuilds the rows from the level's reloader, falling back to
// Refresh when the level has none. The selected entry stays selected when
// it survives the rebuild.
func (l *Level) Reload() error {
	selected, hadSelection := l.Current()
	if l.Reloader == nil {
		l.Refresh()
	} else {
		items, err := l.Reloader()
		if err != nil {
			return err
		}
		l.UpdateItems(items)
	}
	if hadSelection {
		l.SelectID(selected.ID)
	}
	return nil
}

// CloneItems returns a copy of items backed by a new array.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
