package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/logging"
	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/menu"
	"github.com/atomicstack/navshell/internal/ui/command"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return tea.Quit
	}
	if len(m.stack) <= 1 {
		return tea.Quit
	}
	if current.ID == menu.SearchID && m.engine != nil {
		m.engine.Reset()
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.IndexOf(current.ID); idx >= 0 {
			parent.Cursor = idx
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.dismissInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	ctx := m.menuContext()
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node != nil {
		if child, ok := node.Children[item.ID]; ok {
			if child.Loader != nil {
				m.clearFilter(current)
				current.LastCursor = current.Cursor
				m.startPending(child.ID, item.Label)
				return m.loadMenuCmd(child.ID, item.Label, child.Loader)
			}
			if child.Action != nil {
				m.startPending(child.ID, item.Label)
				return m.bus.Execute(ctx, command.Request{Node: child.ID, Item: item, Handler: child.Action})
			}
		}
		if node.Action != nil {
			m.startPending(node.ID, item.Label)
			return m.bus.Execute(ctx, command.Request{Node: node.ID, Item: item, Handler: node.Action})
		}
	}
	m.setInfo(fmt.Sprintf("Selected %s (no action defined)", item.DisplayName()))
	return nil
}

func (m *Model) startPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.dismissInfo()
}

func (m *Model) clearPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

func (m *Model) clearFilter(l *level) {
	if l.Filter == "" {
		return
	}
	before := l.FilterCursorPos()
	l.SetFilter("", 0)
	m.noteFilterCursorChange(l, before)
}

func (m *Model) togglePin() {
	current := m.currentLevel()
	if m.loading || current == nil || !current.Pinnable() || m.store == nil {
		return
	}
	item, ok := current.Current()
	if !ok {
		return
	}
	name := m.rowName(item)
	pinned, err := menu.TogglePin(m.menuContext(), item.ID)
	events.UI.TogglePin(current.ID, item.ID, pinned)
	m.refreshLevels()
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	if pinned {
		m.setInfo(fmt.Sprintf("Pinned %s", name))
	} else {
		m.setInfo(fmt.Sprintf("Unpinned %s", name))
	}
}

func (m *Model) rowName(item menu.Item) string {
	if item.Name != "" {
		return item.Name
	}
	ctx := m.menuContext()
	if record, ok := ctx.Lookup(item.ID); ok {
		return record.Name
	}
	if id, ok := strings.CutPrefix(item.ID, catalog.CategoryPinPrefix); ok {
		if cat, ok := ctx.Catalog().Category(id); ok {
			return cat.Name
		}
	}
	return item.ID
}

// refreshLevels rebuilds every level on the stack so pin marks and the
// pinned and recent lists reflect the store.
func (m *Model) refreshLevels() {
	for _, lvl := range m.stack {
		if err := lvl.Reload(); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		m.syncViewport(lvl)
	}
}

func (m *Model) cycleFilterChip(delta int) {
	current := m.currentLevel()
	if m.loading || current == nil || current.ID != menu.SearchID || m.engine == nil {
		return
	}
	if delta > 0 {
		m.engine.NextFilter()
	} else {
		m.engine.PrevFilter()
	}
	current.Refresh()
	if len(current.Items) > 0 {
		current.Cursor = 0
	}
	m.syncViewport(current)
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor > 0 {
				current.Cursor--
			} else {
				current.Cursor = n - 1
			}
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if n := len(current.Items); n > 0 {
			if current.Cursor < n-1 {
				current.Cursor++
			} else {
				current.Cursor = 0
			}
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncViewport(current)
		}
	}
}

func (m *Model) moveCursorWith(move func(*level) bool) {
	if current := m.currentLevel(); current != nil {
		if move(current) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Pin):
		m.togglePin()
		return nil
	case key.Matches(keyMsg, m.keys.NextFilter):
		m.cycleFilterChip(1)
		return nil
	case key.Matches(keyMsg, m.keys.PrevFilter):
		m.cycleFilterChip(-1)
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Enter):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorDown()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorWith((*level).MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorWith((*level).MoveCursorEnd)
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.clearPending()
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	m.pushLevel(newLevel(update.id, update.title, update.items, node))
	return nil
}

func (m *Model) handleCategoryOpenMsg(msg tea.Msg) tea.Cmd {
	open, ok := msg.(menu.CategoryOpenMsg)
	if !ok {
		return nil
	}
	m.clearPending()
	m.errMsg = ""
	if current := m.currentLevel(); current != nil {
		current.LastCursor = current.Cursor
	}
	node, _ := m.registry.Find(menu.BrowseItems)
	lvl := newLevel(menu.BrowseItems, open.Title, open.Items, node)
	categoryID := open.CategoryID
	lvl.Reloader = func() ([]menu.Item, error) {
		return menu.CategoryItems(m.menuContext(), categoryID), nil
	}
	m.pushLevel(lvl)
	return nil
}

func (m *Model) pushLevel(lvl *level) {
	m.applyNodeSettings(lvl)
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	if len(lvl.Items) == 0 && lvl.Matcher == nil {
		m.setInfo("No entries found.")
	} else {
		m.expireInfo()
	}
}

// applyNodeSettings wires the row sources of a level: loader levels reload
// through their loader and the search level asks the engine for rows.
func (m *Model) applyNodeSettings(l *level) {
	if l == nil {
		return
	}
	if l.Node == nil {
		if node, ok := m.registry.Find(l.ID); ok {
			l.Node = node
		}
	}
	if l.Node == nil {
		return
	}
	if l.ID == menu.SearchID {
		if m.engine != nil {
			m.engine.Reset()
		}
		l.Matcher = func(query string) []menu.Item {
			return menu.SearchItems(m.menuContext(), query)
		}
		l.Refresh()
		return
	}
	if l.Reloader == nil && l.Node.Loader != nil && l.ID != "root" {
		loader := l.Node.Loader
		l.Reloader = func() ([]menu.Item, error) {
			return loader(m.menuContext())
		}
	}
}

func (m *Model) applyRootMenuOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}
	if m.registry == nil {
		return
	}
	id := strings.ToLower(trimmed)
	node, ok := m.registry.Find(id)
	if !ok || node.Loader == nil {
		m.errMsg = fmt.Sprintf("Unknown root menu %q", trimmed)
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}

	items, err := node.Loader(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = fmt.Sprintf("Failed to load %s menu: %v", id, err)
	} else {
		m.errMsg = ""
	}

	title := strings.TrimSpace(headerSegmentCleaner.Replace(node.ID))
	root := newLevel(node.ID, title, items, node)
	m.applyNodeSettings(root)
	m.syncViewport(root)
	m.stack = []*level{root}
	m.rootMenuID = node.ID

	segment := crumbFor(root)
	if segment == "" {
		segment = title
	}
	m.rootTitle = segment
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
