package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/menu"
)

// filterKeyMap holds the readline-style bindings that edit the query.
type filterKeyMap struct {
	Clear      key.Binding
	DeleteWord key.Binding
	Backspace  key.Binding
	LineStart  key.Binding
	LineEnd    key.Binding
	WordLeft   key.Binding
	WordRight  key.Binding
	Left       key.Binding
	Right      key.Binding
}

func defaultFilterKeyMap() filterKeyMap {
	return filterKeyMap{
		Clear:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		LineStart:  key.NewBinding(key.WithKeys("ctrl+a")),
		LineEnd:    key.NewBinding(key.WithKeys("ctrl+e")),
		WordLeft:   key.NewBinding(key.WithKeys("alt+b")),
		WordRight:  key.NewBinding(key.WithKeys("alt+f")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
	}
}

// filterEdit is one change to a level's query or caret.
type filterEdit struct {
	run func(*level) bool
	// edits the query text rather than only moving the caret
	query bool
	trace func(*level)
}

type filterBinding struct {
	binding key.Binding
	edit    filterEdit
}

func (m *Model) filterEdits() []filterBinding {
	fk := m.keys.Filter
	caret := func(l *level) { events.Filter.Cursor(l.ID, l.FilterCursor) }
	word := func(l *level) { events.Filter.CursorWord(l.ID, l.FilterCursor) }
	return []filterBinding{
		{fk.Clear, filterEdit{run: clearQuery, query: true, trace: func(l *level) { events.Filter.Cleared(l.ID) }}},
		{fk.DeleteWord, filterEdit{run: (*level).DeleteFilterWordBackward, query: true, trace: func(l *level) { events.Filter.WordBackspace(l.ID, l.Filter) }}},
		{fk.Backspace, filterEdit{run: (*level).DeleteFilterRuneBackward, query: true, trace: func(l *level) { events.Filter.Backspace(l.ID, l.Filter) }}},
		{fk.LineStart, filterEdit{run: (*level).MoveFilterCursorStart, trace: caret}},
		{fk.LineEnd, filterEdit{run: (*level).MoveFilterCursorEnd, trace: caret}},
		{fk.WordLeft, filterEdit{run: (*level).MoveFilterCursorWordBackward, trace: word}},
		{fk.WordRight, filterEdit{run: (*level).MoveFilterCursorWordForward, trace: word}},
		{fk.Left, filterEdit{run: (*level).MoveFilterCursorRuneBackward, trace: caret}},
		{fk.Right, filterEdit{run: (*level).MoveFilterCursorRuneForward, trace: caret}},
	}
}

func clearQuery(l *level) bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// handleTextInput applies a key to the query of the current level and
// reports whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if m.loading || current == nil {
		return false
	}
	for _, candidate := range m.filterEdits() {
		if key.Matches(msg, candidate.binding) {
			return m.applyFilterEdit(current, candidate.edit)
		}
	}
	text, ok := typedText(msg)
	if !ok {
		return false
	}
	return m.applyFilterEdit(current, filterEdit{
		run:   func(l *level) bool { return l.InsertFilterText(text) },
		query: true,
		trace: func(l *level) { events.Filter.Append(l.ID, l.Filter) },
	})
}

// typedText extracts printable input from a key press.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return "", false
			}
		}
		return string(msg.Runes), true
	}
	return "", false
}

func (m *Model) applyFilterEdit(l *level, edit filterEdit) bool {
	before := l.FilterCursorPos()
	if !edit.run(l) {
		return false
	}
	m.noteFilterCursorChange(l, before)
	if edit.trace != nil {
		edit.trace(l)
	}
	if edit.query {
		m.dismissInfo()
		m.errMsg = ""
		m.syncViewport(l)
	}
	return true
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l != nil && before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// filterPrompt renders the query line with its caret, or a placeholder
// naming what typing does on this level.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ">"
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	m.filterCursor.TextStyle = styleOrZero(styles.Filter)
	prompt := renderWith(styles.FilterPrompt, "» ")

	if current.Filter == "" {
		placeholder := []rune(placeholderFor(current))
		m.filterCursor.TextStyle = styleOrZero(styles.FilterPlaceholder)
		return prompt + m.renderFilterCursor(string(placeholder[0])) + renderWith(styles.FilterPlaceholder, string(placeholder[1:]))
	}

	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	under, after := " ", ""
	if pos < len(runes) {
		under = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + renderWith(styles.Filter, string(runes[:pos])) + m.renderFilterCursor(under) + renderWith(styles.Filter, after)
}

func placeholderFor(l *level) string {
	if l.ID == menu.SearchID {
		return "(type to search)"
	}
	return "(type to filter)"
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	switch {
	case m.filterCursor.Blink:
		return base.Render(char)
	case styles.Cursor != nil:
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	default:
		return base.Reverse(true).Render(char)
	}
}

func renderWith(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func styleOrZero(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return lipgloss.Style{}
	}
	return style.Copy()
}
