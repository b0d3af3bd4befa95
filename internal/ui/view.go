package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/navshell/internal/menu"
	"github.com/atomicstack/navshell/internal/search"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeConfirm && m.confirm != nil {
		return m.viewConfirm()
	}
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	current := m.currentLevel()
	if chips := m.chipRow(); chips != "" {
		lines = append(lines, styledLine{text: chips, raw: true})
	}
	if current != nil {
		m.syncViewport(current)
		lines = append(lines, m.rowLines(current)...)
	}
	if m.loading && m.pendingLabel != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Loading %s…", m.pendingLabel), style: styles.Loading})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footer(), raw: true})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText := m.filterPrompt()
	bottomLines := applyWidth([]styledLine{statusLine, {text: promptText, raw: true}}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) viewConfirm() string {
	lines := make([]styledLine, 0, 6)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.confirm.Question, style: styles.Confirm})
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.footerFor(footerKeys{keys: m.keys, confirm: true}), raw: true})
	return renderLines(applyWidth(lines, m.width))
}

// rowLines renders the rows inside the viewport, or a hint when the level
// has none.
func (m *Model) rowLines(current *level) []styledLine {
	if len(current.Items) == 0 {
		return []styledLine{{text: emptyMessage(current), style: styles.Info}}
	}
	start, end := 0, len(current.Items)
	if maxItems := m.maxVisibleItems(); maxItems > 0 && end > maxItems {
		current.EnsureCursorVisible(maxItems)
		start = current.ViewportOffset
		end = start + maxItems
	}
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.buildItemLine(current.Items[i], i == current.Cursor))
	}
	return lines
}

func emptyMessage(l *level) string {
	if l.ID == menu.SearchID && strings.TrimSpace(l.Filter) == "" {
		return "Type to search the catalog."
	}
	if l.Filter != "" {
		return fmt.Sprintf("No matches for %q", l.Filter)
	}
	return "(no entries)"
}

// chipRow renders the category filter chips of the search level.
func (m *Model) chipRow() string {
	current := m.currentLevel()
	if current == nil || current.ID != menu.SearchID || m.engine == nil {
		return ""
	}
	if strings.TrimSpace(m.engine.Query()) == "" {
		return ""
	}
	active := m.engine.ActiveFilter()
	options := m.engine.FilterOptions()
	chips := make([]string, 0, len(options))
	for _, opt := range options {
		text := chipLabel(opt)
		style := styles.Chip
		if opt.ID == active {
			style = styles.ActiveChip
		}
		if style != nil {
			text = style.Render(text)
		}
		chips = append(chips, text)
	}
	return strings.Join(chips, " ")
}

func chipLabel(opt search.FilterOption) string {
	return fmt.Sprintf("%s (%d)", opt.Name, opt.Count)
}

func (m *Model) footer() string {
	current := m.currentLevel()
	keys := footerKeys{keys: m.keys}
	if current != nil {
		keys.pinnable = current.Pinnable()
		keys.chips = current.ID == menu.SearchID
	}
	return m.footerFor(keys)
}

func (m *Model) footerFor(keys footerKeys) string {
	m.help.Width = m.width
	return m.help.View(keys)
}

// buildItemLine constructs a single styledLine for a menu item, padded to the
// model width so the selected row's background spans the container.
func (m *Model) buildItemLine(item menu.Item, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	label := item.Label
	if label == "" {
		label = item.ID
	}
	fullText := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line and filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if m.chipRow() != "" {
		used++
	}
	if m.loading && m.pendingLabel != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens plain text to width terminal cells.
func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
