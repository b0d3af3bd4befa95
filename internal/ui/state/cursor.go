package state

// clampCursor pins the cursor to a valid row, or 0 when the level is empty.
func (l *Level) clampCursor() {
	switch {
	case len(l.Items) == 0, l.Cursor < 0:
		l.Cursor = 0
	case l.Cursor >= len(l.Items):
		l.Cursor = len(l.Items) - 1
	}
}

// moveTo places the cursor on idx, clamped to the rows, and reports movement.
func (l *Level) moveTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = idx
	l.clampCursor()
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *Level) MoveCursorHome() bool { return l.moveTo(0) }

// MoveCursorEnd moves the cursor to the last row.
func (l *Level) MoveCursorEnd() bool { return l.moveTo(len(l.Items) - 1) }

// MoveCursorPageUp moves the cursor up by one page of visible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveTo(max(l.Cursor, 0) - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of visible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveTo(max(l.Cursor, 0) + l.pageSize(maxVisible))
}

// SelectID moves the cursor onto the row with the given id. Levels whose
// rows are rebuilt (pinned, recent) use it to keep the same entry selected.
func (l *Level) SelectID(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return max(total, 1)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	l.clampCursor()
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-maxVisible, 0)
	offset := min(max(l.ViewportOffset, 0), maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if last := offset + maxVisible - 1; l.Cursor > last {
		offset = min(l.Cursor-maxVisible+1, maxOffset)
	}
	l.ViewportOffset = offset
}
