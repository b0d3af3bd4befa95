package state

import "unicode"

// FilterCursorPos returns the caret position in runes, clamped to the query.
func (l *Level) FilterCursorPos() int {
	return min(max(l.FilterCursor, 0), len([]rune(l.Filter)))
}

// edit applies fn to the query runes at the caret. A result identical to the
// input leaves the level untouched.
func (l *Level) edit(fn func(runes []rune, pos int) ([]rune, int)) bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated, caret := fn(runes, pos)
	if caret == pos && string(updated) == l.Filter {
		return false
	}
	l.SetFilter(string(updated), caret)
	return true
}

// moveCaret places the caret without touching the query.
func (l *Level) moveCaret(to int) bool {
	if to == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = to
	return true
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	return l.edit(func(runes []rune, pos int) ([]rune, int) {
		out := make([]rune, 0, len(runes)+len(insert))
		out = append(out, runes[:pos]...)
		out = append(out, insert...)
		return append(out, runes[pos:]...), pos + len(insert)
	})
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.edit(func(runes []rune, pos int) ([]rune, int) {
		if pos == 0 {
			return runes, pos
		}
		return splice(runes, pos-1, pos), pos - 1
	})
}

// DeleteFilterWordBackward deletes the word before the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.edit(func(runes []rune, pos int) ([]rune, int) {
		start := wordStart(runes, pos)
		return splice(runes, start, pos), start
	})
}

// MoveFilterCursorStart moves the caret to the start of the query.
func (l *Level) MoveFilterCursorStart() bool { return l.moveCaret(0) }

// MoveFilterCursorEnd moves the caret to the end of the query.
func (l *Level) MoveFilterCursorEnd() bool { return l.moveCaret(len([]rune(l.Filter))) }

// MoveFilterCursorWordBackward moves the caret to the start of the previous word.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveCaret(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveCaret(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveCaret(max(l.FilterCursorPos()-1, 0))
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveCaret(min(l.FilterCursorPos()+1, len([]rune(l.Filter))))
}

func splice(runes []rune, from, to int) []rune {
	out := make([]rune, 0, len(runes)-(to-from))
	out = append(out, runes[:from]...)
	return append(out, runes[to:]...)
}

// wordStart skips spaces then a word to the left of pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips a word then spaces to the right of pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}
