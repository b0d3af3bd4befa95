package state

import (
	"testing"

	"github.com/atomicstack/navshell/internal/menu"
)

func newTestLevel(ids ...string) *Level {
	items := make([]menu.Item, len(ids))
	for i, id := range ids {
		items[i] = menu.Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items, nil)
}

func TestCursorMoves(t *testing.T) {
	cases := []struct {
		name  string
		ids   []string
		start int
		move  func(*Level) bool
		want  int
		moved bool
	}{
		{"home", []string{"patients", "cohorts", "exports"}, 2, (*Level).MoveCursorHome, 0, true},
		{"home already there", []string{"patients", "cohorts"}, 0, (*Level).MoveCursorHome, 0, false},
		{"home on empty", nil, 5, (*Level).MoveCursorHome, 0, false},
		{"end", []string{"patients", "cohorts", "exports"}, 0, (*Level).MoveCursorEnd, 2, true},
		{"end on empty", nil, 0, (*Level).MoveCursorEnd, 0, false},
		{"page down", []string{"a", "b", "c", "d", "e"}, 0, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 2, true},
		{"page down stops at end", []string{"a", "b", "c", "d", "e"}, 4, func(l *Level) bool { return l.MoveCursorPageDown(2) }, 4, false},
		{"page up", []string{"a", "b", "c", "d", "e"}, 4, func(l *Level) bool { return l.MoveCursorPageUp(2) }, 2, true},
		{"page up larger than list", []string{"a", "b", "c", "d", "e"}, 2, func(l *Level) bool { return l.MoveCursorPageUp(10) }, 0, true},
		{"page down from negative cursor", []string{"a", "b", "c"}, -1, func(l *Level) bool { return l.MoveCursorPageDown(1) }, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLevel(tc.ids...)
			l.Cursor = tc.start
			if got := tc.move(l); got != tc.moved {
				t.Fatalf("expected moved=%v, got %v", tc.moved, got)
			}
			if l.Cursor != tc.want {
				t.Fatalf("expected cursor %d, got %d", tc.want, l.Cursor)
			}
		})
	}
}

func TestSelectIDFollowsEntry(t *testing.T) {
	l := newTestLevel("patients", "cohorts", "exports")
	if !l.SelectID("exports") {
		t.Fatal("expected exports to be selectable")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.SelectID("missing") {
		t.Fatal("expected unknown id to be rejected")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	cases := []struct {
		name       string
		cursor     int
		offset     int
		maxVisible int
		wantCursor int
		wantOffset int
	}{
		{"scrolls down to cursor", 4, 0, 2, 4, 3},
		{"normalizes negative cursor", -1, 3, 2, 0, 0},
		{"no viewport", 1, 4, 0, 1, 0},
		{"scrolls up to cursor", 1, 4, 3, 1, 1},
		{"keeps visible cursor", 2, 1, 3, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLevel("a", "b", "c", "d", "e")
			l.Cursor = tc.cursor
			l.ViewportOffset = tc.offset
			l.EnsureCursorVisible(tc.maxVisible)
			if l.Cursor != tc.wantCursor || l.ViewportOffset != tc.wantOffset {
				t.Fatalf("expected cursor/offset %d/%d, got %d/%d", tc.wantCursor, tc.wantOffset, l.Cursor, l.ViewportOffset)
			}
		})
	}

	empty := newTestLevel()
	empty.Cursor, empty.ViewportOffset = 3, 2
	empty.EnsureCursorVisible(4)
	if empty.Cursor != 0 || empty.ViewportOffset != 0 {
		t.Fatalf("expected empty level reset, got %d/%d", empty.Cursor, empty.ViewportOffset)
	}
}
