package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/menu"
	"github.com/atomicstack/navshell/internal/search"
)

func TestSearchFlowWithFilterChips(t *testing.T) {
	m, store, _ := newTestModel(t, Options{Width: 80, Height: 24})
	h := NewHarness(m)
	enterRoot(t, h, menu.SearchID)

	h.Type("at")
	engine := h.Model().engine
	if engine.Query() != "at" {
		t.Fatalf("expected engine query to follow the filter, got %q", engine.Query())
	}
	level := h.Model().currentLevel()
	all := len(level.Items)
	if all != len(engine.Matches()) {
		t.Fatalf("expected every match listed under all, got %d rows for %d matches", all, len(engine.Matches()))
	}
	view := h.View()
	if !strings.Contains(view, "All (") {
		t.Fatalf("expected chip row, got:\n%s", view)
	}

	h.Press(tea.KeyTab)
	if engine.ActiveFilter() == search.AllFilter {
		t.Fatal("expected tab to move off the all chip")
	}
	if len(level.Items) != len(engine.ActiveResults()) || len(level.Items) >= all {
		t.Fatalf("expected rows narrowed to %s, got %d of %d", engine.ActiveFilter(), len(level.Items), all)
	}

	h.Press(tea.KeyShiftTab)
	if engine.ActiveFilter() != search.AllFilter {
		t.Fatalf("expected shift+tab back to all, got %s", engine.ActiveFilter())
	}

	target := level.Items[0].ID
	h.Press(tea.KeyEnter)
	if !h.Quit() || h.Model().Selected() != target {
		t.Fatalf("expected navigation to %s, got %q", target, h.Model().Selected())
	}
	if recent := store.Recent(); len(recent) != 1 || recent[0].ID != target {
		t.Fatalf("expected %s tracked as recent, got %#v", target, recent)
	}
}

func TestLeavingSearchResetsEngine(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	enterRoot(t, h, menu.SearchID)
	h.Type("us")
	h.Press(tea.KeyEsc)
	if got := h.Model().engine.Query(); got != "" {
		t.Fatalf("expected engine reset on leave, got query %q", got)
	}
	if h.Model().currentLevel().ID != "root" {
		t.Fatal("expected to be back on the root level")
	}
}
