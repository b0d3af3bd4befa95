package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/navshell/internal/menu"
)

func TestViewRendersRowsWithPinMarks(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "pinned", Width: 60, Height: 20})
	view := m.View()
	for _, want := range []string{"All Resources", "Ingestion Jobs", "Dashboards", "★"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewShowsEmptyRecent(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "recent"})
	if view := m.View(); !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected empty state, got:\n%s", view)
	}
}

func TestViewFooterListsPinKeyOnPinnableLevels(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "browse", ShowFooter: true})
	if view := m.View(); !strings.Contains(view, "ctrl+p") {
		t.Fatalf("expected pin binding in footer, got:\n%s", view)
	}
	settings, _, _ := newTestModel(t, Options{RootMenu: "settings", ShowFooter: true})
	if view := settings.View(); strings.Contains(view, "ctrl+p") {
		t.Fatalf("expected no pin binding on settings, got:\n%s", view)
	}
}

func TestViewPaginationRespectsViewport(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Width: 40, Height: 6})
	h := NewHarness(m)
	enterRoot(t, h, menu.BrowseID)
	enterCategory := h.Model().currentLevel()
	selectRow(t, enterCategory, "category-resources")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	view := h.View()
	if strings.Contains(view, "Medication Request") {
		t.Fatalf("expected last row outside the initial viewport, view =\n%s", view)
	}
	for i := 0; i < 4; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	if view = h.View(); !strings.Contains(view, "Medication Request") {
		t.Fatalf("expected last row visible after scrolling, view =\n%s", view)
	}
}

func TestTruncateTextUsesCellWidth(t *testing.T) {
	got := truncateText("▌ Patient Resources", 8)
	if w := runewidth.StringWidth(got); w > 8 {
		t.Fatalf("expected at most 8 cells, got %d (%q)", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
