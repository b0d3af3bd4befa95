package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/menu"
)

func TestResetPinsRequiresConfirmation(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	if err := store.RemoveFromPinned("dashboards"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	h := NewHarness(m)
	enterRoot(t, h, menu.SettingsID)
	selectRow(t, h.Model().currentLevel(), "reset-pins")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if h.Model().mode != ModeConfirm {
		t.Fatalf("expected confirm mode, got %v", h.Model().mode)
	}
	if view := h.View(); !strings.Contains(view, "Reset pinned items") {
		t.Fatalf("expected question in view, got:\n%s", view)
	}
	if store.IsPinned("dashboards") {
		t.Fatal("expected no change before confirmation")
	}

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if h.Model().mode != ModeMenu {
		t.Fatal("expected menu mode after confirming")
	}
	if !store.IsPinned("dashboards") {
		t.Fatal("expected default pins restored")
	}
	if h.Quit() {
		t.Fatal("settings actions keep the menu open")
	}
	if h.Model().currentInfo() != "Pinned items reset" {
		t.Fatalf("unexpected info %q", h.Model().currentInfo())
	}
}

func TestClearRecentCancelled(t *testing.T) {
	m, store, _ := newTestModel(t, Options{})
	item, _ := store.Catalog().Item("patient")
	if err := store.TrackRecentItem(item); err != nil {
		t.Fatalf("track: %v", err)
	}
	h := NewHarness(m)
	enterRoot(t, h, menu.SettingsID)
	selectRow(t, h.Model().currentLevel(), "clear-recent")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	if h.Model().mode != ModeMenu {
		t.Fatal("expected menu mode after cancelling")
	}
	if len(store.Recent()) != 1 {
		t.Fatalf("expected recent items kept, got %#v", store.Recent())
	}
}

func TestConfirmSurfacesStorageErrors(t *testing.T) {
	m, store, kv := newTestModel(t, Options{})
	if err := store.TrackRecentItem(catalog.MenuItem{ID: "patient", Name: "Patient", Category: "resources"}); err != nil {
		t.Fatalf("track: %v", err)
	}
	kv.FailWrites = true
	h := NewHarness(m)
	enterRoot(t, h, menu.SettingsID)
	selectRow(t, h.Model().currentLevel(), "clear-recent")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	if h.Model().errMsg == "" {
		t.Fatal("expected storage error surfaced")
	}
	if len(store.Recent()) != 0 {
		t.Fatal("expected in-memory clear to stand despite the failed write")
	}
}
