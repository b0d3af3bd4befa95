package ui

import (
	"testing"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/search"
	"github.com/atomicstack/navshell/internal/state"
	"github.com/atomicstack/navshell/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (*Model, *state.Store, *storage.Memory) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	kv := storage.NewMemory()
	store := state.NewStore(cat, kv)
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return NewModel(store, search.NewEngine(cat), opts), store, kv
}

func TestMenuHeaderRootLevel(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	if got := m.menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected %q, got %q", defaultRootTitle, got)
	}
}

func TestMenuHeaderNestedLevels(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	m.stack = append(m.stack, newLevel("browse", "browse", nil, nil))
	m.stack = append(m.stack, newLevel("browse:items", "Data Pipelines", nil, nil))
	if got, want := m.menuHeader(), "browse→data pipelines"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRootMenuOverrideSetsInitialLevel(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "pinned"})
	root := m.stack[0]
	if root.ID != "pinned" {
		t.Fatalf("expected root id pinned, got %s", root.ID)
	}
	if m.rootMenuID != "pinned" {
		t.Fatalf("expected rootMenuID pinned, got %s", m.rootMenuID)
	}
	if len(root.Items) != 3 {
		t.Fatalf("expected seeded pins on the root level, got %#v", root.Items)
	}
	if !root.Pinnable() {
		t.Fatal("expected pinned root to accept the pin toggle")
	}
}

func TestRootMenuOverrideSearchInstallsMatcher(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "search"})
	root := m.stack[0]
	if root.Matcher == nil {
		t.Fatal("expected search root to use the engine matcher")
	}
	root.SetFilter("user", 4)
	if len(root.Items) == 0 {
		t.Fatal("expected search matches for user")
	}
}

func TestInvalidRootMenuFallsBackToDefault(t *testing.T) {
	m, _, _ := newTestModel(t, Options{RootMenu: "does-not-exist"})
	if got := m.stack[0].ID; got != "root" {
		t.Fatalf("expected default root id, got %s", got)
	}
	if m.rootMenuID != "" {
		t.Fatalf("expected empty rootMenuID, got %s", m.rootMenuID)
	}
	if m.errMsg == "" {
		t.Fatal("expected error message for invalid root menu")
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Width: 50, Height: 12})
	m.handleWindowSizeMsg(teaWindowSize(120, 40))
	if m.width != 50 || m.height != 12 {
		t.Fatalf("expected fixed dimensions, got %dx%d", m.width, m.height)
	}
}
