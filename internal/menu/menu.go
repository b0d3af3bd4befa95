package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/search"
	"github.com/atomicstack/navshell/internal/state"
)

// Item represents a selectable menu entry. Label is the rendered row; Name
// is the plain display name that filters and status messages use.
type Item struct {
	ID    string
	Label string
	Name  string
}

// DisplayName returns the plain name of the entry, falling back to its label.
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Label
}

// Level describes a breadcrumb component for display purposes.
type Level struct {
	ID    string
	Title string
	Items []Item
}

// Context carries the services loaders and actions operate on.
type Context struct {
	Store  *state.Store
	Search *search.Engine
}

// Catalog returns the catalog behind the store.
func (c Context) Catalog() *catalog.Catalog {
	if c.Store == nil {
		return nil
	}
	return c.Store.Catalog()
}

// Lookup resolves a row id to a menu item. Catalog entries win; pinned and
// recent records cover ids that only exist in persisted state.
func (c Context) Lookup(id string) (catalog.MenuItem, bool) {
	if c.Store == nil {
		return catalog.MenuItem{}, false
	}
	if item, ok := c.Store.Catalog().Item(id); ok {
		return item, true
	}
	for _, item := range c.Store.Pinned() {
		if item.ID == id {
			return item, true
		}
	}
	for _, item := range c.Store.Recent() {
		if item.ID == id {
			return item, true
		}
	}
	return catalog.MenuItem{}, false
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
	// Navigate holds the id of the item the user navigated to.
	Navigate string
	// Stay keeps the popup open after a successful action.
	Stay bool
}

// CategoryOpenMsg asks the UI to push the items of a category.
type CategoryOpenMsg struct {
	CategoryID string
	Title      string
	Items      []Item
}

// ConfirmPrompt asks the user to confirm a destructive settings action.
type ConfirmPrompt struct {
	ActionID string
	Question string
	Run      func() error
	Done     string
}

// Root menu identifiers.
const (
	PinnedID    = "pinned"
	RecentID    = "recent"
	BrowseID    = "browse"
	BrowseItems = "browse:items"
	SearchID    = "search"
	SettingsID  = "settings"
)

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: PinnedID, Label: "pinned"},
		{ID: RecentID, Label: "recent"},
		{ID: BrowseID, Label: "browse"},
		{ID: SearchID, Label: "search"},
		{ID: SettingsID, Label: "settings"},
	}
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return strings.ToLower(strings.Join(parts, " "))
}
