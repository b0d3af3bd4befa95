package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/menu"
	"github.com/atomicstack/navshell/internal/search"
	"github.com/atomicstack/navshell/internal/state"
	"github.com/atomicstack/navshell/internal/theme"
	"github.com/atomicstack/navshell/internal/ui/command"
	uistate "github.com/atomicstack/navshell/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeConfirm
)

const defaultRootTitle = "navigation"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options configures the presentation of the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootMenu   string
}

// Model implements the Bubble Tea model for the navigation menu.
type Model struct {
	stack             []*level
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	info              notice
	now               func() time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterCursorDirty bool
	filterFocused     bool
	keys              keyMap
	help              help.Model

	handlers map[reflect.Type]msgHandler

	registry   *menu.Registry
	bus        *command.Bus
	mode       Mode
	confirm    *menu.ConfirmPrompt
	rootMenuID string
	rootTitle  string
	store      *state.Store
	engine     *search.Engine
	selected   string
}

// NewModel initialises the UI state with the root menu. The store must
// already be initialised.
func NewModel(store *state.Store, engine *search.Engine, opts Options) *Model {
	registry := menu.BuildRegistry()
	root := newLevel("root", "Navigation", menu.RootItems(), registry.Root())
	m := &Model{
		stack:      []*level{root},
		registry:   registry,
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		mode:       ModeMenu,
		rootTitle:  defaultRootTitle,
		store:      store,
		engine:     engine,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport(root)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyRootMenuOverride(opts.RootMenu)
	m.registerHandlers()
	return m
}

// Selected returns the id the user navigated to, if any.
func (m *Model) Selected() string {
	return m.selected
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterFocused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleConfirmKey(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}):    m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.CategoryOpenMsg{}): m.handleCategoryOpenMsg,
		reflect.TypeOf(menu.ActionResult{}):    m.handleActionResultMsg,
		reflect.TypeOf(menu.NavigateMsg{}):     m.handleNavigateMsg,
		reflect.TypeOf(menu.ConfirmPrompt{}):   m.handleConfirmPromptMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty && m.filterFocused {
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.filterCursorDirty = false
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
