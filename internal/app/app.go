package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/catalog"
	"github.com/atomicstack/navshell/internal/logging"
	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/search"
	"github.com/atomicstack/navshell/internal/state"
	"github.com/atomicstack/navshell/internal/storage"
	"github.com/atomicstack/navshell/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	StateDir    string
	Storage     string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	RootMenu    string
}

// Services bundles the model layer the popup runs on.
type Services struct {
	Catalog *catalog.Catalog
	Store   *state.Store
	Search  *search.Engine
	kv      storage.KV
}

var openStorage = storage.Open

// Open loads the catalog, opens the configured storage backend and
// initialises the state store.
func Open(cfg Config) (*Services, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	kv, err := openStorage(cfg.Storage, cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	store := state.NewStore(cat, kv)
	if err := store.Init(); err != nil {
		return nil, errors.Join(fmt.Errorf("initialise state: %w", err), kv.Close())
	}
	return &Services{Catalog: cat, Store: store, Search: search.NewEngine(cat), kv: kv}, nil
}

// Close retries pending writes and releases the storage backend.
func (s *Services) Close() error {
	flushErr := s.Store.Flush()
	return errors.Join(flushErr, s.kv.Close())
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// Run bootstraps and executes the Bubble Tea program. The id of the item the
// user navigated to is written to out.
func Run(cfg Config, out io.Writer) (err error) {
	services, err := Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := services.Close(); closeErr != nil {
			logging.Error(closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()
	model := ui.NewModel(services.Store, services.Search, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		RootMenu:   cfg.RootMenu,
	})
	// The popup draws on stderr so stdout carries only the selection.
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	selected := model.Selected()
	events.App.Exit(selected, err)
	if err != nil {
		return err
	}
	if selected != "" {
		if _, werr := fmt.Fprintln(out, selected); werr != nil {
			return fmt.Errorf("write selection: %w", werr)
		}
	}
	return nil
}
