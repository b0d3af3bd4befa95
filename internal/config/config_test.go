package config

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/navshell/internal/storage"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/tester"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Storage != storage.BackendJSON {
		t.Fatalf("expected json storage by default, got %q", cfg.App.Storage)
	}
	want := filepath.Join("/home/tester", ".local", "state", "navshell")
	if cfg.App.StateDir != want {
		t.Fatalf("expected state dir %q, got %q", want, cfg.App.StateDir)
	}
	if cfg.App.CatalogPath != "" || cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if got := cfg.Logging.FilePath; got != filepath.Join(want, "navshell.log") {
		t.Fatalf("expected log file inside the state dir, got %q", got)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		"XDG_STATE_HOME=/xdg",
		"NAVSHELL_STORAGE=SQLite",
		"NAVSHELL_WIDTH=90",
		"NAVSHELL_FOOTER=true",
		"NAVSHELL_ROOT_MENU=search",
		"NAVSHELL_HEIGHT=not-a-number",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.StateDir != filepath.Join("/xdg", "navshell") {
		t.Fatalf("expected XDG state dir, got %q", cfg.App.StateDir)
	}
	if cfg.App.Storage != storage.BackendSQLite {
		t.Fatalf("expected sqlite storage, got %q", cfg.App.Storage)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 0 {
		t.Fatalf("unexpected dimensions %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || cfg.App.RootMenu != "search" {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	args := []string{"-storage", "json", "-state-dir", "/tmp/nav", "-catalog", "menu.yaml", "-trace", "-log-file", "nav.log"}
	cfg, err := LoadArgs(args, []string{"NAVSHELL_STORAGE=sqlite"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Storage != storage.BackendJSON || cfg.App.StateDir != "/tmp/nav" || cfg.App.CatalogPath != "menu.yaml" {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "nav.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["stateDir"] != "/tmp/nav" {
		t.Fatalf("expected flag snapshot, got %#v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-unknown"}, nil); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	cfg, err := LoadArgs([]string{"-storage", "redis", "-state-dir", "/tmp/nav"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}
