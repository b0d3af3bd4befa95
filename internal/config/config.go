package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/navshell/internal/app"
	"github.com/atomicstack/navshell/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envCatalog    = "NAVSHELL_CATALOG"
	envStateDir   = "NAVSHELL_STATE_DIR"
	envStorage    = "NAVSHELL_STORAGE"
	envRootMenu   = "NAVSHELL_ROOT_MENU"
	envWidth      = "NAVSHELL_WIDTH"
	envHeight     = "NAVSHELL_HEIGHT"
	envShowFooter = "NAVSHELL_FOOTER"
	envVerbose    = "NAVSHELL_VERBOSE"
	envTrace      = "NAVSHELL_TRACE"
	envLogFile    = "NAVSHELL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("navshell", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML menu catalog (empty uses the built-in catalog)")
	stateDir := fs.String("state-dir", envOrDefault(env, envStateDir, defaultStateDir(env)), "directory holding pinned and recent items")
	backend := fs.String("storage", envOrDefault(env, envStorage, storage.BackendJSON), "storage backend: json or sqlite")
	rootMenu := fs.String("root-menu", envOrDefault(env, envRootMenu, ""), "open directly into a submenu (pinned, recent, browse, search, settings)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file (empty uses navshell.log in the state directory)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath: *catalogPath,
			StateDir:    *stateDir,
			Storage:     strings.ToLower(strings.TrimSpace(*backend)),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			RootMenu:    *rootMenu,
		},
		Logging: Logging{
			FilePath: logFilePath(*logFile, *stateDir),
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"catalog":  *catalogPath,
			"stateDir": *stateDir,
			"storage":  *backend,
			"rootMenu": *rootMenu,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// logFilePath keeps the log next to the persisted state unless a path was
// given explicitly.
func logFilePath(explicit, stateDir string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if strings.TrimSpace(stateDir) == "" {
		return ""
	}
	return filepath.Join(stateDir, "navshell.log")
}

// defaultStateDir follows the XDG state directory, falling back to the
// user config directory and finally the working directory.
func defaultStateDir(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_STATE_HOME"]); dir != "" {
		return filepath.Join(dir, "navshell")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".local", "state", "navshell")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "navshell")
	}
	return ".navshell"
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects configurations the program cannot start with.
func Validate(cfg Config) error {
	switch cfg.App.Storage {
	case storage.BackendJSON, storage.BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", cfg.App.Storage, storage.BackendJSON, storage.BackendSQLite)
	}
	if strings.TrimSpace(cfg.App.StateDir) == "" {
		return fmt.Errorf("state directory must not be empty")
	}
	return nil
}
