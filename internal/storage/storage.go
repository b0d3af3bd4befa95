// Package storage provides the persistent key-value capability used to keep
// pinned and recent menu items across sessions.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Keys used by the menu state store.
const (
	PinnedKey = "navshell.pinnedItems"
	RecentKey = "navshell.recentItems"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrUnavailable wraps every read or write failure of a backend.
var ErrUnavailable = errors.New("storage unavailable")

// KV is a minimal durable key-value store.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// Open creates the backend named by backend inside dir.
func Open(backend, dir string) (KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, unavailable("create state dir", err)
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendJSON:
		return NewJSONFile(filepath.Join(dir, "state.json")), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "state.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
