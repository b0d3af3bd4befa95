package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout   = 3 * time.Second
	lockRetryWait = 100 * time.Millisecond
)

// JSONFile keeps all keys in a single JSON object on disk. Access is
// serialised with a lock file so concurrent shells do not clobber each other.
type JSONFile struct {
	path     string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// NewJSONFile returns a store backed by path. The file is created on the
// first write.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Get reads a single key.
func (s *JSONFile) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock()
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	values, err := s.readLocked()
	if err != nil {
		return nil, false, err
	}
	raw, ok := values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(raw), true, nil
}

// Set writes a single key, preserving the others.
func (s *JSONFile) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	values, err := s.readLocked()
	if err != nil {
		return err
	}
	if !json.Valid(value) {
		return unavailable("encode value", errors.New("value is not valid JSON"))
	}
	values[key] = json.RawMessage(value)
	return s.writeLocked(values)
}

// Close releases the lock handle. The lock file stays on disk: another
// process may already hold it open by path.
func (s *JSONFile) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fileLock.Close(); err != nil {
		return unavailable("release lock", err)
	}
	return nil
}

func (s *JSONFile) lock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryWait)
	if err != nil {
		return nil, unavailable("acquire lock", err)
	}
	if !locked {
		return nil, unavailable("acquire lock", errors.New("could not acquire file lock"))
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}

func (s *JSONFile) readLocked() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, unavailable("read file", err)
	}
	if len(data) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, unavailable("parse file", err)
	}
	return values, nil
}

func (s *JSONFile) writeLocked(values map[string]json.RawMessage) error {
	data, err := json.Marshal(values)
	if err != nil {
		return unavailable("marshal file", err)
	}
	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return unavailable("write temp file", err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return unavailable("rename file", err)
	}
	return nil
}
