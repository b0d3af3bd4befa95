package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultLogFile = "navshell.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	runID        = uuid.NewString()
)

// RunID identifies the current process in every trace entry.
func RunID() string {
	return runID
}

// Error appends err to the log file, tagged with the run id.
func Error(err error) {
	if err == nil {
		return
	}
	appendEntry(currentPath(), "logging failed", func(w io.Writer) error {
		log.New(w, "", log.LstdFlags).Printf("[%s] %v", runID, err)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a JSON line for event when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{
		Time:    time.Now().UTC(),
		Run:     runID,
		Event:   event,
		Payload: payload,
	}
	appendEntry(currentPath(), "trace logging failed", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Run     string      `json:"run"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

func currentPath() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// appendEntry opens path for appending and hands it to write. Logging never
// fails the caller; problems are reported on stderr.
func appendEntry(path, what string, write func(io.Writer) error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
