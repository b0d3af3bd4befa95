package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("pin.add", map[string]interface{}{"id": "patient"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected trace file, got %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected one trace line")
	}
	var entry struct {
		Run     string                 `json:"run"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("trace line is not JSON: %v", err)
	}
	if entry.Event != "pin.add" || entry.Payload["id"] != "patient" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry.Run != RunID() || entry.Run == "" {
		t.Fatalf("expected run id %q, got %q", RunID(), entry.Run)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(false)

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, got %v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	defer Configure("")

	Error(errors.New("storage unavailable"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "storage unavailable") {
		t.Fatalf("expected error in log, got %q", data)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", data)
	}
}
