package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/navshell/internal/app"
	"github.com/atomicstack/navshell/internal/config"
	"github.com/atomicstack/navshell/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestProbeDescriptorsReportsRegularFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	info := probeDescriptors(map[string]*os.File{"stderr": f})
	p, ok := info.probe("stderr")
	if !ok || p.IsTerminal {
		t.Fatalf("expected a non-terminal stderr probe, got %#v", info)
	}
	if _, ok := info.probe("stdin"); ok {
		t.Fatal("expected missing descriptors to be skipped")
	}
}

func TestCheckRenderTarget(t *testing.T) {
	tty := ttyDetails{Probes: []ttyProbeResult{
		{Name: "stdout"},
		{Name: "stderr", IsTerminal: true, Width: 120, Height: 40},
	}}
	if err := checkRenderTarget(tty); err != nil {
		t.Fatalf("expected piped stdout with terminal stderr to be accepted, got %v", err)
	}

	piped := ttyDetails{Probes: []ttyProbeResult{{Name: "stdout", IsTerminal: true}, {Name: "stderr"}}}
	if err := checkRenderTarget(piped); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
	if err := checkRenderTarget(ttyDetails{}); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal without probes, got %v", err)
	}
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-storage", "redis"}, nil, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Configuration error") {
		t.Fatalf("expected configuration error on stderr, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected clean stdout, got %q", stdout.String())
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			StateDir:   "/tmp/navshell",
			Storage:    "sqlite",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"stateDir": "/tmp/navshell",
			"storage":  "sqlite",
		},
		Args: []string{"-storage", "sqlite"},
	}
	tty := ttyDetails{Probes: []ttyProbeResult{{Name: "stderr", IsTerminal: true}}}

	payload := startupTracePayload(cfg, tty)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatal("expected flags map in payload")
	}
	if flagsValue["storage"] != "sqlite" || flagsValue["stateDir"] != "/tmp/navshell" {
		t.Fatalf("expected storage flags, got %v", flagsValue)
	}
	if flagsValue["trace"] != true || flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags, got %v", flagsValue)
	}
	if payload["run"] != logging.RunID() {
		t.Fatalf("expected run id %s, got %v", logging.RunID(), payload["run"])
	}
	if got, ok := payload["tty"].(ttyDetails); !ok || len(got.Probes) != 1 {
		t.Fatalf("expected tty details in payload, got %#v", payload["tty"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok || cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v in payload", cfg.App)
	}
}
