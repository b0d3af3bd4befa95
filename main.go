package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/navshell/internal/app"
	"github.com/atomicstack/navshell/internal/config"
	"github.com/atomicstack/navshell/internal/logging"
	"github.com/atomicstack/navshell/internal/logging/events"
)

// errNoTerminal means there is nowhere to draw the popup.
var errNoTerminal = errors.New("navshell draws on stderr, which is not a terminal")

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run starts the popup and returns the process exit code. The chosen item
// id is written to stdout; diagnostics go to stderr.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := collectTTYDetails()
	events.App.Start(startupTracePayload(cfg, tty))

	err = checkRenderTarget(tty)
	if err == nil {
		err = app.Run(cfg.App, stdout)
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// checkRenderTarget fails fast when stderr, where the popup renders, is not
// a terminal. Stdout may be piped so callers can capture the selection.
func checkRenderTarget(tty ttyDetails) error {
	if target, ok := tty.probe("stderr"); ok && target.IsTerminal {
		return nil
	}
	return errNoTerminal
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"run":    logging.RunID(),
		"tty":    tty,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type ttyDetails struct {
	Probes []ttyProbeResult `json:"probes"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (d ttyDetails) probe(name string) (ttyProbeResult, bool) {
	for _, p := range d.Probes {
		if p.Name == name {
			return p, true
		}
	}
	return ttyProbeResult{}, false
}

// collectTTYDetails inspects the standard descriptors for terminal support
// and dimensions.
func collectTTYDetails() ttyDetails {
	return probeDescriptors(map[string]*os.File{
		"stdin":  os.Stdin,
		"stdout": os.Stdout,
		"stderr": os.Stderr,
	})
}

func probeDescriptors(files map[string]*os.File) ttyDetails {
	var details ttyDetails
	for _, name := range []string{"stdin", "stdout", "stderr"} {
		f, ok := files[name]
		if !ok || f == nil {
			continue
		}
		entry := ttyProbeResult{Name: name}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width, entry.Height = width, height
			} else {
				entry.Error = err.Error()
			}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}
