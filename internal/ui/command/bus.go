package command

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/navshell/internal/logging/events"
	"github.com/atomicstack/navshell/internal/menu"
)

// Request is one action invocation on a menu row.
type Request struct {
	Node    string
	Item    menu.Item
	Handler menu.Action
}

// Bus runs menu actions as Bubble Tea commands and traces their outcome.
type Bus struct {
	now func() time.Time
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{now: time.Now}
}

// Execute calls the request handler on the caller's goroutine, which is the
// UI event loop, and wraps the command it returns. A handler or command that
// panics is reported as an ActionResult error so the popup stays open.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	if req.Handler == nil {
		events.Command.Skip(req.Node, req.Item.ID)
		return nil
	}
	events.Command.Queue(req.Node, req.Item.ID)
	start := b.now()
	cmd, err := b.invoke(ctx, req)
	if err != nil {
		msg := menu.ActionResult{Err: err, Stay: true}
		events.Command.Result(req.Node, req.Item.ID, Outcome(msg), b.now().Sub(start))
		return func() tea.Msg { return msg }
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = menu.ActionResult{Err: panicError(req, r), Stay: true}
			}
			events.Command.Result(req.Node, req.Item.ID, Outcome(msg), b.now().Sub(start))
		}()
		if cmd == nil {
			return nil
		}
		return cmd()
	}
}

func (b *Bus) invoke(ctx menu.Context, req Request) (cmd tea.Cmd, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(req, r)
		}
	}()
	return req.Handler(ctx, req.Item), nil
}

func panicError(req Request, r interface{}) error {
	return fmt.Errorf("%s on %s: %v", req.Node, req.Item.ID, r)
}

// Outcome summarises an action message for the trace log.
func Outcome(msg tea.Msg) string {
	switch m := msg.(type) {
	case nil:
		return "noop"
	case menu.ActionResult:
		switch {
		case m.Err != nil:
			return "error: " + m.Err.Error()
		case m.Navigate != "":
			return "navigate " + m.Navigate
		default:
			return "info"
		}
	case menu.NavigateMsg:
		return "navigate " + m.Item.ID
	case menu.CategoryOpenMsg:
		return "open " + m.CategoryID
	case menu.ConfirmPrompt:
		return "confirm " + m.ActionID
	default:
		return fmt.Sprintf("%T", msg)
	}
}
