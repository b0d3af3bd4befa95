// Package ui contains the Bubble Tea program that drives the navigation menu.
// The Model type focuses on message orchestration while dedicated helpers own
// navigation, input, rendering and confirmation prompts.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. A pending
//     confirmation consumes key presses first; otherwise each tea.Msg is
//     routed through a typed handler registry.
//   - Navigation helpers (navigation.go) manage the stack of menu levels,
//     cursor movement, pin toggling and search filter chips. Filter editing
//     lives in input.go.
//   - Menu loaders run in Update (loadMenuCmd) and their rows arrive as a
//     categoryLoadedMsg that pushes the level. Actions run through the
//     command bus and answer with menu.ActionResult, menu.NavigateMsg,
//     menu.CategoryOpenMsg or menu.ConfirmPrompt.
//
// State ownership:
//   - Level state (items, filter, cursor, viewport) lives in
//     internal/ui/state.Level. Levels carry a Reloader so pin changes can
//     rebuild every level on the stack, and the search level carries a
//     Matcher backed by the search engine.
//   - Pinned and recent items are owned by internal/state.Store; the model
//     never mutates them directly. Store and engine calls only happen inside
//     Update, never inside a tea.Cmd, so commands never race the event loop.
//
// When the user navigates to an item the model records its id and quits;
// the caller reads it back through Model.Selected.
package ui
