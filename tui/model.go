// Package tui is the Bubble Tea front end that draws the pill layout.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/reactor"
)

// Model represents the application state
type Model struct {
	reactor *reactor.Reactor
	mailbox *reactor.Mailbox
	hub     *observe.Hub

	// Latest published layout and where its pills were drawn
	snapshot   reactor.Snapshot
	placements []layout.Placement
	focus      string

	// State
	ready    bool
	quitting bool
	width    int
	height   int

	// Error state
	err error

	styles Styles
	keys   KeyMap
	help   help.Model
}

// NewModel creates a Model driving r. The reactor must publish to mb and be
// mounted on hub; the model feeds window sizes into hub.
func NewModel(r *reactor.Reactor, mb *reactor.Mailbox, hub *observe.Hub, styles Styles) Model {
	return Model{
		reactor: r,
		mailbox: mb,
		hub:     hub,
		styles:  styles,
		keys:    DefaultKeyMap,
		help:    help.New(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForLayout(m.mailbox)
}

// Ready reports whether a layout has been received.
func (m Model) Ready() bool { return m.ready }

// Focus returns the id of the focused pill.
func (m Model) Focus() string { return m.focus }

// Snapshot returns the layout being displayed.
func (m Model) Snapshot() reactor.Snapshot { return m.snapshot }

// Err returns the last reported error.
func (m Model) Err() error { return m.err }

// order returns pill ids in display order.
func (m Model) order() []string {
	ids := make([]string, len(m.placements))
	for i, p := range m.placements {
		ids[i] = p.ID
	}
	return ids
}
