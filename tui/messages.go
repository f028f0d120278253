package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/pillrow/internal/reactor"
)

// LayoutMsg is sent when the reactor published a new layout
type LayoutMsg struct {
	Snapshot reactor.Snapshot
}

// ErrorMsg is sent when an error occurs outside the model, e.g. a failed pill reload
type ErrorMsg struct {
	Err error
}

// waitForLayout waits for the next snapshot in the mailbox.
func waitForLayout(mb *reactor.Mailbox) tea.Cmd {
	return func() tea.Msg {
		return LayoutMsg{Snapshot: <-mb.C()}
	}
}
