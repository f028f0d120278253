package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/observe"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// The reactor publishes into the mailbox; the layout arrives as a LayoutMsg
		m.hub.Emit(observe.Size{Width: msg.Width, Height: msg.Height})
		return m, nil

	case LayoutMsg:
		m.setSnapshot(msg)
		return m, waitForLayout(m.mailbox)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) setSnapshot(msg LayoutMsg) {
	m.snapshot = msg.Snapshot
	m.ready = true
	m.err = nil

	_, m.placements = layout.NewRenderer(m.styles, msg.Snapshot.Toggles).RenderPlaced(msg.Snapshot.Elements)

	// Keep focus on a pill that still exists
	for _, p := range m.placements {
		if p.ID == m.focus {
			return
		}
	}
	m.focus = ""
	if len(m.placements) > 0 {
		m.focus = m.placements[0].ID
	}
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Toggle):
		if m.focus != "" {
			m.reactor.Toggle(m.focus)
		}

	case key.Matches(msg, m.keys.Mode):
		if m.reactor.Mode() == layout.ModeBinPacking {
			m.reactor.SetMode(layout.ModeDefault)
		} else {
			m.reactor.SetMode(layout.ModeBinPacking)
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	ids := m.order()
	if len(ids) == 0 {
		return
	}
	i := 0
	for j, id := range ids {
		if id == m.focus {
			i = j
			break
		}
	}
	i = (i + delta + len(ids)) % len(ids)
	m.focus = ids[i]
}

// handleMouseMsg toggles the pill under a left click. Pills start at the top-left
// cell of the alternate screen.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for _, p := range m.placements {
		if p.Contains(msg.X, msg.Y) {
			m.focus = p.ID
			m.reactor.Toggle(p.ID)
			break
		}
	}
	return m, nil
}
