package tui

import (
	"fmt"
	"strings"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/measure"
)

// View renders the UI. Nothing is drawn before the first layout, so the pills
// never flash in an unlaid-out state.
func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	var b strings.Builder
	for i, row := range layout.Rows(m.snapshot.Elements) {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, p := range row {
			b.WriteString(m.styles.render(p.Value, m.snapshot.Toggles.Has(p.ID), p.ID == m.focus))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderStatus renders the one-line summary under the pills
func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Error.Render(m.fit(fmt.Sprintf("Error: %v", m.err)))
	}
	rows := len(layout.Rows(m.snapshot.Elements))
	return m.styles.Status.Render(m.fit(fmt.Sprintf("%s · %d pills · %d rows · %d toggled · width %d",
		m.snapshot.Mode, len(m.snapshot.Pills), rows, m.snapshot.Toggles.Len(), m.snapshot.Width)))
}

// fit keeps s on one line of the window
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return measure.Truncate(s, m.width, "…")
}
