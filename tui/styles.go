package tui

import "github.com/charmbracelet/lipgloss"

// DefaultDecoration marks toggled pills.
const DefaultDecoration = "★"

// Styles contains the Lipgloss styles for the UI. It is also the pill renderer
// the width oracle probes, so pill styles must not depend on focus width-wise.
type Styles struct {
	Pill    lipgloss.Style
	Toggled lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style

	// Decoration is prefixed to the value of toggled pills
	Decoration string
}

// DefaultStyles returns the default UI styles
func DefaultStyles(decoration string) Styles {
	if decoration == "" {
		decoration = DefaultDecoration
	}

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	var styles Styles

	styles.Pill = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(secondaryColor).
		Padding(0, 1).
		MarginRight(1)

	styles.Toggled = styles.Pill.
		Foreground(lipgloss.Color("0")).
		Background(primaryColor).
		Bold(true)

	styles.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Decoration = decoration
	return styles
}

// RenderPill renders one pill, with the decoration when toggled.
func (s Styles) RenderPill(value string, toggled bool) string {
	return s.render(value, toggled, false)
}

// render draws a pill; focus only swaps colors so widths match RenderPill.
func (s Styles) render(value string, toggled, focused bool) string {
	style := s.Pill
	if toggled {
		style = s.Toggled
		value = s.Decoration + " " + value
	}
	if focused {
		style = style.Reverse(true).Underline(true)
	}
	return style.Render(value)
}
