// Package measure reads pill geometry from the renderer and reports the widest a pill can become.
package measure

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/pillrow/internal/pill"
)

// ErrNoRenderer is returned when there is nothing to take probe measurements from.
var ErrNoRenderer = errors.New("measure: no pill renderer")

// ProbeText is the placeholder rendered in both probe pills.
const ProbeText = "Test"

// PillRenderer turns a pill value into its on-screen form.
type PillRenderer interface {
	RenderPill(value string, toggled bool) string
}

// ProbeOracle reports the width a pill reserves: its width once toggled on.
//
// The toggle decoration width is learned by rendering the same placeholder in both
// states and taking the difference, so it does not depend on any pill's content.
type ProbeOracle struct {
	r PillRenderer
}

// NewProbeOracle returns an oracle measuring pills rendered by r.
func NewProbeOracle(r PillRenderer) (*ProbeOracle, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	return &ProbeOracle{r: r}, nil
}

// Decoration returns the extra width a pill gains when toggled on.
func (o *ProbeOracle) Decoration() int {
	d := Width(o.r.RenderPill(ProbeText, true)) - Width(o.r.RenderPill(ProbeText, false))
	if d < 0 {
		return 0
	}
	return d
}

// MaxWidth returns the width p occupies when toggled on.
// A toggled pill already shows the decoration, so its current width is its maximum.
func (o *ProbeOracle) MaxWidth(p pill.Pill, toggled bool) int {
	w := Width(o.r.RenderPill(p.Value, toggled))
	if toggled {
		return w
	}
	return w + o.Decoration()
}

// Width returns the cell width of rendered (possibly styled, multi-line) output.
func Width(rendered string) int {
	return lipgloss.Width(rendered)
}
