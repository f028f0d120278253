package layout

import (
	"strings"

	"github.com/young1lin/pillrow/internal/measure"
	"github.com/young1lin/pillrow/internal/pill"
)

// Placement is where a rendered pill landed, in cells relative to the layout origin.
type Placement struct {
	ID    string
	Row   int
	X     int
	Width int
}

// Contains reports whether the cell (x, row) is covered by the pill.
func (p Placement) Contains(x, row int) bool {
	return row == p.Row && x >= p.X && x < p.X+p.Width
}

// Renderer renders a planned layout to output lines
type Renderer struct {
	pills   measure.PillRenderer
	toggles pill.ToggleSet
}

// NewRenderer creates a renderer drawing pills with r in the given toggle state.
func NewRenderer(r measure.PillRenderer, toggles pill.ToggleSet) *Renderer {
	return &Renderer{pills: r, toggles: toggles}
}

// Render renders the layout to one string per row.
func (r *Renderer) Render(elements []Element) []string {
	lines, _ := r.RenderPlaced(elements)
	return lines
}

// RenderPlaced renders the layout and reports where each pill was drawn.
func (r *Renderer) RenderPlaced(elements []Element) ([]string, []Placement) {
	rows := Rows(elements)
	if len(rows) == 0 {
		return []string{}, nil
	}

	lines := make([]string, 0, len(rows))
	placements := make([]Placement, 0, len(elements))
	for i, row := range rows {
		var b strings.Builder
		x := 0
		for _, p := range row {
			rendered := r.pills.RenderPill(p.Value, r.toggles.Has(p.ID))
			w := measure.Width(rendered)
			placements = append(placements, Placement{ID: p.ID, Row: i, X: x, Width: w})
			b.WriteString(rendered)
			x += w
		}
		lines = append(lines, b.String())
	}
	return lines, placements
}
