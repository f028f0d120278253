package layout

import (
	"errors"
	"sort"

	"github.com/young1lin/pillrow/internal/pill"
)

var (
	ErrLeadingBreak   = errors.New("layout starts with a break")
	ErrTrailingBreak  = errors.New("layout ends with a break")
	ErrAdjacentBreaks = errors.New("layout has adjacent breaks")
)

// Plan arranges pills for a container width cells wide using the given mode.
// It is a pure function of its arguments.
func Plan(pills []pill.Pill, toggles pill.ToggleSet, width int, mode Mode, oracle WidthOracle) []Element {
	if mode == ModeBinPacking {
		return PlanBinPacked(pills, toggles, width, oracle)
	}
	return PlanDefault(pills, toggles, width, oracle)
}

// PlanDefault keeps pills in order and starts a new row whenever the next pill's
// maximum width does not fit in what is left of the current one.
//
// A pill wider than the container still gets a row of its own; the row after it
// always starts fresh because spaceLeft has gone negative.
func PlanDefault(pills []pill.Pill, toggles pill.ToggleSet, width int, oracle WidthOracle) []Element {
	elements := make([]Element, 0, len(pills))
	spaceLeft := width
	rowCount := 0
	rowHasPill := false

	for _, p := range pills {
		maxWidth := oracle.MaxWidth(p, toggles.Has(p.ID))

		if spaceLeft-maxWidth < 0 && rowHasPill {
			elements = append(elements, BreakElement(rowCount))
			rowCount++
			spaceLeft = width
		}
		elements = append(elements, PillElement(p))
		spaceLeft -= maxWidth
		rowHasPill = true
	}
	return elements
}

// PlanBinPacked places pills largest first into the first row with room for them
// (first-fit descending). Row count is usually lower than PlanDefault's, but the
// reading order no longer matches the input order.
func PlanBinPacked(pills []pill.Pill, toggles pill.ToggleSet, width int, oracle WidthOracle) []Element {
	if len(pills) == 0 {
		return []Element{}
	}

	type sized struct {
		p pill.Pill
		w int
	}
	bigToSmall := make([]sized, len(pills))
	for i, p := range pills {
		bigToSmall[i] = sized{p: p, w: oracle.MaxWidth(p, toggles.Has(p.ID))}
	}
	sort.SliceStable(bigToSmall, func(i, j int) bool {
		return bigToSmall[i].w > bigToSmall[j].w
	})

	var rows []*row
	for _, s := range bigToSmall {
		var target *row
		for _, r := range rows {
			if r.spaceLeft-s.w >= 0 {
				target = r
				break
			}
		}
		if target == nil {
			rows = append(rows, &row{spaceLeft: width - s.w, pills: []pill.Pill{s.p}})
			continue
		}
		target.pills = append(target.pills, s.p)
		target.spaceLeft -= s.w
	}

	elements := make([]Element, 0, len(pills)+len(rows)-1)
	for i, r := range rows {
		if i > 0 {
			elements = append(elements, BreakElement(i-1))
		}
		for _, p := range r.pills {
			elements = append(elements, PillElement(p))
		}
	}
	return elements
}

// Rows splits a layout at its breaks.
func Rows(elements []Element) [][]pill.Pill {
	if len(elements) == 0 {
		return nil
	}
	rows := [][]pill.Pill{{}}
	for _, e := range elements {
		if e.IsBreak() {
			rows = append(rows, []pill.Pill{})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], e.Pill)
	}
	return rows
}

// Validate checks the break invariants of a planned layout.
func Validate(elements []Element) error {
	for i, e := range elements {
		if !e.IsBreak() {
			continue
		}
		switch {
		case i == 0:
			return ErrLeadingBreak
		case i == len(elements)-1:
			return ErrTrailingBreak
		case elements[i-1].IsBreak():
			return ErrAdjacentBreaks
		}
	}
	return nil
}
