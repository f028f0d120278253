//go:generate mockgen -source=types.go -destination=mock_oracle_test.go -package=layout

// Package layout arranges pills into rows that fit a container width.
package layout

import (
	"fmt"
	"strings"

	"github.com/young1lin/pillrow/internal/pill"
)

// Kind tags an Element as a pill or a row break.
type Kind int

const (
	KindPill Kind = iota
	KindBreak
)

// Element is one item of a planned layout: a pill, or a hard break between rows.
type Element struct {
	Kind Kind
	ID   string
	Pill pill.Pill // zero for breaks
}

// PillElement places p at its position in the layout.
func PillElement(p pill.Pill) Element {
	return Element{Kind: KindPill, ID: p.ID, Pill: p}
}

// BreakElement closes the row with the given zero-based index.
func BreakElement(row int) Element {
	return Element{Kind: KindBreak, ID: fmt.Sprintf("%d-line-break", row)}
}

// IsBreak reports whether e is a row break.
func (e Element) IsBreak() bool {
	return e.Kind == KindBreak
}

// Mode selects the planning algorithm.
type Mode int

const (
	// ModeDefault keeps the caller's order and only inserts breaks.
	ModeDefault Mode = iota
	// ModeBinPacking trades input order for fewer rows.
	ModeBinPacking
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeBinPacking:
		return "bin-packing"
	default:
		return "unknown"
	}
}

// ParseMode parses the output of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ModeDefault, nil
	case "bin-packing", "binpacking", "packed":
		return ModeBinPacking, nil
	}
	return ModeDefault, fmt.Errorf("unknown layout mode %q", s)
}

// WidthOracle reports the widest a pill can become in its current toggle state.
type WidthOracle interface {
	MaxWidth(p pill.Pill, toggled bool) int
}

// WidthFunc adapts a function to WidthOracle.
type WidthFunc func(p pill.Pill, toggled bool) int

// MaxWidth calls f.
func (f WidthFunc) MaxWidth(p pill.Pill, toggled bool) int {
	return f(p, toggled)
}

// row exists only while bin packing.
type row struct {
	spaceLeft int
	pills     []pill.Pill
}
