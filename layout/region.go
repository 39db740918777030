package layout

import (
	"errors"
	"fmt"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/language"
)

// ErrInvalidRegion is returned for regions with a negative width or a
// non-positive height or line skip. A zero width is accepted.
var ErrInvalidRegion = errors.New("layout: region dimensions must be positive")

// ErrUnsupportedDirection is returned for the vertical writing
// directions a region may declare but this engine does not lay out.
var ErrUnsupportedDirection = errors.New("layout: only horizontal directions are supported")

// Region is the rectangular block receiving the text, in points from
// the top-left of the page. It is caller-owned and borrowed read-only
// for the duration of one layout call.
type Region struct {
	X, Y          float64
	Width, Height float64
	LineSkip      float64 // baseline-to-baseline advance

	Direction di.Direction
	Language  language.Language
	Color     string // "#RRGGBB" fill for the text runs
}

func (r Region) validate() error {
	// Width zero is degenerate but well-defined: every word overflows
	// onto its own line. Negative width, and height or lineskip that
	// cannot host a baseline, are configuration errors.
	if r.Width < 0 || r.Height <= 0 || r.LineSkip <= 0 {
		return ErrInvalidRegion
	}
	if !r.Direction.Horizontal() {
		return fmt.Errorf("%w: %s", ErrUnsupportedDirection, r.Direction)
	}
	return nil
}

// rightEdge is the x coordinate no line content should pass.
func (r Region) rightEdge() float64 { return r.X + r.Width }

// bottomEdge is the y coordinate no baseline should pass.
func (r Region) bottomEdge() float64 { return r.Y + r.Height }

// Mode selects how a line's slack is distributed over its inter-word
// gaps.
type Mode uint8

const (
	Ragged   Mode = iota // natural line ends, gaps at base width
	Unragged             // gaps widen so non-last lines end flush
)

func (m Mode) String() string {
	switch m {
	case Ragged:
		return "ragged"
	case Unragged:
		return "unragged"
	}
	return fmt.Sprintf("<unknown mode %d>", m)
}

// ParseMode maps the textual form used by configuration surfaces back
// to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ragged":
		return Ragged, nil
	case "unragged":
		return Unragged, nil
	}
	return 0, fmt.Errorf("layout: unknown mode %q", s)
}
