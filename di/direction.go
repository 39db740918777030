// Package di exposes the writing directions a text block may declare.
package di

import "fmt"

// Direction is the progression of a block's lines and of the text on them.
type Direction uint8

const (
	DirectionLTR Direction = iota // horizontal, left to right
	DirectionRTL                  // horizontal, right to left
	DirectionTTB                  // vertical, top to bottom
	DirectionBTT                  // vertical, bottom to top
)

// Horizontal reports whether the direction lays text on horizontal lines.
func (d Direction) Horizontal() bool {
	return d == DirectionLTR || d == DirectionRTL
}

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	case DirectionTTB:
		return "ttb"
	case DirectionBTT:
		return "btt"
	}
	return fmt.Sprintf("<unknown direction %d>", d)
}

// ParseDirection maps the textual form used by configuration surfaces
// back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	case "ttb":
		return DirectionTTB, nil
	case "btt":
		return DirectionBTT, nil
	}
	return 0, fmt.Errorf("di: unknown direction %q", s)
}
