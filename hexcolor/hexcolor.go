// Package hexcolor parses CSS-style hexadecimal color strings into
// 8-bit RGB triples.
package hexcolor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed is returned when a color string does not match #RRGGBB.
var ErrMalformed = errors.New("hexcolor: malformed color")

var pattern = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is an 8-bit color channel triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parse converts a "#RRGGBB" string to its RGB triple.
// There is no alpha channel; anything but six hex digits fails
// with ErrMalformed.
func Parse(s string) (RGB, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
