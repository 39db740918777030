// Package locate resolves a font family and style to a font file on
// disk. Only the shaping backend consumes it; the layout engine never
// touches the filesystem.
package locate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/sysfont"
)

// ErrFontUnavailable is reported when no installed font matches the
// requested family and style.
var ErrFontUnavailable = errors.New("locate: font unavailable")

// Locator finds the file providing a font family and style.
type Locator interface {
	Find(family, style string) (string, error)
}

// System matches families and styles against the fonts installed on
// the host, fontconfig-style: the closest installed face wins, exact
// matches preferred.
type System struct {
	finder *sysfont.Finder
}

// NewSystem builds a locator over the host's font directories. The
// directory scan happens once, here.
func NewSystem() *System {
	return &System{finder: sysfont.NewFinder(nil)}
}

func (s *System) Find(family, style string) (string, error) {
	query := strings.TrimSpace(family + " " + style)
	match := s.finder.Match(query)
	if match == nil || match.Filename == "" {
		return "", fmt.Errorf("%w: %q", ErrFontUnavailable, query)
	}
	return match.Filename, nil
}
