// Package shape defines the metric contract between the layout engine
// and the external shaping collaborator, and memoizes measurements
// within one layout call.
package shape

import (
	"errors"

	"golang.org/x/image/math/fixed"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/language"
)

// ErrUnshaped is reported when the shaping collaborator cannot produce
// metrics for a token. The token is dropped; layout continues.
var ErrUnshaped = errors.New("shape: token not shaped")

// Request identifies one measurable run of text. Two requests with
// equal fields always measure identically within a layout call, which
// is what makes memoization sound.
type Request struct {
	Text      string
	Font      font.Descriptor
	Direction di.Direction
	Language  language.Language
}

// Metrics is the measured box of one shaped token, in 26.6 fixed-point
// units (1/64ths of a point). Advances accumulate over the glyphs of
// the run; offsets keep the maximum seen at any glyph position.
type Metrics struct {
	XAdvance fixed.Int26_6
	YAdvance fixed.Int26_6
	XOffset  fixed.Int26_6
	YOffset  fixed.Int26_6
}

// Points converts a 26.6 fixed-point length to floating-point points.
func Points(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Shaper measures one run of text under a font, direction and
// language. Implementations are invoked serially; they need not be
// safe for concurrent use.
type Shaper interface {
	Shape(Request) (Metrics, error)
}
