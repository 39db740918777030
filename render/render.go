// Package render defines the vector canvas contract the layout engine
// draws through, and the conversions applied on the way to the canvas.
package render

import (
	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/hexcolor"
	"github.com/Yoxem/uahli/language"
)

// ChannelScale is the divisor normalizing 8-bit color channels to the
// [0,1] range canvases expect. The default is 256, not 255: channel
// 0xff maps to 255/256. Changing it changes every color on the page.
const ChannelScale = 256.0

// CanvasPointScale is multiplied into the point size handed to the
// canvas, compensating for the canvas's unit interpretation. The
// default is 0.75. Changing it changes every glyph size on the page.
const CanvasPointScale = 0.75

// Channels normalizes an RGB triple for the canvas.
func Channels(c hexcolor.RGB) (r, g, b float64) {
	return float64(c.R) / ChannelScale, float64(c.G) / ChannelScale, float64(c.B) / ChannelScale
}

// FontRequest is the font state handed to the canvas alongside each
// text run. Size carries the CanvasPointScale factor already applied;
// Variations is the "tag=val," serialized axis list, trailing comma
// included.
type FontRequest struct {
	Family     string
	Style      string
	Size       float64
	Language   language.Language
	Direction  di.Direction
	Variations string
}

// NewFontRequest derives the canvas-side font state from a descriptor
// and the block's language and direction.
func NewFontRequest(desc font.Descriptor, lang language.Language, dir di.Direction) FontRequest {
	return FontRequest{
		Family:     desc.Family,
		Style:      desc.Style,
		Size:       float64(desc.Size) * CanvasPointScale,
		Language:   lang,
		Direction:  dir,
		Variations: font.VariationString(desc.Variations),
	}
}

// Canvas is the drawing surface collaborator. Calls arrive serially:
// SaveState, SetSourceRGB, MoveTo, ShowTextRun, RestoreState around
// each run, with MoveTo(0, 0) after every restore. Save and restore
// failures are recoverable: a failed save skips the run it would
// bracket, and a failed restore, arriving after the run was shown, is
// logged.
type Canvas interface {
	SaveState() error
	RestoreState() error
	SetSourceRGB(r, g, b float64)
	MoveTo(x, y float64)
	ShowTextRun(text string, font FontRequest) error
}
