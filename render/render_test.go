package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/hexcolor"
)

// Channels divide by 256, not 255: full intensity is 255/256.
func TestChannels(t *testing.T) {
	r, g, b := Channels(hexcolor.RGB{R: 255, G: 128, B: 0})
	assert.InDelta(t, 255.0/256.0, r, 1e-9)
	assert.InDelta(t, 0.5, g, 1e-9)
	assert.Zero(t, b)
}

func TestNewFontRequest(t *testing.T) {
	desc := font.Descriptor{
		Family: "Amstelvar",
		Style:  "Italic",
		Size:   20,
		Variations: []font.Variation{
			{Tag: font.MustNewTag("wght"), Value: 200},
			{Tag: font.MustNewTag("wdth"), Value: 20},
		},
	}
	req := NewFontRequest(desc, "en", di.DirectionLTR)

	assert.Equal(t, "Amstelvar", req.Family)
	assert.Equal(t, "Italic", req.Style)
	// The canvas size carries the 0.75 unit compensation.
	assert.InDelta(t, 15.0, req.Size, 1e-9)
	assert.Equal(t, "wght=200,wdth=20,", req.Variations)
	assert.Equal(t, di.DirectionLTR, req.Direction)
}
