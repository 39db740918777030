package gotext

import (
	"testing"

	"github.com/go-text/typesetting/shaping"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"

	"github.com/Yoxem/uahli/shape"
)

// Advances accumulate across the run; offsets keep the maximum seen at
// any glyph position, not a sum.
func TestReduce(t *testing.T) {
	glyphs := []shaping.Glyph{
		{XAdvance: fixed.I(10), YAdvance: 0, XOffset: fixed.I(2), YOffset: fixed.I(1)},
		{XAdvance: fixed.I(12), YAdvance: 0, XOffset: fixed.I(1), YOffset: fixed.I(3)},
		{XAdvance: fixed.I(8), YAdvance: 0, XOffset: fixed.I(2), YOffset: fixed.I(2)},
	}
	got := reduce(glyphs)
	assert.Equal(t, shape.Metrics{
		XAdvance: fixed.I(30),
		YAdvance: 0,
		XOffset:  fixed.I(2),
		YOffset:  fixed.I(3),
	}, got)
}

func TestReduceEmpty(t *testing.T) {
	assert.Equal(t, shape.Metrics{}, reduce(nil))
}

// Negative offsets never win over the zero initial maximum.
func TestReduceNegativeOffsets(t *testing.T) {
	glyphs := []shaping.Glyph{
		{XAdvance: fixed.I(5), XOffset: -fixed.I(4), YOffset: -fixed.I(2)},
	}
	got := reduce(glyphs)
	assert.Equal(t, fixed.I(5), got.XAdvance)
	assert.Zero(t, got.XOffset)
	assert.Zero(t, got.YOffset)
}
