package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/language"
)

// countingShaper measures every token at a fixed width and counts how
// often each text is actually shaped.
type countingShaper struct {
	calls map[string]int
	fail  map[string]bool
}

func (c *countingShaper) Shape(req Request) (Metrics, error) {
	c.calls[req.Text]++
	if c.fail[req.Text] {
		return Metrics{}, ErrUnshaped
	}
	return Metrics{XAdvance: fixed.I(7 * len(req.Text))}, nil
}

func newCountingShaper() *countingShaper {
	return &countingShaper{calls: map[string]int{}, fail: map[string]bool{}}
}

func request(text string) Request {
	return Request{
		Text:      text,
		Font:      font.Descriptor{Family: "FreeSans", Style: "Regular", Size: 20},
		Direction: di.DirectionLTR,
		Language:  language.Language("en"),
	}
}

func TestMeasureMemoizes(t *testing.T) {
	shaper := newCountingShaper()
	m := NewMeasurer(shaper, nil)

	first, ok := m.Measure(request("ab"))
	assert.True(t, ok)
	second, ok := m.Measure(request("ab"))
	assert.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, shaper.calls["ab"])

	m.Measure(request("cd"))
	assert.Equal(t, 1, shaper.calls["cd"])
}

// Distinct fonts, directions or languages are distinct cache entries.
func TestMeasureKeyDiscriminates(t *testing.T) {
	shaper := newCountingShaper()
	m := NewMeasurer(shaper, nil)

	m.Measure(request("ab"))
	rtl := request("ab")
	rtl.Direction = di.DirectionRTL
	m.Measure(rtl)
	bigger := request("ab")
	bigger.Font.Size = 30
	m.Measure(bigger)
	varied := request("ab")
	varied.Font.Variations = []font.Variation{{Tag: font.MustNewTag("wght"), Value: 800}}
	m.Measure(varied)

	assert.Equal(t, 4, shaper.calls["ab"])
}

// Failures are memoized too: an unshapable token is not retried.
func TestMeasureCachesFailure(t *testing.T) {
	shaper := newCountingShaper()
	shaper.fail["xx"] = true
	m := NewMeasurer(shaper, nil)

	_, ok := m.Measure(request("xx"))
	assert.False(t, ok)
	_, ok = m.Measure(request("xx"))
	assert.False(t, ok)
	assert.Equal(t, 1, shaper.calls["xx"])
}

func TestSpaceWidth(t *testing.T) {
	shaper := newCountingShaper()
	m := NewMeasurer(shaper, nil)
	desc := font.Descriptor{Family: "FreeSans", Style: "Regular", Size: 20}

	got := m.SpaceWidth(desc, di.DirectionLTR, "en")
	assert.InDelta(t, 7.0, got, 1e-9)
}

func TestSpaceWidthFailure(t *testing.T) {
	shaper := newCountingShaper()
	shaper.fail[" "] = true
	m := NewMeasurer(shaper, nil)
	desc := font.Descriptor{Family: "FreeSans", Style: "Regular", Size: 20}

	assert.Zero(t, m.SpaceWidth(desc, di.DirectionLTR, "en"))
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 1.0, Points(fixed.I(1)))
	assert.Equal(t, 0.5, Points(fixed.Int26_6(32)))
}
