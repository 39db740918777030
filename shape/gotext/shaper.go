// Package gotext measures text through the go-text/typesetting
// harfbuzz port, resolving families and styles to system font files
// with a locate.Locator.
package gotext

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	gtdi "github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/locate"
	"github.com/Yoxem/uahli/shape"
)

// Shaper implements shape.Shaper over harfbuzz shaping of locally
// installed fonts. Faces are parsed once per (file, variation set) and
// reused across tokens.
type Shaper struct {
	locator locate.Locator
	logger  *log.Logger
	hb      shaping.HarfbuzzShaper
	faces   map[faceKey]*gtfont.Face
}

type faceKey struct {
	path string
	vars string
}

// New builds a Shaper over the given font locator. A nil logger
// discards diagnostics.
func New(locator locate.Locator, logger *log.Logger) *Shaper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shaper{
		locator: locator,
		logger:  logger,
		faces:   map[faceKey]*gtfont.Face{},
	}
}

// Shape measures one token. The returned metrics are in 26.6 units:
// glyph advances summed over the run, offsets reduced by maximum.
func (s *Shaper) Shape(req shape.Request) (shape.Metrics, error) {
	face, err := s.face(req.Font)
	if err != nil {
		return shape.Metrics{}, fmt.Errorf("%w: %v", shape.ErrUnshaped, err)
	}

	runes := []rune(req.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(req.Direction),
		Face:      face,
		Size:      fixed.I(req.Font.Size),
		Language:  gtlanguage.NewLanguage(string(req.Language)),
	}
	if len(runes) > 0 {
		input.Script = gtlanguage.LookupScript(runes[0])
	}
	// Feature ranges are rune ranges of the whole source; a token is an
	// atomic run, so features apply to every glyph shaped from it.
	for _, f := range req.Font.Features {
		input.FontFeatures = append(input.FontFeatures, shaping.FontFeature{
			Tag:   gtfont.Tag(f.Tag),
			Value: f.Value,
		})
	}

	out := s.hb.Shape(input)
	return reduce(out.Glyphs), nil
}

// reduce folds per-glyph positions into one box: advances accumulate,
// offsets keep the maximum seen at any glyph position.
func reduce(glyphs []shaping.Glyph) shape.Metrics {
	var m shape.Metrics
	for _, g := range glyphs {
		m.XAdvance += g.XAdvance
		m.YAdvance += g.YAdvance
		if m.XOffset < g.XOffset {
			m.XOffset = g.XOffset
		}
		if m.YOffset < g.YOffset {
			m.YOffset = g.YOffset
		}
	}
	return m
}

func (s *Shaper) face(desc font.Descriptor) (*gtfont.Face, error) {
	path, err := s.locator.Find(desc.Family, desc.Style)
	if err != nil {
		return nil, err
	}
	k := faceKey{path: path, vars: font.VariationString(desc.Variations)}
	if face, ok := s.faces[k]; ok {
		return face, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(desc.Variations) > 0 {
		vars := make([]gtfont.Variation, len(desc.Variations))
		for i, v := range desc.Variations {
			vars[i] = gtfont.Variation{Tag: gtfont.Tag(v.Tag), Value: float32(v.Value)}
		}
		face.SetVariations(vars)
	}
	s.faces[k] = face
	return face, nil
}

func mapDirection(d di.Direction) gtdi.Direction {
	if d == di.DirectionRTL {
		return gtdi.DirectionRTL
	}
	return gtdi.DirectionLTR
}
