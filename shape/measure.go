package shape

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/language"
)

// key flattens a Request into a comparable value. Variation and
// feature lists are folded into strings because slices cannot be map
// keys.
type key struct {
	text          string
	family, style string
	size          int
	vars, feats   string
	dir           di.Direction
	lang          language.Language
}

func keyOf(req Request) key {
	return key{
		text:   req.Text,
		family: req.Font.Family,
		style:  req.Font.Style,
		size:   req.Font.Size,
		vars:   font.VariationString(req.Font.Variations),
		feats:  fmt.Sprint(req.Font.Features),
		dir:    req.Direction,
		lang:   req.Language,
	}
}

type result struct {
	metrics Metrics
	ok      bool
}

// Measurer memoizes shaping results for the duration of one layout
// call. Each unique (text, font, direction, language) combination is
// measured at most once; failures are cached too, so a token the
// collaborator cannot shape is not retried.
type Measurer struct {
	shaper Shaper
	logger *log.Logger
	cache  map[key]result
}

// NewMeasurer wraps a shaping collaborator. A nil logger discards
// diagnostics.
func NewMeasurer(shaper Shaper, logger *log.Logger) *Measurer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Measurer{
		shaper: shaper,
		logger: logger,
		cache:  map[key]result{},
	}
}

// Measure returns the metrics for one token, measuring on first use
// and replaying the memoized result afterwards. ok is false when the
// collaborator could not shape the token.
func (m *Measurer) Measure(req Request) (Metrics, bool) {
	k := keyOf(req)
	if r, hit := m.cache[k]; hit {
		return r.metrics, r.ok
	}
	metrics, err := m.shaper.Shape(req)
	if err != nil {
		m.logger.Warn("shape: dropping unmeasurable token", "text", req.Text, "err", err)
		m.cache[k] = result{}
		return Metrics{}, false
	}
	m.cache[k] = result{metrics: metrics, ok: true}
	return metrics, true
}

// SpaceWidth probes the advance of a single space character under the
// given font, direction and language: the base width of every
// inter-word gap. A failed probe yields zero, warns, and lets layout
// continue with juxtaposed words.
func (m *Measurer) SpaceWidth(desc font.Descriptor, dir di.Direction, lang language.Language) float64 {
	metrics, ok := m.Measure(Request{Text: " ", Font: desc, Direction: dir, Language: lang})
	if !ok {
		m.logger.Warn("shape: space probe failed, inter-word gaps collapse to zero")
		return 0
	}
	return Points(metrics.XAdvance)
}
