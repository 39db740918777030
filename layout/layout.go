// Package layout fits script-segmented tokens into a rectangular
// region and emits positioned text runs to a vector canvas.
//
// The pipeline is greedy first-fit: tokens are measured through a
// shaping collaborator, packed left to right into lines, the lines
// justified per the requested mode, and the result drawn through the
// canvas collaborator. Everything is synchronous and local to one
// Layout call.
package layout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/hexcolor"
	"github.com/Yoxem/uahli/render"
	"github.com/Yoxem/uahli/segment"
	"github.com/Yoxem/uahli/shape"
)

// Box pairs a token with its measured metrics, in points. Space boxes
// carry no metrics of their own; they render at the justifier-computed
// gap width.
type Box struct {
	Token   segment.Token
	Width   float64 // advance width
	Height  float64 // advance height
	XOffset float64 // maximum x offset across the glyphs of the run
	YOffset float64
}

// Line is an ordered run of boxes sharing one baseline. Slack is the
// distance between the right edge of the last non-space box and the
// right edge of the region, zero when the line ends flush. GapWidth is
// the width every space on the line renders at, set by the justifier.
type Line struct {
	Boxes    []Box
	Slack    float64
	GapWidth float64
}

func (l Line) nonSpaceCount() int {
	n := 0
	for _, b := range l.Boxes {
		if !b.Token.IsSpace() {
			n++
		}
	}
	return n
}

// assemble packs boxes into lines, greedy first-fit. It returns the
// lines that fit vertically and whether the region overflowed, in
// which case trailing boxes were dropped.
//
// A box wider than the whole region is placed alone on its line and
// visibly overflows the right edge; tokens are never split. The only
// whitespace discarded is a space at the start of a line.
func assemble(boxes []Box, region Region, baseSpace float64) (lines []Line, overflowed bool) {
	penX := region.X
	penY := region.Y
	var current []Box
	var slack float64

	for _, b := range boxes {
		w := b.Width
		if b.Token.IsSpace() {
			w = baseSpace
		}

		if penX+w <= region.rightEdge() {
			if b.Token.IsSpace() && len(current) == 0 {
				continue
			}
			current = append(current, b)
			if !b.Token.IsSpace() {
				slack = region.rightEdge() - (penX + b.Width)
			}
			penX += w
			continue
		}

		lines = append(lines, Line{Boxes: current, Slack: slack})
		penY += region.LineSkip
		penX = region.X
		current = nil
		slack = 0
		if penY > region.bottomEdge() {
			return lines, true
		}
		if !b.Token.IsSpace() {
			current = append(current, b)
			penX = region.X + w
		}
	}

	return append(lines, Line{Boxes: current, Slack: slack}), false
}

// justify sets each line's gap width. Ragged lines keep the base
// width. Unragged lines spread their slack evenly over the gaps, with
// two exceptions: the last line of a block that did not overflow, and
// lines with fewer than two words, which have no gaps to widen.
func justify(lines []Line, mode Mode, baseSpace float64, overflowed bool) {
	for i := range lines {
		l := &lines[i]
		l.GapWidth = baseSpace
		if mode != Unragged {
			continue
		}
		if i == len(lines)-1 && !overflowed {
			continue
		}
		if n := l.nonSpaceCount(); n >= 2 {
			l.GapWidth = baseSpace + l.Slack/float64(n-1)
		}
	}
}

// emit walks the justified lines and draws every non-space box through
// the canvas. Widths all come from the line records; emission never
// measures.
func emit(lines []Line, region Region, color hexcolor.RGB, req render.FontRequest, canvas render.Canvas, logger *log.Logger) {
	r, g, b := render.Channels(color)
	for i, line := range lines {
		penX := region.X
		penY := region.Y + region.LineSkip*float64(i)
		for _, box := range line.Boxes {
			if box.Token.IsSpace() {
				penX += line.GapWidth
				continue
			}
			drawRun(canvas, box.Token.Text, penX, penY, r, g, b, req, logger)
			penX += box.Width
		}
	}
}

// drawRun shows one run under a scoped canvas state save. Once the save
// succeeds, the prior state is restored on every exit path and the pen
// parked at the origin, so one run's color and position never leak into
// the next. A failed save skips the draw; a failed restore, which comes
// after the draw, is only logged. Neither stops the caller's pen
// advance.
func drawRun(canvas render.Canvas, text string, x, y, r, g, b float64, req render.FontRequest, logger *log.Logger) {
	if err := canvas.SaveState(); err != nil {
		logger.Warn("layout: canvas save failed, skipping run", "text", text, "err", err)
		return
	}
	defer func() {
		if err := canvas.RestoreState(); err != nil {
			logger.Warn("layout: canvas restore failed", "err", err)
		}
		canvas.MoveTo(0, 0)
	}()

	canvas.SetSourceRGB(r, g, b)
	canvas.MoveTo(x, y)
	if err := canvas.ShowTextRun(text, req); err != nil {
		logger.Warn("layout: canvas rejected run", "text", text, "err", err)
	}
}

// Layout lays text out inside region and draws it through canvas.
//
// Configuration problems (malformed color, negative width, non-positive
// height or line skip, vertical directions) are returned as errors
// before anything is
// drawn. Per-token measurement failures are not errors: the token is
// dropped with a diagnostic and the rest of the text still lays out.
func Layout(text string, region Region, desc font.Descriptor, mode Mode, shaper shape.Shaper, canvas render.Canvas, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := region.validate(); err != nil {
		return err
	}
	color, err := hexcolor.Parse(region.Color)
	if err != nil {
		return fmt.Errorf("layout: region fill: %w", err)
	}

	tokens := segment.Segment(text, logger)
	measurer := shape.NewMeasurer(shaper, logger)
	baseSpace := measurer.SpaceWidth(desc, region.Direction, region.Language)

	boxes := make([]Box, 0, len(tokens))
	for _, t := range tokens {
		if t.IsSpace() {
			boxes = append(boxes, Box{Token: t})
			continue
		}
		m, ok := measurer.Measure(shape.Request{
			Text:      t.Text,
			Font:      desc,
			Direction: region.Direction,
			Language:  region.Language,
		})
		if !ok {
			continue
		}
		boxes = append(boxes, Box{
			Token:   t,
			Width:   shape.Points(m.XAdvance),
			Height:  shape.Points(m.YAdvance),
			XOffset: shape.Points(m.XOffset),
			YOffset: shape.Points(m.YOffset),
		})
	}

	lines, overflowed := assemble(boxes, region, baseSpace)
	justify(lines, mode, baseSpace, overflowed)
	emit(lines, region, color, render.NewFontRequest(desc, region.Language, region.Direction), canvas, logger)
	return nil
}
