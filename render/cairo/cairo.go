// Package cairo adapts a cairo PDF surface to the render.Canvas
// contract.
package cairo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	gocairo "github.com/ungerik/go-cairo"

	"github.com/Yoxem/uahli/render"
)

// Canvas draws text runs onto a cairo PDF surface.
type Canvas struct {
	surface *gocairo.Surface
	logger  *log.Logger

	warnedVariations bool
}

var _ render.Canvas = (*Canvas)(nil)

// NewPDF creates a PDF surface of the given page size in points. A nil
// logger discards diagnostics.
func NewPDF(path string, width, height float64, logger *log.Logger) (*Canvas, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	surface := gocairo.NewPDFSurface(path, width, height, gocairo.PDF_VERSION_1_5)
	if status := surface.Status(); status != gocairo.STATUS_SUCCESS {
		return nil, fmt.Errorf("cairo: creating %s: %s", path, status.String())
	}
	return &Canvas{surface: surface, logger: logger}, nil
}

// PaintBackground floods the page with one color, alpha included.
func (c *Canvas) PaintBackground(r, g, b, a float64) {
	c.surface.SetSourceRGBA(r, g, b, a)
	c.surface.Paint()
}

func (c *Canvas) SaveState() error {
	c.surface.Save()
	return c.status()
}

func (c *Canvas) RestoreState() error {
	c.surface.Restore()
	return c.status()
}

func (c *Canvas) SetSourceRGB(r, g, b float64) {
	c.surface.SetSourceRGB(r, g, b)
}

func (c *Canvas) MoveTo(x, y float64) {
	c.surface.MoveTo(x, y)
}

// ShowTextRun draws one run with cairo's toy text API. The toy API
// selects faces by name and cannot apply variation axes; a non-empty
// axis list is reported once and ignored.
func (c *Canvas) ShowTextRun(text string, font render.FontRequest) error {
	if font.Variations != "" && !c.warnedVariations {
		c.warnedVariations = true
		c.logger.Warn("cairo: toy text API ignores variation axes", "variations", font.Variations)
	}
	c.surface.SelectFontFace(font.Family, slantOf(font.Style), weightOf(font.Style))
	c.surface.SetFontSize(font.Size)
	c.surface.ShowText(text)
	return c.status()
}

// Finish flushes and closes the PDF stream.
func (c *Canvas) Finish() error {
	c.surface.Finish()
	err := c.status()
	c.surface.Destroy()
	return err
}

func (c *Canvas) status() error {
	if status := c.surface.Status(); status != gocairo.STATUS_SUCCESS {
		return fmt.Errorf("cairo: %s", status.String())
	}
	return nil
}

func slantOf(style string) gocairo.FontSlant {
	s := strings.ToLower(style)
	switch {
	case strings.Contains(s, "italic"):
		return gocairo.FONT_SLANT_ITALIC
	case strings.Contains(s, "oblique"):
		return gocairo.FONT_SLANT_OBLIQUE
	}
	return gocairo.FONT_SLANT_NORMAL
}

func weightOf(style string) gocairo.FontWeight {
	if strings.Contains(strings.ToLower(style), "bold") {
		return gocairo.FONT_WEIGHT_BOLD
	}
	return gocairo.FONT_WEIGHT_NORMAL
}
