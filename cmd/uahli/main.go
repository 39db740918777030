// Command uahli lays multilingual text out into a region of a PDF page.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Yoxem/uahli/di"
	"github.com/Yoxem/uahli/font"
	"github.com/Yoxem/uahli/hexcolor"
	"github.com/Yoxem/uahli/language"
	"github.com/Yoxem/uahli/layout"
	"github.com/Yoxem/uahli/locate"
	"github.com/Yoxem/uahli/render"
	"github.com/Yoxem/uahli/render/cairo"
	"github.com/Yoxem/uahli/shape/gotext"
)

// A4 page size in points.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
)

type options struct {
	out        string
	family     string
	style      string
	size       int
	variations []string

	x, y          float64
	width, height float64
	lineskip      float64
	lang          string
	direction     string
	color         string
	background    string
	mode          string

	verbose bool
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "uahli [flags] text...",
		Short: "lay multilingual text out into a region of a PDF page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, strings.Join(args, " "))
		},
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "out.pdf", "output PDF path")
	f.StringVar(&opts.family, "family", "FreeSans", "font family")
	f.StringVar(&opts.style, "style", "Regular", "font style")
	f.IntVar(&opts.size, "size", 20, "font size in points")
	f.StringArrayVar(&opts.variations, "variation", nil, "variation axis, e.g. wght=800 (repeatable)")
	f.Float64Var(&opts.x, "x", 100, "region origin x in points")
	f.Float64Var(&opts.y, "y", 100, "region origin y in points")
	f.Float64Var(&opts.width, "width", pageWidth-200, "region width in points")
	f.Float64Var(&opts.height, "height", pageHeight-200, "region height in points")
	f.Float64Var(&opts.lineskip, "lineskip", 24, "baseline-to-baseline distance in points")
	f.StringVar(&opts.lang, "language", "en", "BCP 47 language tag")
	f.StringVar(&opts.direction, "direction", "ltr", "text direction: ltr or rtl")
	f.StringVar(&opts.color, "color", "#198964", "text color as #RRGGBB")
	f.StringVar(&opts.background, "background", "", "page background as #RRGGBB, empty for none")
	f.StringVar(&opts.mode, "mode", "ragged", "justification mode: ragged or unragged")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log layout diagnostics")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options, text string) error {
	logger := log.New(os.Stderr)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	dir, err := di.ParseDirection(opts.direction)
	if err != nil {
		return err
	}
	mode, err := layout.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	variations, err := parseVariations(opts.variations)
	if err != nil {
		return err
	}

	canvas, err := cairo.NewPDF(opts.out, pageWidth, pageHeight, logger)
	if err != nil {
		return err
	}
	if opts.background != "" {
		bg, err := hexcolor.Parse(opts.background)
		if err != nil {
			return err
		}
		r, g, b := render.Channels(bg)
		canvas.PaintBackground(r, g, b, 1)
	}

	region := layout.Region{
		X:         opts.x,
		Y:         opts.y,
		Width:     opts.width,
		Height:    opts.height,
		LineSkip:  opts.lineskip,
		Direction: dir,
		Language:  language.New(opts.lang),
		Color:     opts.color,
	}
	desc := font.Descriptor{
		Family:     opts.family,
		Style:      opts.style,
		Size:       opts.size,
		Variations: variations,
	}
	shaper := gotext.New(locate.NewSystem(), logger)

	if err := layout.Layout(text, region, desc, mode, shaper, canvas, logger); err != nil {
		return err
	}
	return canvas.Finish()
}

func parseVariations(specs []string) ([]font.Variation, error) {
	var vars []font.Variation
	for _, s := range specs {
		tagStr, valStr, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("variation %q is not tag=value", s)
		}
		tag, err := font.NewTag(tagStr)
		if err != nil {
			return nil, err
		}
		var val float64
		if _, err := fmt.Sscanf(valStr, "%g", &val); err != nil {
			return nil, fmt.Errorf("variation %q: %v", s, err)
		}
		vars = append(vars, font.Variation{Tag: tag, Value: val})
	}
	return vars, nil
}
