// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders aggregated benchmark series and raw data
// set distributions as figures for the thesis.
//
// Render writes one figure per call. The output format follows the
// file extension; the thesis uses PDF.
package benchplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// A Kind selects the type of figure Render draws.
type Kind int

const (
	// Scatter draws one dot per point. The area of each dot is
	// proportional to its y value, which is normally a count.
	Scatter Kind = iota

	// Heatmap bins (x, y) pairs into a 2D grid of counts.
	Heatmap

	// Line connects the points in order.
	Line
)

var kindNames = []string{"scatter", "heatmap", "line"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown plot kind %q (want %s)", s, strings.Join(kindNames, ", "))
}

// Options controls the appearance of a figure. The zero value is
// usable.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// Width and Height of the figure. Default 6.4in x 4.8in.
	Width, Height vg.Length

	// SizeScale is the dot area, in square points, per unit of y
	// in a Scatter. Default 0.1.
	SizeScale float64

	// BinsX and BinsY are the heatmap grid dimensions. Default 50.
	BinsX, BinsY int

	// Grid draws grid lines behind the data.
	Grid bool
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Width == 0 {
		opts.Width = 6.4 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 4.8 * vg.Inch
	}
	if opts.SizeScale == 0 {
		opts.SizeScale = 0.1
	}
	if opts.BinsX == 0 {
		opts.BinsX = 50
	}
	if opts.BinsY == 0 {
		opts.BinsY = 50
	}
	return opts
}

var errNoData = errors.New("no data to plot")

// Render draws x and y as a figure of the given kind and saves it to
// path.
func Render(x, y []float64, kind Kind, path string, opts *Options) error {
	p, err := New(x, y, kind, opts)
	if err != nil {
		return err
	}
	o := opts.withDefaults()
	if err := p.Save(o.Width, o.Height, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// New builds the figure Render would save.
func New(x, y []float64, kind Kind, opts *Options) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x has %d values but y has %d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, errNoData
	}
	o := opts.withDefaults()

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	if o.Grid {
		p.Add(plotter.NewGrid())
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X, xys[i].Y = x[i], y[i]
	}

	switch kind {
	case Scatter:
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			r := dotRadius(s.XYs[i].Y, o.SizeScale)
			if r == 0 {
				// A nil Shape draws nothing.
				return draw.GlyphStyle{}
			}
			return draw.GlyphStyle{Color: color.Black, Radius: r, Shape: draw.CircleGlyph{}}
		}
		p.Add(s)

	case Heatmap:
		g, err := newCountGrid(x, y, o.BinsX, o.BinsY)
		if err != nil {
			return nil, err
		}
		pal, err := whiteFirst(9)
		if err != nil {
			return nil, err
		}
		g.reserve(len(pal.Colors()))
		p.Add(plotter.NewHeatMap(g, pal))

	case Line:
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = color.Black
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)

	default:
		return nil, fmt.Errorf("unknown plot kind %v", kind)
	}
	return p, nil
}

// dotRadius converts a count to a dot radius such that the dot area is
// count*scale square points. Non-positive counts are not drawn.
func dotRadius(count, scale float64) vg.Length {
	area := count * scale
	if !(area > 0) {
		return 0
	}
	return vg.Points(math.Sqrt(area) / 2)
}

// whiteFirst returns a sequential ColorBrewer palette of n colors
// preceded by white. Heatmap cells without data use the white bin.
func whiteFirst(n int) (palette.Palette, error) {
	p, err := brewer.GetPalette(brewer.TypeSequential, "YlOrRd", n)
	if err != nil {
		return nil, err
	}
	return colors(append([]color.Color{color.White}, p.Colors()...)), nil
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
