// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"math"
)

// Histogram counts xs on a grid with step 10^-accuracy that starts one
// unit below the smallest value and extends one unit past the largest.
// It returns the grid positions and the count at each position. NaN
// values are ignored. Histogram(xs) fed to a Scatter draws the density
// of a data set along one coordinate.
func Histogram(xs []float64, accuracy int) (pos, counts []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	if lo > hi {
		return nil, nil
	}
	lo--

	scale := math.Pow(10, float64(accuracy))
	n := int(math.Round((hi - lo + 1) * scale))
	counts = make([]float64, n)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		i := int(math.Round((x - lo) * scale))
		if i >= n {
			i = n - 1
		}
		counts[i]++
	}
	pos = make([]float64, n)
	for i := range pos {
		pos[i] = lo + float64(i)/scale
	}
	return pos, counts
}

// Reciprocal samples c/x for n evenly spaced x in [0, 1], dropping the
// first skip samples (which include x = 0).
func Reciprocal(c float64, n, skip int) (x, y []float64) {
	if skip < 1 {
		skip = 1
	}
	for i := skip; i < n; i++ {
		xi := float64(i) / float64(n-1)
		x = append(x, xi)
		y = append(y, c/xi)
	}
	return x, y
}

// countGrid is a 2D histogram of (x, y) pairs. It implements
// plotter.GridXYZ.
type countGrid struct {
	cols, rows int
	x0, dx     float64
	y0, dy     float64
	counts     []float64 // column-major
	max        float64

	// offset is added to every non-empty cell so that the first
	// palette color is used only by empty cells.
	offset float64
}

func newCountGrid(xs, ys []float64, cols, rows int) (*countGrid, error) {
	g := &countGrid{cols: cols, rows: rows, counts: make([]float64, cols*rows)}
	var xlo, xhi, ylo, yhi float64
	xlo, xhi = bounds(xs)
	ylo, yhi = bounds(ys)
	if math.IsInf(xlo, 0) || math.IsInf(ylo, 0) {
		return nil, errNoData
	}
	g.x0, g.dx = xlo, span(xlo, xhi)/float64(cols)
	g.y0, g.dy = ylo, span(ylo, yhi)/float64(rows)
	if xhi == xlo {
		g.x0 -= 0.5
	}
	if yhi == ylo {
		g.y0 -= 0.5
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		c := bin(xs[i], g.x0, g.dx, cols)
		r := bin(ys[i], g.y0, g.dy, rows)
		g.counts[c*rows+r]++
		g.max = math.Max(g.max, g.counts[c*rows+r])
	}
	return g, nil
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if !math.IsNaN(x) {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	return lo, hi
}

func span(lo, hi float64) float64 {
	if hi == lo {
		return 1
	}
	return hi - lo
}

func bin(v, start, width float64, n int) int {
	i := int((v - start) / width)
	if i >= n {
		i = n - 1
	}
	return i
}

// reserve shifts non-empty cells by one palette step for a palette of
// n colors. With Min 0, empty cells then map to color 0 and every
// non-empty cell maps to colors 1 through n-1.
func (g *countGrid) reserve(n int) {
	if n > 2 {
		g.offset = g.max / float64(n-2)
	}
}

func (g *countGrid) Dims() (c, r int) { return g.cols, g.rows }

func (g *countGrid) Z(c, r int) float64 {
	v := g.counts[c*g.rows+r]
	if v == 0 {
		return 0
	}
	return v + g.offset
}

func (g *countGrid) X(c int) float64 { return g.x0 + (float64(c)+0.5)*g.dx }
func (g *countGrid) Y(r int) float64 { return g.y0 + (float64(r)+0.5)*g.dy }

// Min and Max fix the heatmap's dynamic range; see plotter.NewHeatMap.
func (g *countGrid) Min() float64 { return 0 }
func (g *countGrid) Max() float64 { return g.max + g.offset }
