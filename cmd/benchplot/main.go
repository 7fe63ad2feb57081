// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot renders benchmark tables and raw data sets as figures.
//
// Usage:
//
//	benchplot [-kind k] [-o out.pdf] [-delim d] -x col [-y col] input.csv
//	benchplot -pairs [-o out.pdf] derived.csv
//	benchplot -corr 27.7 [-o corr.pdf]
//	benchplot -datasets [-config file.yaml] [-o dir]
//
// With a table input, -kind selects the figure. A scatter plots the
// density of column -x on a grid of 10^-accuracy; a heatmap bins the
// pairs of columns -x and -y; a line connects them in input order.
//
// -pairs plots a two-column file written by benchextract as a line.
//
// -corr plots the correction factor c/ε for ε in (0, 1].
//
// -datasets draws the density scatter of every data set of the
// configuration into <dir>/<name>.pdf.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/emmbench/emmplot/benchagg"
	"github.com/emmbench/emmplot/benchplot"
	"github.com/emmbench/emmplot/benchtab"
	"github.com/emmbench/emmplot/config"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: benchplot [options] input.csv
       benchplot -pairs [options] derived.csv
       benchplot -corr c [options]
       benchplot -datasets [options]
options:
`)
	flag.PrintDefaults()
	exit(2)
}

var (
	flagKind     = flag.String("kind", "scatter", "figure `kind`: scatter, heatmap or line")
	flagOut      = flag.String("o", "", "output `file` (directory with -datasets); the extension selects the format")
	flagDelim    = flag.String("delim", "comma", "input field `delimiter`: comma, space, tab or a character")
	flagX        = flag.String("x", "", "x `column`")
	flagY        = flag.String("y", "", "y `column`")
	flagAccuracy = flag.Int("accuracy", 1, "scatter grid step is 10^-`n`")
	flagBins     = flag.Int("bins", 50, "heatmap grid is `n` x n cells")
	flagPairs    = flag.Bool("pairs", false, "input is a derived two-column file")
	flagCorr     = flag.Float64("corr", 0, "plot the correction factor `c`/ε")
	flagDatasets = flag.Bool("datasets", false, "plot the density of every configured data set")
	flagConfig   = flag.String("config", "", "read data sets from YAML `file`")
	flagTitle    = flag.String("title", "", "figure `title`")
	flagXLabel   = flag.String("xlabel", "", "x axis `label` (default the x column)")
	flagYLabel   = flag.String("ylabel", "", "y axis `label` (default the y column)")
	flagVerbose  = flag.Bool("v", false, "print the mean of each plotted data set")
)

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	var err error
	switch {
	case *flagCorr != 0:
		if flag.NArg() != 0 {
			flag.Usage()
		}
		err = plotCorr(*flagCorr, output("corr.pdf"))
	case *flagDatasets:
		if flag.NArg() != 0 {
			flag.Usage()
		}
		err = plotDatasets(output("."))
	case *flagPairs:
		if flag.NArg() != 1 {
			flag.Usage()
		}
		err = plotPairs(flag.Arg(0))
	default:
		if flag.NArg() != 1 || *flagX == "" {
			flag.Usage()
		}
		err = plotTable(flag.Arg(0))
	}
	if err != nil {
		log.Fatal(err)
	}
}

func output(def string) string {
	if *flagOut != "" {
		return *flagOut
	}
	return def
}

// figure returns the output path for input: -o, or input with its
// extension replaced by .pdf.
func figure(input string) string {
	return output(strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf")
}

func options(xlabel, ylabel string) *benchplot.Options {
	o := &benchplot.Options{
		Title:  *flagTitle,
		XLabel: xlabel,
		YLabel: ylabel,
		BinsX:  *flagBins,
		BinsY:  *flagBins,
	}
	if *flagXLabel != "" {
		o.XLabel = *flagXLabel
	}
	if *flagYLabel != "" {
		o.YLabel = *flagYLabel
	}
	return o
}

func plotCorr(c float64, path string) error {
	x, y := benchplot.Reciprocal(c, 100, 10)
	o := options("ε", "ℓ*(λ)")
	o.Grid = true
	return benchplot.Render(x, y, benchplot.Line, path, o)
}

func plotPairs(input string) error {
	pts, err := benchagg.ReadFile(input)
	if err != nil {
		return err
	}
	kind := benchplot.Line
	if isSet("kind") {
		if kind, err = benchplot.ParseKind(*flagKind); err != nil {
			return err
		}
	}
	x, y, err := pairs(pts)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	return benchplot.Render(x, y, kind, figure(input), options("", ""))
}

// pairs splits a series into numeric keys and values.
func pairs(pts []benchagg.Point) (x, y []float64, err error) {
	for _, p := range pts {
		k, err := strconv.ParseFloat(p.Key, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("key %q is not a number", p.Key)
		}
		x = append(x, k)
		y = append(y, p.Value)
	}
	return x, y, nil
}

func plotTable(input string) error {
	kind, err := benchplot.ParseKind(*flagKind)
	if err != nil {
		return err
	}
	delim, err := config.ParseDelimiter(*flagDelim)
	if err != nil {
		return err
	}
	t, err := benchtab.Load(input, delim)
	if err != nil {
		return err
	}
	xs, err := t.SparseFloats(*flagX)
	if err != nil {
		return err
	}
	if kind == benchplot.Scatter {
		return density(xs, *flagAccuracy, figure(input), options(*flagX, "Number of data points"))
	}
	if *flagY == "" {
		return fmt.Errorf("-kind %v needs a -y column", kind)
	}
	xs, err = t.Floats(*flagX)
	if err != nil {
		return err
	}
	ys, err := t.Floats(*flagY)
	if err != nil {
		return err
	}
	return benchplot.Render(xs, ys, kind, figure(input), options(*flagX, *flagY))
}

func plotDatasets(dir string) error {
	c := config.Default()
	if *flagConfig != "" {
		var err error
		if c, err = config.Load(*flagConfig); err != nil {
			return err
		}
	}
	for _, d := range c.Datasets {
		delim, err := config.ParseDelimiter(d.Delimiter)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		t, err := benchtab.Load(c.DatasetPath(d), delim)
		if err != nil {
			return err
		}
		cols := t.Columns()
		if d.Column >= len(cols) {
			return fmt.Errorf("dataset %s: %s has %d columns, want column %d", d.Name, t.Path(), len(cols), d.Column)
		}
		xs, err := t.SparseFloats(cols[d.Column])
		if err != nil {
			return err
		}
		if *flagVerbose {
			log.Printf("%s: %d points, mean %s %g", d.Name, len(xs), cols[d.Column], stats.Mean(xs))
		}
		path := filepath.Join(dir, d.Name+".pdf")
		if err := density(xs, d.Accuracy, path, options(d.XLabel, "Number of data points")); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Name, err)
		}
	}
	return nil
}

func density(xs []float64, accuracy int, path string, o *benchplot.Options) error {
	pos, counts := benchplot.Histogram(xs, accuracy)
	return benchplot.Render(pos, counts, benchplot.Scatter, path, o)
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) { set = set || f.Name == name })
	return set
}
