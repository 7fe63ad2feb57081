// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract derives the plotting tables of the thesis from the
// raw benchmark results.
//
// Each job reads harness output files named by a config.Config,
// aggregates them with package benchagg and writes two-column CSV
// files to the configured subfolder. Inputs that do not exist are
// reported through Extractor.Warn and skipped, so a job can be run
// over a list of indices of which only some were benchmarked.
package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/emmbench/emmplot/benchagg"
	"github.com/emmbench/emmplot/benchtab"
	"github.com/emmbench/emmplot/config"
)

// An Extractor runs extraction jobs over the runs of a Config.
type Extractor struct {
	Config *config.Config

	// Warn, if non-nil, is called for every skipped input.
	Warn func(format string, args ...interface{})
}

// An Output describes a derived file written by a job.
type Output struct {
	Job    string
	Path   string
	Points int
}

type job struct {
	name string
	run  func(*Extractor) ([]Output, error)
}

// Jobs run in this order. Cumulate and Total read files written by
// TimeVsDataSize.
var jobs = []job{
	{"time", (*Extractor).TimeVsDataSize},
	{"overhead", (*Extractor).IndexOverhead},
	{"padding", (*Extractor).ResponsePadding},
	{"range", (*Extractor).TimeVsRangeSize},
	{"cumulate", (*Extractor).Cumulate},
	{"total", (*Extractor).Total},
}

// Jobs returns the names accepted by Run, in execution order.
func Jobs() []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.name
	}
	return names
}

// Run runs the named jobs, or all jobs if names is empty. Jobs always
// run in the order of Jobs regardless of the order of names.
func (e *Extractor) Run(names ...string) ([]Output, error) {
	want := make(map[string]bool)
	for _, name := range names {
		found := false
		for _, j := range jobs {
			found = found || j.name == name
		}
		if !found {
			return nil, fmt.Errorf("unknown job %q (want one of %s)", name, strings.Join(Jobs(), ", "))
		}
		want[name] = true
	}

	var outs []Output
	for _, j := range jobs {
		if len(want) > 0 && !want[j.name] {
			continue
		}
		o, err := j.run(e)
		outs = append(outs, o...)
		if err != nil {
			return outs, fmt.Errorf("%s: %w", j.name, err)
		}
	}
	return outs, nil
}

func (e *Extractor) warn(format string, args ...interface{}) {
	if e.Warn != nil {
		e.Warn(format, args...)
	}
}

// load reads a harness table and drops repeated header rows. A missing
// file is reported and yields a nil table.
func (e *Extractor) load(path string) (*benchtab.Table, error) {
	t, err := benchtab.Load(path, benchtab.Comma)
	if errors.Is(err, fs.ErrNotExist) {
		e.warn("skipping %s: file does not exist", path)
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	emm := e.Config.Columns.EMM
	if !t.Has(emm) {
		return t, nil
	}
	return benchtab.FilterValid(t, emm, emm)
}

// readSeries reads a derived file. A missing file is reported and
// yields nil, false.
func (e *Extractor) readSeries(path string) ([]benchagg.Point, bool, error) {
	pts, err := benchagg.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.warn("skipping %s: file does not exist", path)
		return nil, false, nil
	}
	return pts, err == nil, err
}

func write(job, path string, pts []benchagg.Point) (Output, error) {
	if err := benchagg.WriteFile(path, pts); err != nil {
		return Output{}, err
	}
	return Output{Job: job, Path: path, Points: len(pts)}, nil
}

// atLastDataSize restricts t to the largest data size of the sweep.
func (e *Extractor) atLastDataSize(t *benchtab.Table) (*benchtab.Table, error) {
	col := e.Config.Columns.DataSize
	size, ok, err := benchtab.Last(t, col)
	if err != nil || !ok {
		return nil, err
	}
	return benchtab.Select(t, col, size)
}
