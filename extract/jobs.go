// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"

	"github.com/emmbench/emmplot/benchagg"
)

// Two-round schemes write their second round to <method>2 files.
var roundMethods = []string{"trapdoor", "search"}

// TimeVsDataSize writes the mean time per data size of every method:
// <method>-<i>.csv -> <method>-<i>-dataSizeVsTime.csv. Interactive
// runs also aggregate the second rounds trapdoor2 and search2.
func (e *Extractor) TimeVsDataSize() ([]Output, error) {
	c := e.Config
	var outs []Output
	for _, method := range e.methods() {
		for _, index := range c.Indices {
			t, err := e.load(c.Input(method, index))
			if err != nil {
				return outs, err
			} else if t == nil {
				continue
			}
			pts, err := benchagg.GroupMean(t, c.Columns.DataSize, c.Columns.Time)
			if err != nil {
				return outs, err
			}
			o, err := write("time", c.Output(method, index, "-dataSizeVsTime"), pts)
			if err != nil {
				return outs, err
			}
			outs = append(outs, o)
		}
	}
	return outs, nil
}

func (e *Extractor) methods() []string {
	methods := append([]string(nil), e.Config.Methods...)
	if !e.Config.Interactive {
		return methods
	}
	for _, m := range roundMethods {
		m += "2"
		found := false
		for _, have := range methods {
			found = found || have == m
		}
		if !found {
			methods = append(methods, m)
		}
	}
	return methods
}

// IndexOverhead writes the mean size of the encrypted index and the
// share of dummy values in it per data size.
func (e *Extractor) IndexOverhead() ([]Output, error) {
	c := e.Config
	var outs []Output
	for _, index := range c.Indices {
		t, err := e.load(c.Input("overheadEncryptedIndex", index))
		if err != nil {
			return outs, err
		} else if t == nil {
			continue
		}
		size, err := benchagg.GroupMean(t, c.Columns.DataSize, c.Columns.IndexSize)
		if err != nil {
			return outs, err
		}
		padding, err := benchagg.GroupRatio(t, c.Columns.DataSize, c.Columns.Dummies, c.Columns.IndexSize)
		if err != nil {
			return outs, err
		}
		o1, err := write("overhead", c.Output("dataSizeVsSizeIndexInBytes", index, ""), size)
		if err != nil {
			return outs, err
		}
		o2, err := write("overhead", c.Output("dataSizeVsPercentagePaddingInBytes", index, ""), padding)
		if err != nil {
			return outs, err
		}
		outs = append(outs, o1, o2)
	}
	return outs, nil
}

// ResponsePadding writes, for the largest data size of each run, the
// mean response size and the share of dummy values in responses per
// range size.
func (e *Extractor) ResponsePadding() ([]Output, error) {
	c := e.Config
	name := "searchPadding"
	if c.Interactive {
		name = "searchPadding2"
	}
	var outs []Output
	for _, index := range c.Indices {
		in := c.Input(name, index)
		t, err := e.load(in)
		if err != nil {
			return outs, err
		} else if t == nil {
			continue
		}
		t, err = e.atLastDataSize(t)
		if err != nil {
			return outs, err
		} else if t == nil {
			e.warn("skipping %s: no measurements", in)
			continue
		}
		size, err := benchagg.GroupMean(t, c.Columns.RangeSize, c.Columns.ResponseSize)
		if err != nil {
			return outs, err
		}
		padding, err := benchagg.GroupRatio(t, c.Columns.RangeSize, c.Columns.Dummies, c.Columns.ResponseSize)
		if err != nil {
			return outs, err
		}
		o1, err := write("padding", c.Output("responseSize", index, ""), size)
		if err != nil {
			return outs, err
		}
		o2, err := write("padding", c.Output("responsePercentagePaddingInEntries", index, ""), padding)
		if err != nil {
			return outs, err
		}
		outs = append(outs, o1, o2)
	}
	return outs, nil
}

// TimeVsRangeSize writes, for the largest data size of each run, the
// mean trapdoor and search time per range size. The range size is
// read from Columns.TimeRange.
func (e *Extractor) TimeVsRangeSize() ([]Output, error) {
	c := e.Config
	var outs []Output
	for _, method := range roundMethods {
		for _, index := range c.Indices {
			in := c.Input(method, index)
			t, err := e.load(in)
			if err != nil {
				return outs, err
			} else if t == nil {
				continue
			}
			t, err = e.atLastDataSize(t)
			if err != nil {
				return outs, err
			} else if t == nil {
				e.warn("skipping %s: no measurements", in)
				continue
			}
			pts, err := benchagg.GroupMean(t, c.Columns.TimeRange, c.Columns.Time)
			if err != nil {
				return outs, err
			}
			o, err := write("range", c.Output(method, index, "-rangeSizeVsTime"), pts)
			if err != nil {
				return outs, err
			}
			outs = append(outs, o)
		}
	}
	return outs, nil
}

// Cumulate adds the two rounds of the interactive schemes:
// <method>-<i>-dataSizeVsTime.csv + <method>2-<i>-dataSizeVsTime.csv
// -> <method>-<i>-dataSizeVsTime-cum.csv.
func (e *Extractor) Cumulate() ([]Output, error) {
	c := e.Config
	var outs []Output
	for _, method := range roundMethods {
		for _, index := range c.Indices {
			o, err := e.sum("cumulate",
				c.Output(method, index, "-dataSizeVsTime"),
				c.Output(method+"2", index, "-dataSizeVsTime"),
				c.Output(method, index, "-dataSizeVsTime-cum"))
			if err != nil {
				return outs, err
			}
			outs = append(outs, o...)
		}
	}
	return outs, nil
}

// Total adds trapdoor and search time per data size:
// -> search-<i>-dataSizeVsTime-total.csv.
func (e *Extractor) Total() ([]Output, error) {
	c := e.Config
	var outs []Output
	for _, index := range c.Indices {
		o, err := e.sum("total",
			c.Output("trapdoor", index, "-dataSizeVsTime"),
			c.Output("search", index, "-dataSizeVsTime"),
			c.Output("search", index, "-dataSizeVsTime-total"))
		if err != nil {
			return outs, err
		}
		outs = append(outs, o...)
	}
	return outs, nil
}

func (e *Extractor) sum(job, pathA, pathB, out string) ([]Output, error) {
	a, ok, err := e.readSeries(pathA)
	if err != nil || !ok {
		return nil, err
	}
	b, ok, err := e.readSeries(pathB)
	if err != nil || !ok {
		return nil, err
	}
	pts, err := benchagg.CumulativeSum(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", pathA, pathB, err)
	}
	o, err := write(job, out, pts)
	if err != nil {
		return nil, err
	}
	return []Output{o}, nil
}
