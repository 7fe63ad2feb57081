// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads the delimited measurement tables written by
// the EMM benchmark harness and provides the row filters the
// extraction jobs need before aggregating.
//
// A Table keeps every cell as the exact text found in the input. Keys
// are therefore written back to derived files exactly as the harness
// printed them, and numeric parsing happens only when a column is
// used as a measurement (see Table.Floats).
package benchtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// lineCol is a hidden column recording the input line of each row so
// errors still point at the right line after rows have been filtered.
const lineCol = ".line"

// A Table is an immutable sequence of rows read from one input.
type Table struct {
	path string
	cols []string
	t    *table.Table
}

func newTable(path string, cols []string, t *table.Table) *Table {
	return &Table{path: path, cols: cols, t: t}
}

// Path returns the file name the table was read from.
func (t *Table) Path() string {
	return t.path
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Columns returns the column names of t in header order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// Has reports whether t has a column named col.
func (t *Table) Has(col string) bool {
	for _, c := range t.cols {
		if c == col {
			return true
		}
	}
	return false
}

func (t *Table) column(col string) ([]string, error) {
	if !t.Has(col) {
		return nil, &ColumnError{Path: t.path, Column: col}
	}
	if t.Len() == 0 {
		return nil, nil
	}
	return t.t.MustColumn(col).([]string), nil
}

func (t *Table) lines() []int {
	if t.Len() == 0 {
		return nil
	}
	return t.t.MustColumn(lineCol).([]int)
}

// Strings returns a copy of the cells of column col.
func (t *Table) Strings(col string) ([]string, error) {
	xs, err := t.column(col)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), xs...), nil
}

// Floats parses every cell of column col as a float64. The first cell
// that does not parse is reported as a *FormatError.
func (t *Table) Floats(col string) ([]float64, error) {
	xs, err := t.column(col)
	if err != nil {
		return nil, err
	}
	lines := t.lines()
	vs := make([]float64, len(xs))
	for i, x := range xs {
		v, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, &FormatError{Path: t.path, Line: lines[i], Column: col, Text: x}
		}
		vs[i] = v
	}
	return vs, nil
}

// SparseFloats is like Floats but skips blank cells. Raw data sets
// leave a coordinate blank when it is unknown.
func (t *Table) SparseFloats(col string) ([]float64, error) {
	xs, err := t.column(col)
	if err != nil {
		return nil, err
	}
	lines := t.lines()
	var vs []float64
	for i, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		v, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, &FormatError{Path: t.path, Line: lines[i], Column: col, Text: xs[i]}
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Grouping returns the underlying go-gg table restricted to the named
// columns, which must exist.
func (t *Table) Grouping(cols ...string) (*table.Table, error) {
	var b table.Builder
	for _, col := range cols {
		xs, err := t.column(col)
		if err != nil {
			return nil, err
		}
		if xs == nil {
			xs = []string{}
		}
		b.Add(col, xs)
	}
	return b.Done(), nil
}

// A FormatError reports a cell that should hold a number but does not.
type FormatError struct {
	Path   string
	Line   int
	Column string
	Text   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: cannot parse %q as a number", e.Path, e.Line, e.Column, e.Text)
}

// A ColumnError reports a reference to a column the table lacks.
type ColumnError struct {
	Path   string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: no column %q", e.Path, e.Column)
}
