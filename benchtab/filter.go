// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"github.com/aclements/go-gg/table"
)

// FilterValid returns t without the rows whose col equals sentinel.
//
// When several harness runs append to the same file, each run writes
// its header again. Those rows carry the column name in every cell, so
// filtering on a categorical column such as "emm" against its own name
// removes them. If no row matches, FilterValid returns t itself.
func FilterValid(t *Table, col, sentinel string) (*Table, error) {
	return filter(t, col, func(v string) bool { return v != sentinel })
}

// Select returns the rows of t whose col equals value.
func Select(t *Table, col, value string) (*Table, error) {
	return filter(t, col, func(v string) bool { return v == value })
}

func filter(t *Table, col string, keep func(string) bool) (*Table, error) {
	if !t.Has(col) {
		return nil, &ColumnError{Path: t.path, Column: col}
	}
	if t.Len() == 0 {
		return t, nil
	}
	nt := table.Flatten(table.Filter(t.t, keep, col))
	if nt.Len() == t.Len() {
		return t, nil
	}
	return newTable(t.path, t.cols, nt), nil
}

// Distinct returns the distinct values of col in the order they first
// appear in t.
func Distinct(t *Table, col string) ([]string, error) {
	if !t.Has(col) {
		return nil, &ColumnError{Path: t.path, Column: col}
	}
	if t.Len() == 0 {
		return nil, nil
	}
	var vs []string
	for _, gid := range table.GroupBy(t.t, col).Tables() {
		vs = append(vs, gid.Label().(string))
	}
	return vs, nil
}

// Last returns the last distinct value of col. The harness sweeps data
// sizes in increasing order, so for a "data size" column this is the
// largest size measured. ok is false if t has no rows.
func Last(t *Table, col string) (v string, ok bool, err error) {
	vs, err := Distinct(t, col)
	if err != nil || len(vs) == 0 {
		return "", false, err
	}
	return vs[len(vs)-1], true, nil
}
