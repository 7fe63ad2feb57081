// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out summaries as plain-text columns.
package texttab

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table collects rows of cells and aligns them into columns.
//
// Row returns the Table so a header and its rows can be chained.
type Table struct {
	rows  [][]string
	right []bool
}

// Row appends a row of cells.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AlignRight right-aligns column col, counting from 0. Columns are
// left-aligned by default.
func (t *Table) AlignRight(col int) *Table {
	for len(t.right) <= col {
		t.right = append(t.right, false)
	}
	t.right[col] = true
	return t
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	var ws []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i == len(ws) {
				ws = append(ws, 0)
			}
			if n := utf8.RuneCountInString(cell); n > ws[i] {
				ws[i] = n
			}
		}
	}
	return ws
}

// Format writes t to w, separating columns by two spaces. Lines carry
// no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	ws := t.widths()
	bw := bufio.NewWriter(w)
	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			pad := ws[i] - utf8.RuneCountInString(cell)
			if i < len(t.right) && t.right[i] {
				fmt.Fprintf(&line, "%*s%s", pad, "", cell)
			} else {
				fmt.Fprintf(&line, "%s%*s", cell, pad, "")
			}
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
