// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
)

// Common delimiters of the harness outputs and the raw data sets.
const (
	Comma = ','
	Space = ' '
	Tab   = '\t'
)

// Load reads the delimited file at path. The first record is the
// header. If path does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func Load(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, delim)
}

// Read reads a delimited table from r. name is used in error messages
// and returned by Table.Path.
func Read(r io.Reader, name string, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty table", name)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	seen := make(map[string]bool)
	for _, col := range header {
		if seen[col] || col == lineCol {
			return nil, fmt.Errorf("%s: duplicate or reserved column name %q", name, col)
		}
		seen[col] = true
	}

	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			// csv.ParseError already carries the line.
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}
	if lines == nil {
		lines = []int{}
	}

	t := table.TableFromStrings(header, rows, false)
	t = table.NewBuilder(t).Add(lineCol, lines).Done()
	return newTable(name, header, t), nil
}
