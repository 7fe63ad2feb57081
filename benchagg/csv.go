// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/emmbench/emmplot/benchtab"
)

// formatValue prints v with the fewest digits that parse back to v,
// never in exponent form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes pts to w as headerless key,value rows.
func WriteCSV(w io.Writer, pts []Point) error {
	cw := csv.NewWriter(w)
	for _, p := range pts {
		if err := cw.Write([]string{p.Key, formatValue(p.Value)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes pts to the file at path, creating its directory if
// necessary.
func WriteFile(path string, pts []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, pts); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV reads a series written by WriteCSV. name is used in error
// messages.
func ReadCSV(r io.Reader, name string) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	var pts []Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			line, _ := cr.FieldPos(1)
			return nil, &benchtab.FormatError{Path: name, Line: line, Column: "value", Text: rec[1]}
		}
		pts = append(pts, Point{rec[0], v})
	}
	return pts, nil
}

// ReadFile reads the series stored at path.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}
