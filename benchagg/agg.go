// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg reduces benchmark tables to (key, value) series.
//
// A series is an ordered []Point. GroupMean and GroupRatio produce one
// Point per distinct key, in the order keys first appear in the input
// table, so the derived files list data sizes or range sizes in the
// order the harness swept them. WriteCSV and ReadCSV store a series as
// a headerless two-column CSV file, which is what the thesis plots
// read.
package benchagg

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/emmbench/emmplot/benchtab"
)

// Epsilon is the smallest denominator mean GroupRatio divides by.
// Smaller means produce a ratio of 0.
const Epsilon = 1e-5

// A Point is one aggregated value of a series.
type Point struct {
	// Key is the grouping value exactly as it appeared in the
	// input, for example a data size.
	Key string

	// Value is the aggregated statistic for Key.
	Value float64
}

func (p Point) String() string {
	return p.Key + "," + formatValue(p.Value)
}

// GroupMean partitions the rows of t by keyCol and returns the mean of
// valueCol for each partition.
func GroupMean(t *benchtab.Table, keyCol, valueCol string) ([]Point, error) {
	keys, means, err := groupMeans(t, keyCol, valueCol)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(keys))
	for i, k := range keys {
		pts[i] = Point{k, means[0][i]}
	}
	return pts, nil
}

// GroupRatio partitions the rows of t by keyCol and returns, for each
// partition, mean(numCol) / mean(denCol) as a percentage. If
// mean(denCol) is below Epsilon the value is 0.
func GroupRatio(t *benchtab.Table, keyCol, numCol, denCol string) ([]Point, error) {
	keys, means, err := groupMeans(t, keyCol, numCol, denCol)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(keys))
	for i, k := range keys {
		num, den := means[0][i], means[1][i]
		pts[i] = Point{Key: k}
		if den >= Epsilon {
			pts[i].Value = num / den * 100
		}
	}
	return pts, nil
}

// groupMeans returns the distinct values of keyCol in first-seen order
// and, for each of valueCols, the mean of that column per key.
func groupMeans(t *benchtab.Table, keyCol string, valueCols ...string) ([]string, [][]float64, error) {
	keys, err := t.Strings(keyCol)
	if err != nil {
		return nil, nil, err
	}
	if t.Len() == 0 {
		return nil, nil, nil
	}

	// Value columns are renamed so a value column may also be the
	// key column.
	const keyName = "key"
	var b table.Builder
	b.Add(keyName, keys)
	names := make([]string, len(valueCols))
	for i, col := range valueCols {
		vs, err := t.Floats(col)
		if err != nil {
			return nil, nil, err
		}
		names[i] = "v" + strconv.Itoa(i)
		b.Add(names[i], vs)
	}

	agg := ggstat.Agg(keyName)(ggstat.AggMean(names...)).F(b.Done())
	res := table.Flatten(agg)

	out := res.MustColumn(keyName).([]string)
	means := make([][]float64, len(names))
	for i, name := range names {
		means[i] = res.MustColumn("mean " + name).([]float64)
	}
	return out, means, nil
}

// CumulativeSum adds two series measured per key, for example the two
// rounds of an interactive scheme or the trapdoor and search phases.
// The result follows the order of b. Keys are matched as numbers when
// both parse as numbers, so "10" and "10.0" are the same key. A key of
// b that a lacks is reported as a *KeyMismatchError.
func CumulativeSum(a, b []Point) ([]Point, error) {
	byKey := make(map[string]float64, len(a))
	for _, p := range a {
		byKey[canonicalKey(p.Key)] = p.Value
	}
	out := make([]Point, 0, len(b))
	for _, p := range b {
		v, ok := byKey[canonicalKey(p.Key)]
		if !ok {
			return nil, &KeyMismatchError{Key: p.Key}
		}
		out = append(out, Point{p.Key, v + p.Value})
	}
	return out, nil
}

func canonicalKey(k string) string {
	if v, err := strconv.ParseFloat(k, 64); err == nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return k
}

// A KeyMismatchError reports a key present in one series of a
// CumulativeSum but not in the other.
type KeyMismatchError struct {
	Key string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("key %s missing from first series", e.Key)
}
