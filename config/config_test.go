// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/run34.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.BasePath = "results"
	want.Indices = []int{34, 38}
	want.Interactive = true
	want.Columns.TimeRange = "range size"
	want.Datasets = []Dataset{{Name: "points", File: "points.txt", Delimiter: "tab", Column: 2, Accuracy: 2, XLabel: "Latitude"}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("testdata/typo.yaml"); err == nil || !strings.Contains(err.Error(), "indexes") {
		t.Errorf("got error %v, want unknown field indexes", err)
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Errorf("missing file loaded")
	}
}

func TestValidate(t *testing.T) {
	check := func(mod func(c *Config), wantErr string) {
		t.Helper()
		c := Default()
		mod(c)
		err := c.Validate()
		if wantErr == "" {
			if err != nil {
				t.Errorf("unexpected error %v", err)
			}
			return
		}
		if err == nil || !strings.Contains(err.Error(), wantErr) {
			t.Errorf("got error %v, want %q", err, wantErr)
		}
	}
	check(func(c *Config) {}, "")
	check(func(c *Config) { c.Indices = nil }, "no benchmark indices")
	check(func(c *Config) { c.Columns.Time = "" }, "column time has no name")
	check(func(c *Config) { c.Datasets[0].Delimiter = "pipes" }, "bad delimiter")
	check(func(c *Config) { c.Datasets[1].Column = -1 }, "negative column")
}

func TestPaths(t *testing.T) {
	c := Default()
	c.BasePath = "data"
	if got, want := c.Input("trapdoor", 56), filepath.Join("data", "trapdoor-56.csv"); got != want {
		t.Errorf("Input = %q, want %q", got, want)
	}
	if got, want := c.Output("search", 1, "-dataSizeVsTime-cum"), filepath.Join("data", "dataForPlots", "search-1-dataSizeVsTime-cum.csv"); got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestParseDelimiter(t *testing.T) {
	for s, want := range map[string]rune{"": ',', "comma": ',', "space": ' ', "tab": '\t', `\t`: '\t', ";": ';', "|": '|'} {
		got, err := ParseDelimiter(s)
		if err != nil || got != want {
			t.Errorf("ParseDelimiter(%q) = %q, %v; want %q", s, got, err, want)
		}
	}
	if _, err := ParseDelimiter("ab"); err == nil {
		t.Errorf("ParseDelimiter(ab) succeeded")
	}
}
