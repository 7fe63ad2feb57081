// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config describes where benchmark results live, which runs to
// process and how their columns are named.
//
// A Config is normally read from a YAML file by Load. Fields the file
// leaves out keep the values of Default, which match the layout the
// benchmark harness writes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the set of parameters of an extraction run.
type Config struct {
	// BasePath is the directory holding the harness output files.
	BasePath string `yaml:"basePath"`

	// Subfolder, relative to BasePath, receives the derived files.
	Subfolder string `yaml:"subfolder"`

	// Indices identify the benchmark runs (the "k" of the harness)
	// to process. Input files are named <name>-<index>.csv.
	Indices []int `yaml:"indices"`

	// Interactive selects the second-round padding files of the
	// two-round schemes (searchPadding2-<index>.csv).
	Interactive bool `yaml:"interactive"`

	// Methods are the timed phases aggregated by data size.
	Methods []string `yaml:"methods"`

	// Columns names the harness columns.
	Columns Columns `yaml:"columns"`

	// DataPath is the directory holding the raw data sets.
	DataPath string `yaml:"dataPath"`

	// Datasets are the raw data sets whose distributions are plotted.
	Datasets []Dataset `yaml:"datasets"`
}

// Columns maps the roles used by the extraction jobs to column names.
type Columns struct {
	EMM          string `yaml:"emm"`
	DataSize     string `yaml:"dataSize"`
	Time         string `yaml:"time"`
	RangeSize    string `yaml:"rangeSize"`
	IndexSize    string `yaml:"indexSize"`
	Dummies      string `yaml:"dummies"`
	ResponseSize string `yaml:"responseSize"`

	// TimeRange is the column of the trapdoor and search tables
	// read as the range size. The harness prints these tables with
	// the "from" and "range size" labels swapped, so this is "from"
	// by default.
	TimeRange string `yaml:"timeRange"`
}

// A Dataset is a raw input data set of the benchmarks.
type Dataset struct {
	Name      string `yaml:"name"`
	File      string `yaml:"file"`
	Delimiter string `yaml:"delimiter"`

	// Column is the 0-based index of the plotted column.
	Column int `yaml:"column"`

	// Accuracy is the number of decimal digits of the histogram
	// grid.
	Accuracy int `yaml:"accuracy"`

	XLabel string `yaml:"xlabel"`
}

// Default returns the configuration matching the harness defaults.
func Default() *Config {
	return &Config{
		BasePath:  "src/test/resources/data2",
		Subfolder: "dataForPlots",
		Indices:   []int{0},
		Methods:   []string{"buildIndex", "trapdoor", "search"},
		Columns: Columns{
			EMM:          "emm",
			DataSize:     "data size",
			Time:         "time [ns]",
			RangeSize:    "range size",
			IndexSize:    "size encrypted index",
			Dummies:      "number of dummy values",
			ResponseSize: "size of response",
			TimeRange:    "from",
		},
		DataPath: "src/main/resources/data",
		Datasets: []Dataset{
			{Name: "data", File: "data.csv", Delimiter: "space", Column: 1, Accuracy: 1, XLabel: "Longitude"},
			{Name: "VDS_MS_310809_27_0210", File: "VDS_MS_310809_27_0210.csv", Delimiter: "comma", Column: 4, Accuracy: 1, XLabel: "Longitude"},
			{Name: "Gowalla_totalCheckins", File: "Gowalla_totalCheckins.txt", Delimiter: "tab", Column: 3, Accuracy: 3, XLabel: "Longitude"},
		},
	}
}

// Load reads a YAML configuration file. Settings missing from the file
// take their Default values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first inconsistent setting of c.
func (c *Config) Validate() error {
	if len(c.Indices) == 0 {
		return errors.New("no benchmark indices")
	}
	cols := []struct{ role, name string }{
		{"emm", c.Columns.EMM},
		{"dataSize", c.Columns.DataSize},
		{"time", c.Columns.Time},
		{"rangeSize", c.Columns.RangeSize},
		{"indexSize", c.Columns.IndexSize},
		{"dummies", c.Columns.Dummies},
		{"responseSize", c.Columns.ResponseSize},
		{"timeRange", c.Columns.TimeRange},
	}
	for _, col := range cols {
		if col.name == "" {
			return fmt.Errorf("column %s has no name", col.role)
		}
	}
	for _, d := range c.Datasets {
		if _, err := ParseDelimiter(d.Delimiter); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		if d.Column < 0 {
			return fmt.Errorf("dataset %s: negative column %d", d.Name, d.Column)
		}
	}
	return nil
}

// Input returns the path of the harness output <name>-<index>.csv.
func (c *Config) Input(name string, index int) string {
	return filepath.Join(c.BasePath, name+"-"+strconv.Itoa(index)+".csv")
}

// Output returns the path of the derived file <name>-<index><suffix>.csv.
func (c *Config) Output(name string, index int, suffix string) string {
	return filepath.Join(c.BasePath, c.Subfolder, name+"-"+strconv.Itoa(index)+suffix+".csv")
}

// DatasetPath returns the path of the raw data set d.
func (c *Config) DatasetPath(d Dataset) string {
	return filepath.Join(c.DataPath, d.File)
}

// ParseDelimiter converts a delimiter setting to the separator rune.
// It accepts the names comma, space and tab, or a single character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "", "comma":
		return ',', nil
	case "space":
		return ' ', nil
	case "tab", `\t`:
		return '\t', nil
	case "semicolon":
		return ';', nil
	}
	if r := []rune(s); len(r) == 1 {
		return r[0], nil
	}
	return 0, fmt.Errorf("bad delimiter %q", s)
}
