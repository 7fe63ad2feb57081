// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchextract derives the plotting tables of the thesis from the
// CSV files written by the EMM benchmark harness.
//
// Usage:
//
//	benchextract [-config file.yaml] [-base dir] [-indices 1,2] [-jobs time,total] [-v]
//
// For every run index i, benchextract reads <name>-<i>.csv from the
// base directory and writes headerless two-column CSV files to its
// subfolder:
//
//	time      <method>-<i>-dataSizeVsTime.csv
//	overhead  dataSizeVsSizeIndexInBytes-<i>.csv, dataSizeVsPercentagePaddingInBytes-<i>.csv
//	padding   responseSize-<i>.csv, responsePercentagePaddingInEntries-<i>.csv
//	range     <method>-<i>-rangeSizeVsTime.csv
//	cumulate  <method>-<i>-dataSizeVsTime-cum.csv
//	total     search-<i>-dataSizeVsTime-total.csv
//
// Missing inputs are reported and skipped.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/emmbench/emmplot/config"
	"github.com/emmbench/emmplot/extract"
	"github.com/emmbench/emmplot/internal/texttab"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: benchextract [options]\noptions:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagConfig      = flag.String("config", "", "read settings from YAML `file`")
	flagBase        = flag.String("base", "", "harness output `dir` (overrides config)")
	flagSubfolder   = flag.String("subfolder", "", "output `dir` relative to the base directory (overrides config)")
	flagIndices     = flag.String("indices", "", "comma-separated run `indices` (overrides config)")
	flagInteractive = flag.Bool("interactive", false, "read second-round padding files (overrides config)")
	flagJobs        = flag.String("jobs", "", "comma-separated `jobs` to run: "+strings.Join(extract.Jobs(), ", ")+" (default all)")
	flagVerbose     = flag.Bool("v", false, "print the files written")
)

func main() {
	log.SetPrefix("benchextract: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	c := config.Default()
	if *flagConfig != "" {
		var err error
		if c, err = config.Load(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := override(c, set); err != nil {
		log.Fatal(err)
	}

	e := &extract.Extractor{
		Config: c,
		Warn: func(format string, args ...interface{}) {
			log.Printf(format, args...)
		},
	}
	outs, err := e.Run(split(*flagJobs)...)
	if *flagVerbose {
		summary(outs)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// override applies the flags named in set to c.
func override(c *config.Config, set map[string]bool) error {
	if set["base"] {
		c.BasePath = *flagBase
	}
	if set["subfolder"] {
		c.Subfolder = *flagSubfolder
	}
	if set["interactive"] {
		c.Interactive = *flagInteractive
	}
	if set["indices"] {
		indices, err := parseIndices(*flagIndices)
		if err != nil {
			return err
		}
		c.Indices = indices
	}
	return c.Validate()
}

func parseIndices(s string) ([]int, error) {
	var indices []int
	for _, f := range split(s) {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad run index %q", f)
		}
		indices = append(indices, i)
	}
	return indices, nil
}

func split(s string) []string {
	var fs []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fs = append(fs, f)
		}
	}
	return fs
}

func summary(outs []extract.Output) {
	var tab texttab.Table
	tab.Row("job", "file", "points").AlignRight(2)
	for _, o := range outs {
		tab.Row(o.Job, o.Path, strconv.Itoa(o.Points))
	}
	if err := tab.Format(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
