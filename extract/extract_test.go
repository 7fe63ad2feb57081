// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emmbench/emmplot/benchtab"
	"github.com/emmbench/emmplot/config"
)

const header = "emm,mode,data size,from,range size,time [ns]\n"

var harness = map[string]string{
	"buildIndex-1.csv": header +
		"basic,build,10,-1,-1,100\n" +
		"basic,build,10,-1,-1,200\n" +
		header +
		"basic,build,20,-1,-1,300\n",
	"trapdoor-1.csv": header +
		"basic,trapdoor,10,2,0,10\n" +
		"basic,trapdoor,10,4,0,30\n" +
		"basic,trapdoor,20,2,0,40\n" +
		"basic,trapdoor,20,4,0,60\n",
	"search-1.csv": header +
		"basic,search,10,2,0,5\n" +
		"basic,search,10,4,0,15\n" +
		"basic,search,20,2,0,7\n" +
		"basic,search,20,4,0,9\n",
	"overheadEncryptedIndex-1.csv": "emm,mode,data size,size encrypted index,number of dummy values\n" +
		"basic,overhead,10,100,25\n" +
		"basic,overhead,10,300,75\n" +
		"basic,overhead,20,400,0\n",
	"searchPadding-1.csv": "emm,mode,data size,range size,size of response,number of dummy values\n" +
		"basic,padding,10,1,4,2\n" +
		"basic,padding,20,1,8,2\n" +
		"basic,padding,20,1,8,6\n" +
		"emm,mode,data size,range size,size of response,number of dummy values\n" +
		"basic,padding,20,2,0,0\n",
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o666); err != nil {
			t.Fatal(err)
		}
	}
}

func newExtractor(t *testing.T, files map[string]string) (*Extractor, *[]string) {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, files)
	c := config.Default()
	c.BasePath = dir
	c.Indices = []int{1}
	var warnings []string
	e := &Extractor{
		Config: c,
		Warn: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}
	return e, &warnings
}

func checkFile(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Error(err)
		return
	}
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("%s: (-want +got)\n%s", filepath.Base(path), diff)
	}
}

func TestRunAll(t *testing.T) {
	e, warnings := newExtractor(t, harness)
	e.Config.Indices = []int{1, 2}
	outs, err := e.Run()
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(e.Config.BasePath, e.Config.Subfolder)
	var got []string
	for _, o := range outs {
		got = append(got, o.Job+" "+strings.TrimPrefix(o.Path, out+string(filepath.Separator)))
	}
	want := []string{
		"time buildIndex-1-dataSizeVsTime.csv",
		"time trapdoor-1-dataSizeVsTime.csv",
		"time search-1-dataSizeVsTime.csv",
		"overhead dataSizeVsSizeIndexInBytes-1.csv",
		"overhead dataSizeVsPercentagePaddingInBytes-1.csv",
		"padding responseSize-1.csv",
		"padding responsePercentagePaddingInEntries-1.csv",
		"range trapdoor-1-rangeSizeVsTime.csv",
		"range search-1-rangeSizeVsTime.csv",
		"total search-1-dataSizeVsTime-total.csv",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outputs (-want +got)\n%s", diff)
	}

	path := func(name string) string { return filepath.Join(out, name) }
	checkFile(t, path("buildIndex-1-dataSizeVsTime.csv"), "10,150\n20,300\n")
	checkFile(t, path("trapdoor-1-dataSizeVsTime.csv"), "10,20\n20,50\n")
	checkFile(t, path("search-1-dataSizeVsTime.csv"), "10,10\n20,8\n")
	checkFile(t, path("dataSizeVsSizeIndexInBytes-1.csv"), "10,200\n20,400\n")
	checkFile(t, path("dataSizeVsPercentagePaddingInBytes-1.csv"), "10,25\n20,0\n")
	checkFile(t, path("responseSize-1.csv"), "1,8\n2,0\n")
	checkFile(t, path("responsePercentagePaddingInEntries-1.csv"), "1,50\n2,0\n")
	checkFile(t, path("trapdoor-1-rangeSizeVsTime.csv"), "2,40\n4,60\n")
	checkFile(t, path("search-1-rangeSizeVsTime.csv"), "2,7\n4,9\n")
	checkFile(t, path("search-1-dataSizeVsTime-total.csv"), "10,30\n20,58\n")

	// Run 2 was never benchmarked and the run is not interactive.
	for _, w := range *warnings {
		if !strings.Contains(w, "-2") && !strings.Contains(w, "2-1-dataSizeVsTime.csv") {
			t.Errorf("unexpected warning %q", w)
		}
	}
	missing := filepath.Join(e.Config.BasePath, "buildIndex-2.csv")
	found := false
	for _, w := range *warnings {
		found = found || strings.Contains(w, missing)
	}
	if !found {
		t.Errorf("no warning about %s in %q", missing, *warnings)
	}
}

func TestInteractive(t *testing.T) {
	files := map[string]string{
		"trapdoor-1.csv": harness["trapdoor-1.csv"],
		"search-1.csv":   harness["search-1.csv"],
		"trapdoor2-1.csv": header +
			"basic,trapdoor2,10,2,0,1\n" +
			"basic,trapdoor2,20,2,0,2\n",
	}
	e, warnings := newExtractor(t, files)
	e.Config.Interactive = true

	outs, err := e.Run("cumulate", "time")
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 4 {
		t.Fatalf("got %d outputs, want 4: %v", len(outs), outs)
	}
	last := outs[len(outs)-1]
	if last.Job != "cumulate" || last.Points != 2 {
		t.Errorf("last output is %+v, want 2 cumulated points", last)
	}
	checkFile(t, e.Config.Output("trapdoor2", 1, "-dataSizeVsTime"), "10,1\n20,2\n")
	checkFile(t, e.Config.Output("trapdoor", 1, "-dataSizeVsTime-cum"), "10,21\n20,52\n")
	if _, err := os.Stat(e.Config.Output("search", 1, "-dataSizeVsTime-cum")); err == nil {
		t.Errorf("search cumulated without a second round")
	}
	if len(*warnings) == 0 {
		t.Errorf("missing second search round not reported")
	}
}

func TestInteractivePadding(t *testing.T) {
	e, _ := newExtractor(t, map[string]string{
		"searchPadding2-1.csv": harness["searchPadding-1.csv"],
	})
	e.Config.Interactive = true
	outs, err := e.ResponsePadding()
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 2 {
		t.Fatalf("got %d outputs, want 2", len(outs))
	}
	checkFile(t, e.Config.Output("responseSize", 1, ""), "1,8\n2,0\n")
}

func TestTimeRangeColumn(t *testing.T) {
	e, _ := newExtractor(t, harness)
	e.Config.Columns.TimeRange = "range size"
	if _, err := e.TimeVsRangeSize(); err != nil {
		t.Fatal(err)
	}
	checkFile(t, e.Config.Output("trapdoor", 1, "-rangeSizeVsTime"), "0,50\n")
}

func TestErrors(t *testing.T) {
	e, _ := newExtractor(t, harness)
	if _, err := e.Run("time", "plot"); err == nil || !strings.Contains(err.Error(), `"plot"`) {
		t.Errorf("unknown job: got %v", err)
	}

	e, _ = newExtractor(t, map[string]string{
		"search-1.csv": header + "basic,search,10,2,0,fast\n",
	})
	_, err := e.Run("time")
	var fe *benchtab.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *benchtab.FormatError", err)
	}
	if fe.Line != 2 || fe.Text != "fast" {
		t.Errorf("got %+v, want line 2 text fast", fe)
	}

	e, _ = newExtractor(t, map[string]string{
		"trapdoor-1.csv": harness["trapdoor-1.csv"],
		"search-1.csv":   harness["search-1.csv"] + "basic,search,30,2,0,1\n",
	})
	if _, err := e.Run("time", "total"); err == nil || !strings.Contains(err.Error(), "key 30") {
		t.Errorf("mismatched keys: got %v", err)
	}
}

func TestJobs(t *testing.T) {
	want := []string{"time", "overhead", "padding", "range", "cumulate", "total"}
	if diff := cmp.Diff(want, Jobs()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}
