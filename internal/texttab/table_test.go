// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var got strings.Builder
		if err := tab.Format(&got); err != nil {
			t.Fatal(err)
		}
		if want != got.String() {
			t.Errorf("want:\n%sgot:\n%s", want, got.String())
		}
		tab = Table{}
	}

	check("")

	tab.Row("a", "b", "c").Row("d", "e", "f")
	check("a  b  c\nd  e  f\n")

	// Padding without trailing spaces.
	tab.Row("a", "b", "c").Row("long", "e", "long")
	check("a     b  c\nlong  e  long\n")

	// Right alignment.
	tab.Row("job", "points").Row("time", "2").Row("overhead", "12")
	tab.AlignRight(1)
	check("job       points\ntime           2\noverhead      12\n")

	// Ragged rows.
	tab.Row("a").Row("bb", "c")
	check("a\nbb  c\n")

	// Widths count runes.
	tab.Row("☃", "x").Row("ab", "y")
	check("☃   x\nab  y\n")
}
