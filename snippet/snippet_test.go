// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snippet_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"perfsnippet/report"
	"perfsnippet/snippet"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestPrintContext(t *testing.T) {
	src := writeSource(t, "parser.rs", "one\ntwo\nthree\nfour\nfive\n")

	var buf bytes.Buffer
	snippet.Print(&buf, []report.Entry{
		{Percent: "12.34%", SourceFile: src, Line: 3},
	})

	want := fmt.Sprintf("12.34%% %s:3\n     2: two\n     3: three\n     4: four\n\n", src)
	if buf.String() != want {
		t.Errorf("output[%q] != want[%q]", buf.String(), want)
	}
}

func TestPrintFirstLineSkipsIndexZero(t *testing.T) {
	src := writeSource(t, "lexer.rs", "alpha\nbeta\ngamma\n")

	var buf bytes.Buffer
	snippet.Print(&buf, []report.Entry{
		{Percent: "7.01%", SourceFile: src, Line: 1},
	})

	want := fmt.Sprintf("7.01%% %s:1\n     1: alpha\n     2: beta\n\n", src)
	if buf.String() != want {
		t.Errorf("output[%q] != want[%q]", buf.String(), want)
	}
}

func TestPrintLastLinePastEOF(t *testing.T) {
	src := writeSource(t, "tail.rs", "alpha\nbeta\n")

	var buf bytes.Buffer
	snippet.Print(&buf, []report.Entry{
		{Percent: "3.00%", SourceFile: src, Line: 2},
	})

	want := fmt.Sprintf("3.00%% %s:2\n     1: alpha\n     2: beta\n\n", src)
	if buf.String() != want {
		t.Errorf("output[%q] != want[%q]", buf.String(), want)
	}
}

func TestPrintMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.rs")

	var buf bytes.Buffer
	snippet.Print(&buf, []report.Entry{
		{Percent: "9.99%", SourceFile: missing, Line: 5},
	})

	want := fmt.Sprintf("9.99%% %s:5\n\n", missing)
	if buf.String() != want {
		t.Errorf("output[%q] != want[%q]", buf.String(), want)
	}
}

func TestCacheLine(t *testing.T) {
	src := writeSource(t, "cached.rs", "alpha\nbeta")

	c := snippet.NewCache()
	if text, ok := c.Line(src, 1); !ok || text != "alpha\n" {
		t.Errorf("Line(1) = %q, %v; want %q, true", text, ok, "alpha\n")
	}
	// The last line has no terminator and comes back as-is.
	if text, ok := c.Line(src, 2); !ok || text != "beta" {
		t.Errorf("Line(2) = %q, %v; want %q, true", text, ok, "beta")
	}
	if _, ok := c.Line(src, 0); ok {
		t.Errorf("Line(0) unexpectedly present")
	}
	if _, ok := c.Line(src, 3); ok {
		t.Errorf("Line(3) unexpectedly present")
	}
	if _, ok := c.Line(filepath.Join(t.TempDir(), "absent.rs"), 1); ok {
		t.Errorf("Line of a missing file unexpectedly present")
	}
}
