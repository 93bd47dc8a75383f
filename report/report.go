// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report extracts hotspot entries from a profiler's text report.
package report

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
)

// Entry is one hotspot from a report: the flat percentage as the
// report formatted it, and the source file and line it names.
type Entry struct {
	Percent    string
	SourceFile string
	Line       int
}

// hotRE matches report lines of the form "<pct>%  <anything>  <file>.rs:<line>".
// The extension is fixed; these reports name sources of the profiled Rust build.
var hotRE = regexp.MustCompile(`(\d+\.\d+%)\s+.*\s+([^\s:]+\.rs):(\d+)`)

// Scan reads a report line by line, in order, and returns up to max
// hotspot entries. Scanning stops at the max'th match, so entries
// come back in report order.
func Scan(r io.Reader, max int) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024) // perf call chains make for long lines
	for sc.Scan() {
		m := hotRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		line, err := strconv.Atoi(m[3])
		if err != nil {
			continue // line counts beyond int range name no real file anyway
		}
		entries = append(entries, Entry{Percent: m[1], SourceFile: m[2], Line: line})
		if len(entries) >= max {
			break
		}
	}
	return entries, sc.Err()
}

// ScanFile opens and scans a report file.
func ScanFile(name string, max int) ([]Entry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f, max)
}
