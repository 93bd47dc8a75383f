// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"perfsnippet/diffhot"
	"perfsnippet/report"
	"perfsnippet/reuse"
	"perfsnippet/snippet"
)

var verbose reuse.Count
var diffFile string

func fail(format string, args ...any) {
	flag.Usage()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// perfsnippet [-v] [-d diffFile] [report_path] [max_entries]
// Prints the hottest source locations of a profiler text report,
// each with the surrounding source lines.
func main() {
	flag.Var(&verbose, "v", "Says more about the report read and hotspots matched")
	flag.StringVar(&diffFile, "d", diffFile, "only show hotspots on lines changed in this (git) diff output file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
%[1]s [options] [report_path] [max_entries] scans a profiler text report
(default perf_report.txt) for up to max_entries (default 10) hotspot
lines of the form '<pct>%% ... <file>.rs:<line>' and prints each with
the surrounding source lines, when the sources are present.
`, os.Args[0])
	}

	flag.Parse()

	args := flag.Args()

	reportPath := "perf_report.txt"
	maxEntries := 10
	if len(args) > 0 {
		reportPath = args[0]
	}
	if len(args) > 1 {
		var err error
		maxEntries, err = strconv.Atoi(args[1])
		if err != nil {
			fail("max_entries %q is not an integer, error was %v\n", args[1], err)
		}
	}

	entries, err := report.ScanFile(reportPath, maxEntries)
	if err != nil {
		fail("could not read report from %s, error was %v\n", reportPath, err)
	}
	if verbose > 0 {
		fmt.Fprintf(os.Stderr, "%d hotspot(s) matched in %s\n", len(entries), reportPath)
	}

	if diffFile != "" {
		diffBytes, err := os.ReadFile(diffFile)
		if err != nil {
			fail("could not read diff from %s, error was %v\n", diffFile, err)
		}
		changed, err := diffhot.Parse(string(diffBytes))
		if err != nil {
			fail("could not parse diff %s, error was %v\n", diffFile, err)
		}
		before := len(entries)
		entries = changed.Filter(entries)
		if verbose > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d hotspot(s) on changed lines\n", len(entries), before)
		}
	}

	snippet.Print(os.Stdout, entries)
}
