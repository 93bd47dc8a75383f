// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"perfsnippet/prof"
	"perfsnippet/reuse"
)

var top int
var trims reuse.RepeatedString

func fail(format string, args ...any) {
	flag.Usage()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// proftotext [-n top] [-trim prefix]... profile1 [profile2 ...]
// Renders pprof protobuf profiles as a flat percent-per-line text
// report, hottest first.
func main() {
	flag.IntVar(&top, "n", top, "Limit output to the n hottest locations (0 means all)")
	flag.Var(&trims, "trim", "Strip this prefix from file names in the report (may be repeated)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
%[1]s [options] profile1 [profile2 ...] merges the supplied cpu profiles
and writes one '<pct>%%  <file>:<line>' report line per source line,
hottest first, to standard output.
`, os.Args[0])
	}

	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fail("expected at least one profile file\n")
	}

	items, err := prof.FromFiles(args)
	if err != nil {
		fail("could not read profiles, error was %v\n", err)
	}
	if top > 0 && len(items) > top {
		items = items[:top]
	}
	prof.WriteReport(os.Stdout, items, trims)
}
