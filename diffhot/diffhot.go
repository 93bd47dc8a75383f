// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diffhot filters hotspot entries down to the lines a
// (git) diff added or modified.
package diffhot

import (
	"strings"

	"github.com/rdleal/intervalst/interval"
	"github.com/waigani/diffparser"

	"perfsnippet/report"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Changed records, per file named in a diff, the runs of line numbers
// added or modified on the new side of the diff.
type Changed struct {
	ranges map[string]*interval.SearchTree[int, int]
}

// Parse reads unified diff output and collects the changed line
// ranges of each file, indexed for interval lookup.
func Parse(diffText string) (*Changed, error) {
	diff, err := diffparser.Parse(diffText)
	if err != nil {
		return nil, err
	}
	c := &Changed{ranges: make(map[string]*interval.SearchTree[int, int])}
	for _, f := range diff.Files {
		if f.NewName == "" { // deleted file, nothing on the new side
			continue
		}
		st := c.ranges[f.NewName]
		if st == nil {
			st = interval.NewSearchTree[int](func(x, y int) int { return x - y })
			c.ranges[f.NewName] = st
		}
		for _, h := range f.Hunks {
			runStart := 0
			runEnd := 0
			flush := func() {
				if runStart > 0 {
					// Intervals are closed on both ends.
					must(st.Insert(runStart, runEnd, runStart))
					runStart = 0
				}
			}
			for _, l := range h.NewRange.Lines {
				if l.Mode != diffparser.ADDED {
					flush()
					continue
				}
				if runStart == 0 {
					runStart = l.Number
				}
				runEnd = l.Number
			}
			flush()
		}
	}
	return c, nil
}

// Match reports whether the given file and line fall in a changed
// range. Report paths and diff paths are often rooted differently, so
// file names match when one is a path suffix of the other.
func (c *Changed) Match(file string, line int) bool {
	for name, st := range c.ranges {
		if !suffixMatch(file, name) {
			continue
		}
		if _, ok := st.AnyIntersection(line, line); ok {
			return true
		}
	}
	return false
}

// Filter returns the entries whose file and line the diff touched,
// preserving their order.
func (c *Changed) Filter(entries []report.Entry) []report.Entry {
	var kept []report.Entry
	for _, e := range entries {
		if c.Match(e.SourceFile, e.Line) {
			kept = append(kept, e)
		}
	}
	return kept
}

func suffixMatch(a, b string) bool {
	return a == b || strings.HasSuffix(a, "/"+b) || strings.HasSuffix(b, "/"+a)
}
