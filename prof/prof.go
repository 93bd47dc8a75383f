// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prof converts pprof protobuf profiles into the flat
// percent-per-source-line form that profiler text reports use.
package prof

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/pprof/profile"
)

// Item is one source line's share of the profile: its flat percentage
// of the total sample count, and the outermost file and line of the
// samples attributed to it.
type Item struct {
	FlatPercent float64
	SourceFile  string
	Line        int64
}

// countIndex returns the Sample[*].Value index of the sample count.
// Profiles from the Go runtime label it "samples"; if no value type
// is labeled that way, the first one stands in.
func countIndex(p *profile.Profile) int {
	for i, t := range p.SampleType {
		if t.Type == "samples" {
			return i
		}
	}
	return 0
}

// FromProfile aggregates a profile's samples by the outermost file and
// line of their leaf location and returns the per-line flat
// percentages, hottest first.
func FromProfile(p *profile.Profile) []Item {
	ci := countIndex(p)

	countTotal := 0.0
	for _, s := range p.Sample {
		countTotal += float64(s.Value[ci])
	}
	if countTotal == 0 {
		return nil
	}

	type fileLine struct {
		file string
		line int64
	}
	counts := make(map[fileLine]float64)
	for _, s := range p.Sample {
		if len(s.Location) == 0 || len(s.Location[0].Line) == 0 {
			continue
		}
		lines := s.Location[0].Line
		// The last line of the leaf location is the outermost frame
		// after inlining.
		l := lines[len(lines)-1]
		fl := fileLine{file: l.Function.Filename, line: l.Line}
		counts[fl] += float64(s.Value[ci])
	}

	items := make([]Item, 0, len(counts))
	for fl, c := range counts {
		items = append(items, Item{
			FlatPercent: 100 * c / countTotal,
			SourceFile:  fl.file,
			Line:        fl.line,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].FlatPercent != items[j].FlatPercent {
			return items[i].FlatPercent > items[j].FlatPercent
		}
		if items[i].SourceFile != items[j].SourceFile {
			return items[i].SourceFile < items[j].SourceFile
		}
		return items[i].Line < items[j].Line
	})
	return items
}

// FromFiles parses one or more pprof protobuf profiles (possibly
// gzip-compressed), merges them, and returns the per-line flat
// percentages of the merged profile.
func FromFiles(names []string) ([]Item, error) {
	var profs []*profile.Profile
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		p, err := profile.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		profs = append(profs, p)
	}
	p, err := profile.Merge(profs)
	if err != nil {
		return nil, err
	}
	return FromProfile(p), nil
}

// WriteReport renders items one per line in the textual form profiler
// reports use, "<pct>%  <file>:<line>". Any of the trim prefixes is
// stripped from file names, which keeps reports readable when profiles
// carry absolute build paths.
func WriteReport(w io.Writer, items []Item, trims []string) {
	for _, it := range items {
		name := it.SourceFile
		for _, t := range trims {
			if strings.HasPrefix(name, t) {
				name = name[len(t):]
				break
			}
		}
		fmt.Fprintf(w, "%6.2f%%  %s:%d\n", it.FlatPercent, name, it.Line)
	}
}
