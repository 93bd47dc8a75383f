// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snippet prints hotspot entries with their surrounding source lines.
package snippet

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"perfsnippet/report"
)

// Context is the number of lines shown on each side of a hotspot line.
const Context = 1

// A Cache lazily loads and retains the lines of source files named by
// report entries. A file that cannot be read is remembered as empty,
// so repeated lookups do not retry the read.
type Cache struct {
	files map[string][]string
}

func NewCache() *Cache {
	return &Cache{files: make(map[string][]string)}
}

// Line returns the text of line n (1-based) of the named file,
// including its trailing newline if it has one. The boolean is false
// when the file or the line is unavailable; source files named in a
// report are often not present where the report is inspected.
func (c *Cache) Line(name string, n int) (string, bool) {
	lines, ok := c.files[name]
	if !ok {
		lines = readLines(name)
		c.files[name] = lines
	}
	if n <= 0 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// readLines splits a file into lines, each keeping its line terminator.
func readLines(name string) []string {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil
	}
	var lines []string
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			lines = append(lines, string(buf))
			break
		}
		lines = append(lines, string(buf[:i+1]))
		buf = buf[i+1:]
	}
	return lines
}

// Print writes each entry as a "<pct> <file>:<line>" header followed
// by the hotspot line and its neighbors, line numbers right-aligned in
// a six-character field. Indices at or below zero are skipped, as are
// lines that cannot be read. A blank line follows each entry.
func Print(w io.Writer, entries []report.Entry) {
	c := NewCache()
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s:%d\n", e.Percent, e.SourceFile, e.Line)
		for i := e.Line - Context; i <= e.Line+Context; i++ {
			if i <= 0 {
				continue
			}
			if text, ok := c.Line(e.SourceFile, i); ok {
				fmt.Fprintf(w, "%6d: %s", i, text)
			}
		}
		fmt.Fprintln(w)
	}
}
