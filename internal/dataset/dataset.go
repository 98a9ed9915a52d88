// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultHead is the number of rows shown when no count is given.
const DefaultHead = 5

// Frame is a table of string cells. Columns are numbered from 0 since the
// source files carry no header row.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// ReadCSV reads a header-less CSV file. Blank lines are skipped and rows may
// have differing numbers of fields; the frame is as wide as its widest row.
func ReadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return frame, nil
}

// Parse reads header-less CSV from r.
func Parse(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	var rows [][]string
	width := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > width {
			width = len(rec)
		}
		rows = append(rows, rec)
	}

	columns := make([]string, width)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}
	return &Frame{Columns: columns, Rows: rows}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// Head returns a frame with the first n rows. A negative n keeps all but the
// last -n rows. The rows are shared with f.
func (f *Frame) Head(n int) *Frame {
	if n < 0 {
		n += len(f.Rows)
	}
	n = max(0, min(n, len(f.Rows)))
	return &Frame{Columns: f.Columns, Rows: f.Rows[:n]}
}

// Records returns the rows as column-name keyed maps; short rows leave the
// missing columns empty.
func (f *Frame) Records() []map[string]string {
	out := make([]map[string]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		rec := make(map[string]string, len(f.Columns))
		for i, c := range f.Columns {
			if i < len(row) {
				rec[c] = row[i]
			} else {
				rec[c] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}
