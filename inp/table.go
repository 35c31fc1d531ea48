// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// Table holds a table of strings read from a .csv or .xlsx file
type Table struct {
	Header []string   // column names
	Rows   [][]string // rows without the header
	cols   map[string]int
}

// NewTable returns a new table; the first row is the header
func NewTable(rows [][]string) (o *Table, err error) {
	if len(rows) < 1 {
		return nil, chk.Err("table must have a header")
	}
	o = &Table{cols: make(map[string]int)}
	for j, h := range rows[0] {
		h = strings.TrimSpace(h)
		o.Header = append(o.Header, h)
		o.cols[h] = j
	}
	for _, r := range rows[1:] {
		if blank(r) {
			continue
		}
		o.Rows = append(o.Rows, r)
	}
	return
}

// ReadTable reads a table from a .csv file or from the first sheet of a .xlsx file
func ReadTable(path string) (o *Table, err error) {
	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, e := os.Open(path)
		if e != nil {
			return nil, chk.Err("cannot open table %q: %v", path, e)
		}
		defer f.Close()
		r := csv.NewReader(f)
		r.TrimLeadingSpace = true
		r.Comment = '#'
		rows, err = r.ReadAll()
		if err != nil {
			return nil, chk.Err("cannot read csv table %q: %v", path, err)
		}
	case ".xlsx":
		f, e := excelize.OpenFile(path)
		if e != nil {
			return nil, chk.Err("cannot open xlsx table %q: %v", path, e)
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) < 1 {
			return nil, chk.Err("xlsx table %q has no sheets", path)
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, chk.Err("cannot read sheet %q of xlsx table %q: %v", sheets[0], path, err)
		}
	default:
		return nil, chk.Err("table %q must be a .csv or .xlsx file", path)
	}
	o, err = NewTable(rows)
	if err != nil {
		return nil, chk.Err("table %q: %v", path, err)
	}
	return
}

// Nrows returns the number of rows
func (o Table) Nrows() int { return len(o.Rows) }

// Str returns the value in row i of column key
func (o Table) Str(i int, key string) (s string, err error) {
	j, ok := o.cols[key]
	if !ok {
		return "", chk.Err("table does not have column %q", key)
	}
	if j >= len(o.Rows[i]) {
		return "", nil
	}
	return strings.TrimSpace(o.Rows[i][j]), nil
}

// Float returns the value in row i of column key
func (o Table) Float(i int, key string) (v float64, err error) {
	s, err := o.Str(i, key)
	if err != nil {
		return
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, chk.Err("row %d, column %q: cannot parse %q", i+1, key, s)
	}
	return
}

// Floats returns the values in row i of columns keys
func (o Table) Floats(i int, keys ...string) (vals []float64, err error) {
	vals = make([]float64, len(keys))
	for k, key := range keys {
		vals[k], err = o.Float(i, key)
		if err != nil {
			return
		}
	}
	return
}

// blank tells whether all cells of r are empty
func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
