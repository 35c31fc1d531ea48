// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/trhallam/rockavo/fdi"
	"github.com/trhallam/rockavo/mdl/avo"
	"github.com/trhallam/rockavo/mdl/rock"
	"github.com/trhallam/rockavo/refl"
	"github.com/xuri/excelize/v2"
)

// Workbook collects results into sheets of a .xlsx file
type Workbook struct {
	f     *excelize.File
	first bool
}

// NewWorkbook returns a new empty workbook
func NewWorkbook() *Workbook {
	return &Workbook{f: excelize.NewFile(), first: true}
}

// Rocks writes the rock table to sheet name
func (o *Workbook) Rocks(name string, rocks ...*rock.Rock) (err error) {
	rows := [][]interface{}{{"rock", "fluid", "Vp", "Vs", "rho", "pimp", "Ksat", "Kdry", "Gdry"}}
	for _, r := range RockTable(rocks...) {
		rows = append(rows, []interface{}{r.Rock, r.Fluid, r.Vp, r.Vs, r.Rho, r.Pimp, r.Ksat, r.Kdry, r.Gdry})
	}
	return o.sheet(name, rows)
}

// Sweep writes the reflectivity sweep to sheet name
func (o *Workbook) Sweep(name string, s *refl.Sweep) (err error) {
	keys := refl.SweepKeys()
	head := make([]interface{}, len(keys))
	for j, k := range keys {
		head[j] = k
	}
	rows := [][]interface{}{head}
	for i := range s.Ang {
		r := make([]interface{}, len(keys))
		for j, k := range keys {
			r[j] = s.Column(k)[i]
		}
		rows = append(rows, r)
	}
	return o.sheet(name, rows)
}

// Grid writes mesh key of the 4D grid to sheet name; rows are saturations and columns pressures
func (o *Workbook) Grid(name, key string, g *fdi.Grid) (err error) {
	m := g.Mesh(key)
	if m == nil {
		return chk.Err("4D grid does not have mesh %q", key)
	}
	head := []interface{}{"sw \\ pres"}
	for _, p := range g.Pres {
		head = append(head, p)
	}
	rows := [][]interface{}{head}
	for i, sw := range g.Sw {
		r := []interface{}{sw}
		for _, v := range m[i] {
			r = append(r, v)
		}
		rows = append(rows, r)
	}
	return o.sheet(name, rows)
}

// Interface writes the AVO table of an interface to sheet name
func (o *Workbook) Interface(name string, intf *avo.Interface) (err error) {
	head := make([]interface{}, avo.NCols)
	for j, c := range avo.ColNames {
		head[j] = c
	}
	rows := [][]interface{}{head}
	for _, t := range intf.Table {
		r := make([]interface{}, avo.NCols)
		for j, v := range t {
			r[j] = v
		}
		rows = append(rows, r)
	}
	return o.sheet(name, rows)
}

// Save saves the workbook
func (o *Workbook) Save(path string) (err error) {
	err = o.f.SaveAs(path)
	if err != nil {
		return chk.Err("cannot save workbook %q: %v", path, err)
	}
	return o.f.Close()
}

// sheet writes rows to a new sheet
func (o *Workbook) sheet(name string, rows [][]interface{}) (err error) {
	if o.first {
		err = o.f.SetSheetName(o.f.GetSheetName(0), name)
		o.first = false
	} else {
		_, err = o.f.NewSheet(name)
	}
	if err != nil {
		return chk.Err("cannot create sheet %q: %v", name, err)
	}
	for i := range rows {
		cell, e := excelize.CoordinatesToCellName(1, i+1)
		if e != nil {
			return e
		}
		err = o.f.SetSheetRow(name, cell, &rows[i])
		if err != nil {
			return chk.Err("cannot write row %d of sheet %q: %v", i+1, name, err)
		}
	}
	return
}
