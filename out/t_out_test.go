// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/fdi"
	"github.com/trhallam/rockavo/inp"
	"github.com/trhallam/rockavo/mdl/avo"
	"github.com/trhallam/rockavo/mdl/lith"
	"github.com/trhallam/rockavo/refl"
	"github.com/xuri/excelize/v2"
)

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01")

	sc, err := inp.ReadScenario("../inp/testdata/scenario.json")
	if err != nil {
		tst.Errorf("ReadScenario failed: %v\n", err)
		return
	}
	ob, res, err := sc.Build()
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	rows := RockTable(ob, res)
	chk.Int(tst, "nrows", len(rows), 2)
	chk.String(tst, rows[1].Rock, "CV")
	chk.String(tst, rows[1].Fluid, "OW_IV")
	chk.Float64(tst, "pimp", 1e-12, rows[1].Pimp, 11.219115105952023)

	txt := RocksString(ob, res)
	io.Pf("%s", txt)
	if !strings.Contains(txt, "Shale") || !strings.Contains(txt, "OW_IV") {
		tst.Errorf("rock table is missing names\n")
	}

	sw, err := refl.AngleSweep(0, 40, 5, ob.Medium(), res.Medium())
	if err != nil {
		tst.Errorf("AngleSweep failed: %v\n", err)
		return
	}
	txt = SweepString(sw)
	io.Pf("%s", txt)
	if !strings.Contains(txt, refl.KeyArAvseth) {
		tst.Errorf("sweep table is missing header\n")
	}

	g, _ := fdi.New(5)
	err = g.Update(res.Frame, res.Fluid, 8, 16, res.Pimp)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	txt = CrossSectionsString(g)
	io.Pf("%s", txt)
	if !strings.Contains(txt, "constant pressure = 12 MPa") {
		tst.Errorf("cross sections are missing the constant pressure\n")
	}

	p := lith.ExampleInterfaces()[2]
	intf, err := avo.NewInterface(p.Top, p.Bot, 20, 1, 0.4, 2, p.Colour, rand.NewPCG(1, 2))
	if err != nil {
		tst.Errorf("NewInterface failed: %v\n", err)
		return
	}
	txt = SummaryString(intf.Bot) + InterfacesString(intf)
	io.Pf("%s", txt)
	if !strings.Contains(txt, "88Shale on WarC_NorPor_Gas") || !strings.Contains(txt, "vpvs") {
		tst.Errorf("summary is incomplete\n")
	}
	chk.Float64(tst, "mean", 1e-15, mean([]float64{1, 2, 3, 6}), 3)
	chk.Float64(tst, "mean(nil)", 1e-15, mean(nil), 0)

	// workbook
	w := NewWorkbook()
	if err = w.Rocks("rocks", ob, res); err != nil {
		tst.Errorf("Rocks failed: %v\n", err)
		return
	}
	if err = w.Sweep("sweep", sw); err != nil {
		tst.Errorf("Sweep failed: %v\n", err)
		return
	}
	if err = w.Grid("image", "image", g); err != nil {
		tst.Errorf("Grid failed: %v\n", err)
		return
	}
	if err = w.Interface("avo", intf); err != nil {
		tst.Errorf("Interface failed: %v\n", err)
		return
	}
	if w.Grid("nothing", "nothing", g) == nil {
		tst.Errorf("Grid should fail with unknown mesh\n")
	}
	fn := filepath.Join(tst.TempDir(), "results.xlsx")
	if err = w.Save(fn); err != nil {
		tst.Errorf("Save failed: %v\n", err)
		return
	}

	// read back
	t, err := inp.ReadTable(fn)
	if err != nil {
		tst.Errorf("ReadTable failed: %v\n", err)
		return
	}
	chk.Int(tst, "rows in first sheet", t.Nrows(), 2)
	v, _ := t.Float(1, "pimp")
	chk.Float64(tst, "pimp from xlsx", 1e-12, v, res.Pimp)
	f, err := excelize.OpenFile(fn)
	if err != nil {
		tst.Errorf("OpenFile failed: %v\n", err)
		return
	}
	defer f.Close()
	chk.Strings(tst, "sheets", f.GetSheetList(), []string{"rocks", "sweep", "image", "avo"})
}
