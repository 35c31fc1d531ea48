// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/fdi"
	"github.com/trhallam/rockavo/inp"
	"github.com/trhallam/rockavo/mdl/avo"
	"github.com/trhallam/rockavo/mdl/lith"
	"github.com/trhallam/rockavo/out"
	"github.com/trhallam/rockavo/refl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	xlsxpath := io.ArgToString(2, "")
	figdir := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nRockAvo -- rock physics, AVO and 4D impedance modelling\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"scenario file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"workbook to write; empty means none", "xlsxpath", xlsxpath,
			"directory of figures; empty means none", "figdir", figdir,
		))
	}

	// scenario
	sc, err := inp.ReadScenario(fnamepath)
	if err != nil {
		chk.Panic("cannot read scenario:\n%v", err)
	}
	ob, res, err := sc.Build()
	if err != nil {
		chk.Panic("cannot build rocks:\n%v", err)
	}
	io.Pf("\n%s", out.RocksString(ob, res))

	// reflectivity
	sw, err := refl.AngleSweep(sc.Sweep.Amin, sc.Sweep.Amax, sc.Sweep.N, ob.Medium(), res.Medium())
	if err != nil {
		chk.Panic("angle sweep failed:\n%v", err)
	}
	io.Pf("\n%s", out.SweepString(sw))

	// 4D grid
	g, err := fdi.New(sc.Grid.N)
	if err != nil {
		chk.Panic("%v", err)
	}
	g.Absolute = sc.Grid.Absolute
	g.Nworkers = sc.Grid.Nworkers
	err = g.Update(res.Frame, res.Fluid, sc.Grid.Pmin, sc.Grid.Pmax, res.Pimp)
	if err != nil {
		chk.Panic("4D grid failed:\n%v", err)
	}
	io.Pf("\n%s", out.CrossSectionsString(g))

	// Monte-Carlo AVO
	a := sc.Avo
	var intfs []*avo.Interface
	for _, p := range lith.ExampleInterfaces() {
		intf, err := avo.NewInterface(p.Top, p.Bot, a.Nsim, a.Std, a.Var, a.VpVs, p.Colour, rand.NewPCG(a.Seed, a.Seed))
		if err != nil {
			chk.Panic("AVO of %s on %s failed:\n%v", p.Top.Name, p.Bot.Name, err)
		}
		intfs = append(intfs, intf)
		if verbose {
			io.Pf("\n%s", out.SummaryString(intf.Bot))
		}
	}
	io.Pf("\n%s", out.InterfacesString(intfs...))

	// figures
	if figdir != "" {
		csat, cpres := out.CrossSectionsFigures(g)
		err = out.SweepFigure(sw).Draw(figdir, "sweep.png")
		if err == nil {
			err = csat.Draw(figdir, "csat.png")
		}
		if err == nil {
			err = cpres.Draw(figdir, "cpres.png")
		}
		if err == nil {
			err = out.InterfacesFigure(intfs...).Draw(figdir, "avo.png")
		}
		if err != nil {
			chk.Panic("cannot draw figures:\n%v", err)
		}
	}

	// workbook
	if xlsxpath == "" {
		return
	}
	wb := out.NewWorkbook()
	err = wb.Rocks("rocks", ob, res)
	if err == nil {
		err = wb.Sweep("sweep", sw)
	}
	if err == nil {
		err = wb.Grid("image", "image", g)
	}
	for _, intf := range intfs {
		if err != nil {
			break
		}
		err = wb.Interface(intf.Bot.Name, intf)
	}
	if err == nil {
		err = wb.Save(xlsxpath)
	}
	if err != nil {
		chk.Panic("cannot write workbook:\n%v", err)
	}
	if verbose {
		io.Pfgreen("\nworkbook <%s> written\n", xlsxpath)
	}
}
