// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rock

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/mdl/fluid"
	"github.com/trhallam/rockavo/mdl/frame"
	"github.com/trhallam/rockavo/mdl/mineral"
)

// sandstone returns a brine/oil/gas sandstone
func sandstone(tst *testing.T) *Rock {
	nonshale := mineral.New("nonshale", 70, 35, 2.74)
	shale := mineral.New("shale", 15, 5, 2.68)
	frm := frame.New("sand", nonshale, shale, 0.05, 0.2)
	frm.ComputeDryFrameModuli(
		frame.Stress{VsGrad: 3.281 * 6.89476 / 1000, Depth: 3180, InitP: 12, CurP: 12},
		frame.Sensitivity{Ek: 0.45, Pk: 15, Eg: 0.75, Pg: 16},
	)
	var fld fluid.Model
	fld.Name = "fluid"
	err := fld.Init(fld.GetPrms(true))
	if err != nil {
		tst.Fatalf("cannot initialise fluid: %v\n", err)
	}
	return New(frm, &fld)
}

func Test_vel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vel01")

	chk.Float64(tst, "Vs", 1e-15, Vs(9, 4), 1.5)
	chk.Float64(tst, "Vp", 1e-15, Vp(12, 3, 4), 2)
	if !math.IsNaN(Vs(-1, 2)) {
		tst.Errorf("negative modulus should give NaN\n")
	}
	if !math.IsNaN(Vp(-10, 1, 2)) {
		tst.Errorf("negative modulus should give NaN\n")
	}
}

func Test_rock01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rock01")

	o := sandstone(tst)
	io.Pforan("Ksat=%v rho=%v vp=%v vs=%v\n", o.Ksat, o.Rho, o.Vp, o.Vs)
	chk.Float64(tst, "kfl ", 1e-15, o.Fluid.K, 0.06549696495888471)
	chk.Float64(tst, "rhofl", 1e-15, o.Fluid.Rho, 0.73575)
	chk.Float64(tst, "Ksat", 1e-13, o.Ksat, 26.782710386414493)
	chk.Float64(tst, "rhob", 1e-14, o.Rho, 2.8834)
	chk.Float64(tst, "vp  ", 1e-13, o.Vp, 3.890932616339052)
	chk.Float64(tst, "vs  ", 1e-13, o.Vs, 2.0947738720106766)
	chk.Float64(tst, "pimp", 1e-12, o.Pimp, 11.219115105952023)
	chk.Float64(tst, "simp", 1e-12, o.Simp, 6.0400709825555845)
	chk.Float64(tst, "vpvs", 1e-14, o.VpVs, o.Vp/o.Vs)
	chk.Float64(tst, "MR  ", 1e-12, o.MR, o.Simp*o.Simp)
	chk.Float64(tst, "LR  ", 1e-12, o.LR, o.Pimp*o.Pimp-2*o.Simp*o.Simp)

	m := o.Medium()
	chk.Float64(tst, "medium.Vp ", 1e-17, m.Vp, o.Vp)
	chk.Float64(tst, "medium.Vs ", 1e-17, m.Vs, o.Vs)
	chk.Float64(tst, "medium.Rho", 1e-17, m.Rho, o.Rho)
	chk.String(tst, o.Name(), "sand+fluid")
}

func Test_rock02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rock02")

	o := sandstone(tst)
	pimp0 := o.Pimp

	// full brine is stiffer and denser
	o.Fluid.UpdateSaturation(1, 0, 0)
	o.Update()
	io.Pforan("pimp(brine) = %v\n", o.Pimp)
	if o.Pimp <= pimp0 {
		tst.Errorf("brine impedance %g should exceed the gas-bearing impedance %g\n", o.Pimp, pimp0)
	}
	chk.Float64(tst, "rho(brine)", 1e-14, o.Rho, 2.73625+1.056*0.2)

	// pressure depletion stiffens the frame
	vs0 := o.Vs
	err := o.Frame.UpdatePressure(8)
	if err != nil {
		tst.Errorf("UpdatePressure failed: %v\n", err)
		return
	}
	o.Update()
	if o.Vs <= vs0 {
		tst.Errorf("depletion should increase Vs. %g <= %g\n", o.Vs, vs0)
	}
}
