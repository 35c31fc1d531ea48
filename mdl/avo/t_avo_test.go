// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/mdl/lith"
	"github.com/trhallam/rockavo/refl"
)

func Test_avo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("avo01")

	t, err := Calc([]float64{3000}, []float64{3500}, []float64{1800}, []float64{2200}, []float64{2.4}, []float64{2.55}, 0.5)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	io.Pforan("row = %v\n", t[0])
	chk.Array(tst, "contrasts", 1e-14, t[0][:A], []float64{500, 400, 0.15, 3250, 2000, 2.475})

	// intercept and gradient match the Shuey terms
	R0, G := refl.ShueyTerms(3000, 1800, 2.4, 3500, 2200, 2.55)
	chk.Float64(tst, "A ", 1e-15, t[0][A], R0)
	chk.Float64(tst, "B ", 1e-15, t[0][B], G)
	chk.Float64(tst, "Rs", 1e-15, t[0][Rs], 0.5*(R0-G))

	// linear AVO
	θ := 20 * math.Pi / 180
	chk.Float64(tst, "R(20°)", 1e-15, t.Reflectivity(0, θ), R0+G*math.Pow(math.Sin(θ), 2))

	// background ratio is a parameter
	FattiRs(t, 2)
	chk.Float64(tst, "Rs(vpvs=2)", 1e-15, t[0][Rs], 2*(R0-G))

	_, err = Calc([]float64{1, 2}, []float64{1}, nil, nil, nil, nil, 2)
	if err == nil {
		tst.Errorf("Calc should fail with samples of different lengths\n")
	}
}

func Test_intf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("intf01")

	pairs := lith.ExampleInterfaces()
	p := pairs[1]
	o, err := NewInterface(p.Top, p.Bot, 50, lith.ExampleStd, lith.ExampleVar, 2, p.Colour, rand.NewPCG(1, 2))
	if err != nil {
		tst.Errorf("NewInterface failed: %v\n", err)
		return
	}
	chk.String(tst, o.Name, "88Shale on WarC_NorPor_Brine")
	chk.String(tst, o.Colour, "darkblue")
	chk.Int(tst, "N", o.N(), 50)
	for i := 0; i < o.N(); i++ {
		chk.Float64(tst, "dVp", 1e-12, o.Table[i][DVp], o.Bot.Vp[i]-o.Top.Vp[i])
		chk.Float64(tst, "Rp ", 1e-17, o.Rp(i), o.Table[i][A])
		chk.Float64(tst, "Rs ", 1e-15, o.Rs(i), 2*(o.Table[i][A]-o.Table[i][B]))
	}
	chk.Array(tst, "column A", 1e-17, o.Column(A), o.Table.Col(A))
	chk.String(tst, ColNames[Rs], "Rs")

	// same lithology on top of itself: no deterministic contrast
	q, err := NewInterface(p.Top, p.Top, 10, 1, 0, 2, "", rand.NewPCG(3, 3))
	if err != nil {
		tst.Errorf("NewInterface failed: %v\n", err)
		return
	}
	io.Pforan("shale on shale A = %v\n", q.Column(A))

	_, err = NewInterface(nil, p.Bot, 10, 1, 0, 2, "", rand.NewPCG(3, 3))
	if err == nil {
		tst.Errorf("NewInterface should fail without top lithology\n")
	}
}
