// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lith

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/stat/distuv"
)

func Test_randnorm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("randnorm01")

	// without variation the samples are the quantiles of the seed
	seed := []float64{0.001, 0.1, 0.5, 0.9, 0.999}
	a := RandNorm(3000, 100, seed, 0, rand.NewPCG(1, 2))
	b := RandNorm(3000, 100, seed, 0, rand.NewPCG(3, 4))
	io.Pforan("a = %v\n", a)
	chk.Array(tst, "repeated", 1e-17, a, b)

	nrm := distuv.Normal{Mu: 3000, Sigma: 100}
	chk.Float64(tst, "clip low ", 1e-10, a[0], nrm.Quantile(QMIN))
	chk.Float64(tst, "q(0.1)   ", 1e-10, a[1], nrm.Quantile(0.1))
	chk.Float64(tst, "median   ", 1e-10, a[2], 3000)
	chk.Float64(tst, "q(0.9)   ", 1e-10, a[3], nrm.Quantile(0.9))
	chk.Float64(tst, "clip high", 1e-10, a[4], nrm.Quantile(QMAX))

	// with variation the quantiles stay within s(1±var)
	vari := 0.2
	c := RandNorm(0, 1, seed[1:4], vari, rand.NewPCG(5, 6))
	for i, s := range seed[1:4] {
		lo, hi := nrm.Quantile(s), nrm.Quantile(clip(s*(1+2*vari)))
		x := 3000 + 100*c[i]
		if x < lo-1e-9 || x > hi+1e-9 {
			tst.Errorf("sample %d = %g is outside [%g, %g]\n", i, x, lo, hi)
		}
	}

	// same source gives the same samples
	d := RandNorm(0, 1, seed, vari, rand.NewPCG(5, 6))
	e := RandNorm(0, 1, seed, vari, rand.NewPCG(5, 6))
	chk.Array(tst, "same source", 1e-17, d, e)
}

func Test_seed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed01")

	s := Seed(1000, rand.NewPCG(7, 8))
	chk.Int(tst, "len(seed)", len(s), 1000)
	for i, v := range s {
		if v < 0 || v >= 1 {
			tst.Errorf("seed[%d] = %g is outside [0, 1)\n", i, v)
			return
		}
	}
	chk.Array(tst, "repeatable", 1e-17, s, Seed(1000, rand.NewPCG(7, 8)))
}

func Test_realize01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("realize01")

	o := Find(Examples(), "FlaxSand")
	if o == nil {
		tst.Errorf("FlaxSand should be in the examples\n")
		return
	}
	chk.Float64(tst, "AI  ", 1e-10, o.AI, 3663.504934*2.350170833)
	chk.Float64(tst, "VpVs", 1e-14, o.VpVs, 3663.504934/2034.815946)

	seed := []float64{0.2, 0.4, 0.6, 0.8}
	r1 := o.RealizeFromSeed(seed, ExampleStd, 0, rand.NewPCG(1, 1))
	r2 := o.RealizeFromSeed(seed, ExampleStd, 0, rand.NewPCG(2, 2))
	chk.Array(tst, "vp ", 1e-17, r1.Vp, r2.Vp)
	chk.Array(tst, "vs ", 1e-17, r1.Vs, r2.Vs)
	chk.Array(tst, "rho", 1e-17, r1.Rho, r2.Rho)

	// correlated properties: larger seeds give larger values of all properties
	for i := 1; i < r1.N(); i++ {
		if r1.Vp[i] <= r1.Vp[i-1] || r1.Vs[i] <= r1.Vs[i-1] || r1.Rho[i] <= r1.Rho[i-1] {
			tst.Errorf("properties are not monotonic in the seed at %d\n", i)
		}
	}

	// derived
	for i := 0; i < r1.N(); i++ {
		chk.Float64(tst, "AI  ", 1e-10, r1.AI[i], r1.Vp[i]*r1.Rho[i])
		chk.Float64(tst, "SI  ", 1e-10, r1.SI[i], r1.Vs[i]*r1.Rho[i])
		chk.Float64(tst, "VpVs", 1e-14, r1.VpVs[i], r1.Vp[i]/r1.Vs[i])
		chk.Float64(tst, "MR  ", 1e-6, r1.MR[i], r1.SI[i]*r1.SI[i])
		chk.Float64(tst, "LR  ", 1e-6, r1.LR[i], r1.AI[i]*r1.AI[i]-2*r1.SI[i]*r1.SI[i])
	}

	_, err := o.Realize(0, 1, 0, rand.NewPCG(1, 1))
	if err == nil {
		tst.Errorf("Realize should fail with n = 0\n")
	}
}

func Test_summary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary01")

	o := New("test", "black", 3000, 1500, 2.4, 100, 50, 0.05)
	r, err := o.Realize(ExampleNsim, 1, ExampleVar, rand.NewPCG(11, 13))
	if err != nil {
		tst.Errorf("Realize failed: %v\n", err)
		return
	}
	s := r.Summary()
	chk.Int(tst, "number of keys", len(s.Keys()), 8)

	var sum float64
	for _, v := range r.Vp {
		sum += v
	}
	mean := sum / float64(r.N())
	var ss float64
	for _, v := range r.Vp {
		ss += (v - mean) * (v - mean)
	}
	std := math.Sqrt(ss / float64(r.N()-1))
	io.Pforan("vp: %+v\n", s["vp"])
	chk.Float64(tst, "mean(vp)", 1e-9, s["vp"].Mean, mean)
	chk.Float64(tst, "std(vp) ", 1e-9, s["vp"].Std, std)
	if s["vp"].Min > s["vp"].Mean || s["vp"].Max < s["vp"].Mean {
		tst.Errorf("min/max do not bracket the mean\n")
	}

	// all samples within the clipped quantiles
	nrm := distuv.Normal{Mu: 3000, Sigma: 100}
	if s["vp"].Min < nrm.Quantile(QMIN)-1e-9 || s["vp"].Max > nrm.Quantile(QMAX)+1e-9 {
		tst.Errorf("samples outside clipped quantiles: %+v\n", s["vp"])
	}

	if len(Realizations{}.Summary()) != 0 {
		tst.Errorf("empty realizations should give empty summary\n")
	}
}

func Test_examples01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("examples01")

	l := Examples()
	chk.Int(tst, "number of lithologies", len(l), 8)
	l[0].Vp = 0
	if Examples()[0].Vp == 0 {
		tst.Errorf("Examples must return new values\n")
	}

	pairs := ExampleInterfaces()
	chk.Int(tst, "number of interfaces", len(pairs), 6)
	for _, p := range pairs {
		chk.String(tst, p.Top.Name, "88Shale")
		chk.String(tst, p.Colour, p.Bot.Colour)
	}
	chk.String(tst, pairs[5].Bot.Name, "Coal")
	if Find(l, "Granite") != nil {
		tst.Errorf("Find should return nil for unknown names\n")
	}
}
