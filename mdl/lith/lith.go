// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lith implements stochastic models of lithologies described by the mean and
// standard deviation of their P-wave velocity, S-wave velocity and density
package lith

import (
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/stat/distuv"
)

// quantile limits
const (
	QMIN = 0.01
	QMAX = 0.99
)

// Lithology holds the nominal elastic properties of a lithology
type Lithology struct {

	// input
	Name   string  // name of lithology
	Colour string  // colour tag used by charts
	Vp     float64 // P-wave velocity
	Vs     float64 // S-wave velocity
	Rho    float64 // density
	VpStd  float64 // standard deviation of Vp
	VsStd  float64 // standard deviation of Vs
	RhoStd float64 // standard deviation of Rho

	// derived
	AI   float64 // acoustic impedance
	SI   float64 // shear impedance
	VpVs float64 // Vp/Vs ratio
}

// New returns a new lithology
func New(name, colour string, vp, vs, rho, vpStd, vsStd, rhoStd float64) (o *Lithology) {
	o = &Lithology{Name: name, Colour: colour, Vp: vp, Vs: vs, Rho: rho, VpStd: vpStd, VsStd: vsStd, RhoStd: rhoStd}
	o.AI = vp * rho
	o.SI = vs * rho
	o.VpVs = vp / vs
	return
}

// Seed returns n uniform random numbers in [0, 1)
func Seed(n int, src rand.Source) (seed []float64) {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	seed = make([]float64, n)
	for i := range seed {
		seed[i] = u.Rand()
	}
	return
}

// RandNorm samples a normal distribution at quantiles perturbed around the seed values
//   u = U(0,1)・(s(1+var) - s(1-var)) + s   clipped to [QMIN, QMAX]
//   x = F⁻¹(u; mean, std)
//  Input:
//   seed -- quantile anchors; one sample is returned per seed value
//   vari -- variation fraction; vari = 0 gives the deterministic map x = F⁻¹(s)
//   src  -- source of the perturbations
func RandNorm(mean, std float64, seed []float64, vari float64, src rand.Source) (res []float64) {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	nrm := distuv.Normal{Mu: mean, Sigma: std}
	res = make([]float64, len(seed))
	for i, s := range seed {
		q := u.Rand()*(s*(1.0+vari)-s*(1.0-vari)) + s
		res[i] = nrm.Quantile(clip(q))
	}
	return
}

// Realize generates n realizations of this lithology driven by a new seed vector
//  Input:
//   std  -- scale factor applied to the standard deviations
//   vari -- variation fraction around the seed quantiles
func (o Lithology) Realize(n int, std, vari float64, src rand.Source) (r *Realizations, err error) {
	if n < 1 {
		return nil, chk.Err("lithology %q: number of realizations must be positive. n = %d is invalid", o.Name, n)
	}
	return o.RealizeFromSeed(Seed(n, src), std, vari, src), nil
}

// RealizeFromSeed generates realizations of this lithology; one per seed value
//  Note: the same seed drives Vp, Vs and Rho, correlating the three properties
func (o Lithology) RealizeFromSeed(seed []float64, std, vari float64, src rand.Source) (r *Realizations) {
	r = &Realizations{Name: o.Name, Std: std, Var: vari}
	r.Seed = make([]float64, len(seed))
	copy(r.Seed, seed)
	r.Vp = RandNorm(o.Vp, o.VpStd*std, seed, vari, src)
	r.Vs = RandNorm(o.Vs, o.VsStd*std, seed, vari, src)
	r.Rho = RandNorm(o.Rho, o.RhoStd*std, seed, vari, src)
	r.derive()
	return
}

// clip limits q to [QMIN, QMAX]
func clip(q float64) float64 {
	if q < QMIN {
		return QMIN
	}
	if q > QMAX {
		return QMAX
	}
	return q
}
