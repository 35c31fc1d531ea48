// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ZoeppritzFull solves the full Zoeppritz system A・x = B for an incident P-wave
//  Input:
//   thetai -- angle of incidence in radians
//  Output: [Rp, Rs, Tp, Ts] amplitude ratios of the reflected and transmitted waves
func ZoeppritzFull(thetai, vp1, vs1, rho1, vp2, vs2, rho2 float64) (res [4]float64, err error) {

	// angles
	ang := snell(thetai, vp1, vs1, vp2, vs2)
	θt, φr, φt := ang[1], ang[2], ang[3]

	// impedance ratios
	c1 := vp1 / vs1
	c2 := (rho2 * vs2 * vs2 * vp1) / (rho1 * vs1 * vs1 * vp2)
	c3 := (rho2 * vs2 * vp1) / (rho1 * vs1 * vs1)
	c4 := 1.0 / c1
	c5 := (rho2 * vp2) / (rho1 * vp1)
	c6 := -(rho2 * vs2) / (rho1 * vp1)

	// boundary conditions
	A := mat.NewDense(4, 4, []float64{
		-math.Sin(thetai), -math.Cos(φr), math.Sin(θt), math.Cos(φt),
		math.Cos(thetai), -math.Sin(φr), math.Cos(θt), -math.Sin(φt),
		math.Sin(2 * thetai), c1 * math.Cos(2*φr), c2 * math.Cos(2*φr), c3 * math.Cos(2*φt),
		-math.Cos(2 * φr), c4 * math.Sin(2*φr), c5 * math.Cos(2*φt), c6 * math.Sin(2*φt),
	})
	B := mat.NewVecDense(4, []float64{
		math.Sin(thetai), math.Cos(thetai), math.Sin(2 * thetai), math.Cos(2 * φr),
	})

	// solve
	var x mat.VecDense
	if e := x.SolveVec(A, B); e != nil {
		err = chk.Err("cannot solve Zoeppritz system for thetai=%g: %v", thetai, e)
		return
	}
	for i := 0; i < 4; i++ {
		res[i] = x.AtVec(i)
	}
	return
}

// ZoeppritzPdown computes the coefficients for a down-going incident P-wave using the
// closed form of Aki and Richards (1980) without matrix inversion
//  Input:
//   thetai -- angle of incidence in radians
//  Output: [PdPu, PdPd, PdSu, PdSd] = [reflected P, transmitted P, reflected S, transmitted S]
//  Note: the reflected S amplitude PdSu is normalised by β₂
func ZoeppritzPdown(thetai, vp1, vs1, rho1, vp2, vs2, rho2 float64) (res [4]float64) {

	// angles and ray parameter
	ang := snell(thetai, vp1, vs1, vp2, vs2)
	i1, i2, j1, j2 := ang[0], ang[1], ang[2], ang[3]
	p := math.Sin(i1) / vp1
	pp := p * p

	// vertical slownesses
	ci1 := math.Cos(i1) / vp1
	ci2 := math.Cos(i2) / vp2
	cj1 := math.Cos(j1) / vs1
	cj2 := math.Cos(j2) / vs2

	// auxiliary
	a := rho2*(1-2*vs2*vs2*pp) - rho1*(1-2*vs1*vs1*pp)
	b := rho2*(1-2*vs2*vs2*pp) + 2*rho1*vs1*vs1*pp
	c := rho1*(1-2*vs1*vs1*pp) + 2*rho2*vs2*vs2*pp
	d := 2 * (rho2*vs2*vs2 - rho1*vs1*vs1)
	E := b*ci1 + c*ci2
	F := b*cj1 + c*cj2
	G := a - d*ci1*cj2
	H := a - d*ci2*cj1
	D := E*F + G*H*pp

	// coefficients
	res[0] = ((b*ci1-c*ci2)*F - (a+d*ci1*cj2)*H*pp) / D
	res[1] = 2 * rho1 * ci1 * F * vp1 / (vp2 * D)
	res[2] = -2 * ci1 * (a*b + c*d*ci2*cj2) * p * vp1 / (vs2 * D)
	res[3] = 2 * rho1 * ci1 * H * p * vp1 / (vs2 * D)
	return
}
