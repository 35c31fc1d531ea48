// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package avo implements intercept/gradient models of blocky interfaces
// between realizations of two lithologies
package avo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// columns of Table
const (
	DVp  = iota // Vp(bottom) - Vp(top)
	DVs         // Vs(bottom) - Vs(top)
	DRho        // ρ(bottom) - ρ(top)
	Vp          // average Vp
	Vs          // average Vs
	Rho         // average ρ
	A           // intercept
	B           // gradient
	Rs          // Fatti S-wave reflectivity

	NCols // number of columns
)

// ColNames holds the names of the columns of Table
var ColNames = [NCols]string{"dVp", "dVs", "dRho", "Vp", "Vs", "Rho", "A", "B", "Rs"}

// Table holds one row per realization and NCols columns
type Table [][]float64

// Col returns a copy of column j
func (o Table) Col(j int) (res []float64) {
	res = make([]float64, len(o))
	for i, row := range o {
		res[i] = row[j]
	}
	return
}

// Calc computes the contrasts, averages and AVO terms of an interface
//  Input:
//   vp1, vs1, rho1 -- top half-space samples
//   vp2, vs2, rho2 -- bottom half-space samples
//   vpvs           -- background Vp/Vs ratio of the Fatti Rs term
func Calc(vp1, vp2, vs1, vs2, rho1, rho2 []float64, vpvs float64) (t Table, err error) {
	n := len(vp1)
	for _, x := range [][]float64{vp2, vs1, vs2, rho1, rho2} {
		if len(x) != n {
			return nil, chk.Err("avo: all samples must have the same length. %d != %d", len(x), n)
		}
	}
	t = utl.Alloc(n, NCols)
	for i, r := range t {
		r[DVp] = vp2[i] - vp1[i]
		r[DVs] = vs2[i] - vs1[i]
		r[DRho] = rho2[i] - rho1[i]
		r[Vp] = (vp2[i] + vp1[i]) / 2.0
		r[Vs] = (vs2[i] + vs1[i]) / 2.0
		r[Rho] = (rho2[i] + rho1[i]) / 2.0
	}
	AkiRichards3(t)
	FattiRs(t, vpvs)
	return
}

// AkiRichards3 fills the intercept and gradient columns
//   A = (ΔVp/Vp + Δρ/ρ) / 2
//   B = ΔVp/(2Vp) - 4(Vs/Vp)²ΔVs/Vs - 2(Vs/Vp)²Δρ/ρ
func AkiRichards3(t Table) {
	for _, r := range t {
		k := r[Vs] * r[Vs] / (r[Vp] * r[Vp])
		r[A] = 0.5 * (r[DVp]/r[Vp] + r[DRho]/r[Rho])
		r[B] = r[DVp]/(2.0*r[Vp]) - 4.0*k*r[DVs]/r[Vs] - 2.0*k*r[DRho]/r[Rho]
	}
}

// FattiRs fills the S-wave reflectivity column
//   Rs = vpvs・(A - B)
func FattiRs(t Table, vpvs float64) {
	for _, r := range t {
		r[Rs] = vpvs * (r[A] - r[B])
	}
}

// Reflectivity computes R(θ) = A + B・sin²θ for row i; θ in radians
func (o Table) Reflectivity(i int, θ float64) float64 {
	s := math.Sin(θ)
	return o[i][A] + o[i][B]*s*s
}
