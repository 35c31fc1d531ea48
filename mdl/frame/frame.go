// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frame implements pressure-dependent dry-frame moduli and Gassmann fluid substitution
//  References:
//   [1] Amini H and Alvarez E (2014) Calibrating the pressure sensitivity of dry-frame moduli.
//   [2] MacBeth C (2004) A classification for the pressure-sensitivity properties of a sandstone rock frame.
//       Geophysics, 69(2) 497-510
//   [3] Gassmann F (1951) Über die Elastizität poröser Medien.
//       Vierteljahrsschrift der Naturforschenden Gesellschaft in Zürich, 96 1-23
package frame

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/trhallam/rockavo/mdl/mineral"
)

// DefaultCoefs returns the default critical porosity coefficients
//   c = [c0, c1, c2, c3, c4]
//   φc = c0 + c1・φ  if φ ≤ c4
//   φc = c2 + c3・φ  otherwise
func DefaultCoefs() [5]float64 {
	return [5]float64{0.3521, 0, 0.3521, 0, 0.1499}
}

// CritPhi computes the critical porosity
func CritPhi(phi float64, c [5]float64) float64 {
	if phi <= c[4] {
		return c[0] + c[1]*phi
	}
	return c[2] + c[3]*phi
}

// DryModulus computes the pressure-dependent dry-frame modulus (bulk or shear). The model is:
//   M = Mvrh・(1 - φ/φc)・(1 + E・exp(-Pe0/P)) / (1 + E・exp(-Pe/P))
//  Input:
//   peffInit -- effective initial reservoir pressure (overburden - initial pressure)
//   peff     -- effective current reservoir pressure (overburden - current pressure)
//   vrh      -- Voigt-Reuss-Hill matrix modulus
//   E        -- modulus stress sensitivity
//   P        -- characteristic pressure constant
//   phi      -- porosity
//   c        -- critical porosity coefficients
func DryModulus(peffInit, peff, vrh, E, P, phi float64, c [5]float64) float64 {
	base := vrh * (1.0 - phi/CritPhi(phi, c))
	return base * (1.0 + E*math.Exp(-peffInit/P)) / (1.0 + E*math.Exp(-peff/P))
}

// Gassmann computes the saturated bulk modulus from the dry-frame modulus
//   Ksat = Kdry + (1 - Kdry/Km)² / (φ/Kfl + (1-φ)/Km - Kdry/Km²)
//  Note: φ → 0 or Km → 0 are degenerate and give Inf/NaN; callers must guard
func Gassmann(Kdry, Kvrh, Kfluid, phi float64) float64 {
	a := 1.0 - Kdry/Kvrh
	return Kdry + a*a/(phi/Kfluid+(1.0-phi)/Kvrh-Kdry/(Kvrh*Kvrh))
}

// Stress holds the stress regime of the reservoir
//  Units: VsGrad in MPa/m; Depth in m (TVDSS); pressures in MPa
type Stress struct {
	VsGrad float64 // vertical (overburden) stress gradient
	Depth  float64 // depth
	InitP  float64 // initial reservoir pressure
	CurP   float64 // current reservoir pressure
}

// Overburden returns the vertical stress
func (o Stress) Overburden() float64 { return o.VsGrad * o.Depth }

// EffInit returns the effective initial pressure
func (o Stress) EffInit() float64 { return o.Overburden() - o.InitP }

// EffCur returns the effective current pressure
func (o Stress) EffCur() float64 { return o.Overburden() - o.CurP }

// Sensitivity holds the stress sensitivity parameters of the dry-frame moduli
type Sensitivity struct {
	Ek float64 // bulk modulus stress sensitivity
	Pk float64 // bulk modulus characteristic pressure
	Eg float64 // shear modulus stress sensitivity
	Pg float64 // shear modulus characteristic pressure
}

// DryFrame implements the dry rock frame of a shale/non-shale mineral mix
type DryFrame struct {

	// input
	Name     string          // name of rock
	NonShale mineral.Mineral // non-shale mineral
	Shale    mineral.Mineral // shale mineral
	Vshale   float64         // volume fraction of shale
	Phi      float64         // porosity
	C        [5]float64      // critical porosity coefficients

	// derived: matrix
	FracShale    float64 // fraction of the matrix that is shale = Vshale/(1-φ)
	FracNonShale float64 // fraction of the matrix that is not shale = (1-Vshale-φ)/(1-φ)
	Rho          float64 // matrix density weighted by the fractions
	KmVoigt      float64 // bulk modulus of matrix: Voigt bound
	KmReuss      float64 // bulk modulus of matrix: Reuss bound
	KmVRH        float64 // bulk modulus of matrix: Voigt-Reuss-Hill
	GmVoigt      float64 // shear modulus of matrix: Voigt bound
	GmReuss      float64 // shear modulus of matrix: Reuss bound
	GmVRH        float64 // shear modulus of matrix: Voigt-Reuss-Hill

	// derived: pressure dependent
	Stress Stress      // stress regime used by the last computation
	Sens   Sensitivity // stress sensitivity used by the last computation
	Kdry   float64     // dry-frame bulk modulus
	Gdry   float64     // dry-frame shear modulus

	// auxiliary
	hasMatrix bool // ComputeMatrixModuli was called
	hasDry    bool // ComputeDryFrameModuli was called
}

// New returns a new dry frame with the default critical porosity coefficients
func New(name string, nonshale, shale mineral.Mineral, vshale, phi float64) (o *DryFrame) {
	o = &DryFrame{Name: name, NonShale: nonshale, Shale: shale, Vshale: vshale, Phi: phi, C: DefaultCoefs()}
	o.fractions()
	return
}

// Init initialises the porosity, shale volume and pressure sensitivity from parameters
//  Note: minerals must be set beforehand
func (o *DryFrame) Init(prms dbf.Params) (err error) {
	o.C = DefaultCoefs()
	o.Sens = Sensitivity{}
	for _, p := range prms {
		switch p.N {
		case "phi":
			o.Phi = p.V
		case "vclay":
			o.Vshale = p.V
		case "dryEk":
			o.Sens.Ek = p.V
		case "dryPk":
			o.Sens.Pk = p.V
		case "dryEg":
			o.Sens.Eg = p.V
		case "dryPg":
			o.Sens.Pg = p.V
		}
	}
	if o.Phi < 0 || o.Phi >= 1 {
		return chk.Err("dry frame %q: porosity phi = %g is invalid", o.Name, o.Phi)
	}
	if o.Vshale < 0 || o.Vshale+o.Phi > 1 {
		return chk.Err("dry frame %q: shale volume vclay = %g is invalid for phi = %g", o.Name, o.Vshale, o.Phi)
	}
	if o.Sens.Pk <= 0 || o.Sens.Pg <= 0 {
		return chk.Err("dry frame %q: characteristic pressures must be positive. dryPk=%g dryPg=%g", o.Name, o.Sens.Pk, o.Sens.Pg)
	}
	o.fractions()
	return
}

// GetPrms gets (an example of) parameters
func (o DryFrame) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "phi", V: 0.2},    // [-]
			&dbf.P{N: "vclay", V: 0.05}, // [-]
			&dbf.P{N: "dryEk", V: 1.8},  // [-]
			&dbf.P{N: "dryPk", V: 12},   // [MPa]
			&dbf.P{N: "dryEg", V: 25},   // [-]
			&dbf.P{N: "dryPg", V: 8},    // [MPa]
		}
	}
	return dbf.Params{
		&dbf.P{N: "phi", V: o.Phi},
		&dbf.P{N: "vclay", V: o.Vshale},
		&dbf.P{N: "dryEk", V: o.Sens.Ek},
		&dbf.P{N: "dryPk", V: o.Sens.Pk},
		&dbf.P{N: "dryEg", V: o.Sens.Eg},
		&dbf.P{N: "dryPg", V: o.Sens.Pg},
	}
}

// ComputeMatrixModuli computes the Voigt-Reuss-Hill moduli of the mineral matrix
func (o *DryFrame) ComputeMatrixModuli() {
	o.fractions()
	o.KmVoigt, o.KmReuss, o.KmVRH = mineral.VRH(o.FracShale, o.Shale.K, o.FracNonShale, o.NonShale.K)
	o.GmVoigt, o.GmReuss, o.GmVRH = mineral.VRH(o.FracShale, o.Shale.Mu, o.FracNonShale, o.NonShale.Mu)
	o.hasMatrix = true
}

// ComputeDryFrameModuli computes the dry-frame moduli for a stress regime
//  Note: ComputeMatrixModuli is called first if it has not been called yet
func (o *DryFrame) ComputeDryFrameModuli(stress Stress, sens Sensitivity) {
	if !o.hasMatrix {
		o.ComputeMatrixModuli()
	}
	o.Stress, o.Sens = stress, sens
	o.Kdry, o.Gdry = o.DryModuliAt(stress.CurP)
	o.hasDry = true
}

// UpdatePressure recomputes the dry-frame moduli for a new current reservoir pressure
//  using the stored stress regime and sensitivity. o is modified in place.
func (o *DryFrame) UpdatePressure(newCurP float64) (err error) {
	if !o.hasDry {
		return chk.Err("dry frame %q: ComputeDryFrameModuli must be called before UpdatePressure", o.Name)
	}
	o.Stress.CurP = newCurP
	o.Kdry, o.Gdry = o.DryModuliAt(newCurP)
	return
}

// DryModuliAt computes the dry-frame moduli at another current pressure without modifying o
func (o DryFrame) DryModuliAt(curP float64) (Kdry, Gdry float64) {
	s := o.Stress
	s.CurP = curP
	pe0, pe := s.EffInit(), s.EffCur()
	Kdry = DryModulus(pe0, pe, o.KmVRH, o.Sens.Ek, o.Sens.Pk, o.Phi, o.C)
	Gdry = DryModulus(pe0, pe, o.GmVRH, o.Sens.Eg, o.Sens.Pg, o.Phi, o.C)
	return
}

// Ready tells whether the dry-frame moduli have been computed
func (o DryFrame) Ready() bool { return o.hasDry }

// KSat computes the saturated bulk modulus for a fluid bulk modulus
func (o DryFrame) KSat(Kfluid float64) float64 {
	return Gassmann(o.Kdry, o.KmVRH, Kfluid, o.Phi)
}

// BulkDensity computes the bulk density for a fluid density
//   ρb = ρm + ρfl・φ
func (o DryFrame) BulkDensity(rhoFluid float64) float64 {
	return o.Rho + rhoFluid*o.Phi
}

// Clone returns an independent copy of this frame
func (o *DryFrame) Clone() *DryFrame {
	c := *o
	return &c
}

// fractions computes the matrix fractions and density
func (o *DryFrame) fractions() {
	o.FracShale = o.Vshale / (1.0 - o.Phi)
	o.FracNonShale = (1.0 - o.Vshale - o.Phi) / (1.0 - o.Phi)
	o.Rho = o.FracShale*o.Shale.Rho + o.FracNonShale*o.NonShale.Rho
}
