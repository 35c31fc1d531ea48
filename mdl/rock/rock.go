// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rock implements fluid saturated rocks and their elastic properties
//  Units: moduli in GPa and densities in g/cc give velocities in km/s
package rock

import (
	"math"

	"github.com/trhallam/rockavo/mdl/fluid"
	"github.com/trhallam/rockavo/mdl/frame"
	"github.com/trhallam/rockavo/refl"
)

// Vs computes the S-wave velocity
//   Vs = sqrt(μ/ρ)
//  Note: negative input gives NaN
func Vs(mu, rho float64) float64 {
	return math.Sqrt(mu / rho)
}

// Vp computes the P-wave velocity
//   Vp = sqrt((K + 4μ/3)/ρ)
//  Note: negative input gives NaN
func Vp(K, mu, rho float64) float64 {
	return math.Sqrt((K + 4.0*mu/3.0) / rho)
}

// Rock pairs a dry frame with a pore fluid
type Rock struct {

	// input
	Frame *frame.DryFrame // dry frame; must have the dry moduli computed
	Fluid *fluid.Model    // pore fluid

	// derived
	Ksat float64 // saturated bulk modulus (Gassmann)
	Rho  float64 // bulk density
	Vp   float64 // P-wave velocity
	Vs   float64 // S-wave velocity
	Pimp float64 // acoustic impedance
	Simp float64 // shear impedance
	VpVs float64 // Vp/Vs ratio
	LR   float64 // λρ = Pimp² - 2 Simp²
	MR   float64 // μρ = Simp²
}

// New returns a new saturated rock
func New(frm *frame.DryFrame, fld *fluid.Model) (o *Rock) {
	o = &Rock{Frame: frm, Fluid: fld}
	o.Update()
	return
}

// Update recomputes all derived quantities after the frame or the fluid has changed
func (o *Rock) Update() {
	o.Ksat = o.Frame.KSat(o.Fluid.K)
	o.Rho = o.Frame.BulkDensity(o.Fluid.Rho)
	o.Vp = Vp(o.Ksat, o.Frame.Gdry, o.Rho)
	o.Vs = Vs(o.Frame.Gdry, o.Rho)
	o.Pimp = o.Vp * o.Rho
	o.Simp = o.Vs * o.Rho
	o.VpVs = o.Vp / o.Vs
	o.MR = o.Simp * o.Simp
	o.LR = o.Pimp*o.Pimp - 2.0*o.MR
}

// Medium returns the elastic half-space described by this rock
func (o Rock) Medium() refl.Medium {
	return refl.Medium{Vp: o.Vp, Vs: o.Vs, Rho: o.Rho}
}

// Name returns the names of the frame and the fluid
func (o Rock) Name() string {
	return o.Frame.Name + "+" + o.Fluid.Name
}
