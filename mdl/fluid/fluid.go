// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for mixed reservoir fluids (water, oil and gas)
package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Phase holds the properties of one fluid phase
//  Units: K in GPa; Rho in g/cc; S is a fraction of the pore volume
type Phase struct {
	K   float64 // bulk modulus
	Rho float64 // density
	S   float64 // saturation
}

// Mix mixes three phases into an effective fluid. The model is:
//   K = 1 / Σ(Sᵢ/Kᵢ)   (Reuss or Wood average)
//   R = Σ(Sᵢ・Rᵢ)
//  Note: Kᵢ = 0 gives Inf/NaN; saturations are not required to add up to one
func Mix(water, oil, gas Phase) (K, rho float64) {
	K = 1.0 / (water.S/water.K + oil.S/oil.K + gas.S/gas.K)
	rho = water.S*water.Rho + oil.S*oil.Rho + gas.S*gas.Rho
	return
}

// Model implements a three-phase reservoir fluid
type Model struct {

	// input
	Name  string // name of fluid mix
	Water Phase  // water phase
	Oil   Phase  // oil phase
	Gas   Phase  // gas phase

	// derived
	K   float64 // mixed bulk modulus
	Rho float64 // mixed density
}

// New returns a new fluid with mixed properties already computed
func New(name string, water, oil, gas Phase) (o *Model) {
	o = &Model{Name: name, Water: water, Oil: oil, Gas: gas}
	o.mix()
	return
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "kw":
			o.Water.K = p.V
		case "rhow":
			o.Water.Rho = p.V
		case "sw":
			o.Water.S = p.V
		case "ko":
			o.Oil.K = p.V
		case "rhoo":
			o.Oil.Rho = p.V
		case "so":
			o.Oil.S = p.V
		case "kg":
			o.Gas.K = p.V
		case "rhog":
			o.Gas.Rho = p.V
		case "sg":
			o.Gas.S = p.V
		}
	}
	if o.Water.K <= 0 || o.Oil.K <= 0 || o.Gas.K <= 0 {
		return chk.Err("fluid %q: bulk moduli of all phases must be positive. kw=%g ko=%g kg=%g", o.Name, o.Water.K, o.Oil.K, o.Gas.K)
	}
	o.mix()
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns brine/oil/gas properties with Sw=0.5, So=Sg=0.25; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kw", V: 2.96},    // [GPa]
			&dbf.P{N: "rhow", V: 1.056}, // [g/cc]
			&dbf.P{N: "sw", V: 0.5},     // [-]
			&dbf.P{N: "ko", V: 0.636},   // [GPa]
			&dbf.P{N: "rhoo", V: 0.686}, // [g/cc]
			&dbf.P{N: "so", V: 0.25},    // [-]
			&dbf.P{N: "kg", V: 0.017},   // [GPa]
			&dbf.P{N: "rhog", V: 0.145}, // [g/cc]
			&dbf.P{N: "sg", V: 0.25},    // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "kw", V: o.Water.K},
		&dbf.P{N: "rhow", V: o.Water.Rho},
		&dbf.P{N: "sw", V: o.Water.S},
		&dbf.P{N: "ko", V: o.Oil.K},
		&dbf.P{N: "rhoo", V: o.Oil.Rho},
		&dbf.P{N: "so", V: o.Oil.S},
		&dbf.P{N: "kg", V: o.Gas.K},
		&dbf.P{N: "rhog", V: o.Gas.Rho},
		&dbf.P{N: "sg", V: o.Gas.S},
	}
}

// Ks returns the bulk moduli of water, oil and gas
func (o Model) Ks() [3]float64 { return [3]float64{o.Water.K, o.Oil.K, o.Gas.K} }

// Rhos returns the densities of water, oil and gas
func (o Model) Rhos() [3]float64 { return [3]float64{o.Water.Rho, o.Oil.Rho, o.Gas.Rho} }

// Sats returns the saturations of water, oil and gas
func (o Model) Sats() [3]float64 { return [3]float64{o.Water.S, o.Oil.S, o.Gas.S} }

// UpdateSaturation sets new saturations and recomputes the mixed properties
//  Note: modifies o in place; callers sweeping concurrently must work on Clone()
func (o *Model) UpdateSaturation(sw, so, sg float64) {
	o.Water.S, o.Oil.S, o.Gas.S = sw, so, sg
	o.mix()
}

// Clone returns an independent copy of this fluid
func (o *Model) Clone() *Model {
	c := *o
	return &c
}

// CheckSaturation checks that the saturations add up to one within tol
func (o Model) CheckSaturation(tol float64) error {
	sum := o.Water.S + o.Oil.S + o.Gas.S
	if math.Abs(sum-1.0) > tol {
		return chk.Err("fluid %q: saturations must add up to 1. Sw+So+Sg = %g", o.Name, sum)
	}
	return nil
}

// mix computes the mixed bulk modulus and density
func (o *Model) mix() {
	o.K, o.Rho = Mix(o.Water, o.Oil, o.Gas)
}
