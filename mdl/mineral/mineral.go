// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mineral implements mineral end-members and their Voigt-Reuss-Hill mixing
package mineral

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Mineral holds the elastic properties of a mineral end-member
//  Units: K and Mu in GPa; Rho in g/cc
type Mineral struct {
	Name string  // name of mineral; e.g. "clay", "quartz"
	K    float64 // bulk modulus
	Mu   float64 // shear modulus
	Rho  float64 // density
}

// New returns a new mineral
func New(name string, K, mu, rho float64) Mineral {
	return Mineral{Name: name, K: K, Mu: mu, Rho: rho}
}

// Init initialises this structure
func (o *Mineral) Init(prms dbf.Params) (err error) {
	var found [3]bool
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K, found[0] = p.V, true
		case "mu":
			o.Mu, found[1] = p.V, true
		case "rho":
			o.Rho, found[2] = p.V, true
		}
	}
	for i, key := range []string{"K", "mu", "rho"} {
		if !found[i] {
			return chk.Err("mineral %q: parameter %q is missing", o.Name, key)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns quartz-like parameters; otherwise returns current parameters
func (o Mineral) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "K", V: 70},     // [GPa]
			&dbf.P{N: "mu", V: 35},    // [GPa]
			&dbf.P{N: "rho", V: 2.74}, // [g/cc]
		}
	}
	return dbf.Params{
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "rho", V: o.Rho},
	}
}

// VRH computes the Voigt, Reuss and Voigt-Reuss-Hill averages of a two-phase mix
//   voigt = fA・mA + fB・mB
//   reuss = 1 / (fA/mA + fB/mB)
//   vrh   = (voigt + reuss) / 2
//  Note: a zero modulus yields Inf/NaN in reuss and vrh; it is not recovered here
func VRH(fracA, modA, fracB, modB float64) (voigt, reuss, vrh float64) {
	voigt = fracA*modA + fracB*modB
	reuss = 1.0 / (fracA/modA + fracB/modB)
	vrh = 0.5 * (voigt + reuss)
	return
}
