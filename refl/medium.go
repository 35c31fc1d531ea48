// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

// Medium holds the elastic description of a half-space
type Medium struct {
	Vp  float64 // P-wave velocity
	Vs  float64 // S-wave velocity
	Rho float64 // density
}

// Contrast holds average and contrast terms of an interface
type Contrast struct {
	Vp, Vs, Rho    float64 // averages
	VsVp           float64 // ratio of average velocities Vs/Vp
	DVp, DVs, DRho float64 // contrasts (bottom - top)
}

// CalcReflP computes the reflectivity parameters of an interface
//  Output: [Vp, Vs, Rho, Vs/Vp, ΔVp, ΔVs, ΔRho] where the first four are averages
func CalcReflP(vp1, vs1, rho1, vp2, vs2, rho2 float64) [7]float64 {
	c := NewContrast(vp1, vs1, rho1, vp2, vs2, rho2)
	return [7]float64{c.Vp, c.Vs, c.Rho, c.VsVp, c.DVp, c.DVs, c.DRho}
}

// NewContrast returns the average and contrast terms of an interface
func NewContrast(vp1, vs1, rho1, vp2, vs2, rho2 float64) (o Contrast) {
	o.Vp = 0.5 * (vp1 + vp2)
	o.Vs = 0.5 * (vs1 + vs2)
	o.Rho = 0.5 * (rho1 + rho2)
	o.VsVp = o.Vs / o.Vp
	o.DVp = vp2 - vp1
	o.DVs = vs2 - vs1
	o.DRho = rho2 - rho1
	return
}
