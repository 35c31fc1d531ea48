// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ArMethod selects the parameterisation of the Aki-Richards approximation
type ArMethod int

const (
	Avseth ArMethod = iota // ray-parameter form; see [2]
	AR                     // Vs/Vp ratio of averages form; see [1]
)

// String returns the name of the method
func (o ArMethod) String() string {
	switch o {
	case Avseth:
		return "avseth"
	case AR:
		return "ar"
	}
	return "unknown"
}

// ShueyMode selects the output of the Shuey approximation
type ShueyMode int

const (
	RTheta ShueyMode = iota // returns [R(θ)]
	R0G                     // returns [R0, G]
)

// String returns the name of the mode
func (o ShueyMode) String() string {
	switch o {
	case RTheta:
		return "rtheta"
	case R0G:
		return "R0_G"
	}
	return "unknown"
}

// Bortfeld computes the P-wave reflectivity with the approximation of Bortfeld (1961)
//   R(θ) = R0 + Rsh・sin²θ + Rp・tan²θ・sin²θ
//  Input:
//   thetai -- angle of incidence in radians
func Bortfeld(thetai, vp1, vs1, rho1, vp2, vs2, rho2 float64) float64 {
	c := NewContrast(vp1, vs1, rho1, vp2, vs2, rho2)
	rp := c.DVp / (2 * c.Vp)
	rr := c.DRho / (2 * c.Rho)
	k := math.Pow(2*c.Vs/c.Vp, 2)
	R0 := rp + rr
	Rsh := 0.5 * (c.DVp/c.Vp - k*c.DRho/(2*c.Rho) - 2*k*c.DVs/c.Vs)
	s2 := math.Pow(math.Sin(thetai), 2)
	return R0 + Rsh*s2 + rp*math.Pow(math.Tan(thetai), 2)*s2
}

// AkiRichards computes the P-wave reflectivity with the linearisation of Aki and Richards
//   R(θ) ≈ W - X・sin²θ + Y/cos²θ - Z・sin²θ
//  where θ is the average of the incidence and transmission angles
//  Input:
//   thetai -- angle of incidence in radians
//   method -- Avseth uses the ray parameter p = sin(θi)/Vp1 in X and Z: X = 2β²p²Δρ/ρ, Z = 4β²p²Δβ/β
//             AR uses the ratio of averages instead: X = 2(β/α)²sin²θ Δρ/ρ, Z = 4(β/α)²sin²θ Δβ/β
func AkiRichards(thetai, vp1, vs1, rho1, vp2, vs2, rho2 float64, method ArMethod) float64 {
	c := NewContrast(vp1, vs1, rho1, vp2, vs2, rho2)
	θt := math.Asin(vp2 * math.Sin(thetai) / vp1)
	θ := 0.5 * (thetai + θt)
	Y := c.DVp / (2 * math.Pow(math.Cos(θ), 2) * c.Vp)
	switch method {
	case Avseth:
		p := math.Sin(thetai) / vp1
		bp := c.Vs * c.Vs * p * p
		return 0.5*(1-4*bp)*c.DRho/c.Rho + Y - 4*bp*c.DVs/c.Vs
	case AR:
		k := c.VsVp * c.VsVp
		s2 := math.Pow(math.Sin(θ), 2)
		W := 0.5 * c.DRho / c.Rho
		X := 2 * k * c.DRho / c.Rho
		Z := 4 * k * c.DVs / c.Vs
		return W - X*s2 + Y - Z*s2
	}
	chk.Panic("Aki-Richards method %d is invalid", int(method))
	return 0
}

// ShueyTerms computes the intercept and gradient of the two-term Shuey approximation
//   R0 = (ΔVp/Vp + Δρ/ρ) / 2
//   G  = ΔVp/(2Vp) - 2(Vs/Vp)²・(Δρ/ρ + 2ΔVs/Vs)
func ShueyTerms(vp1, vs1, rho1, vp2, vs2, rho2 float64) (R0, G float64) {
	c := NewContrast(vp1, vs1, rho1, vp2, vs2, rho2)
	R0 = 0.5 * (c.DVp/c.Vp + c.DRho/c.Rho)
	G = 0.5*c.DVp/c.Vp - 2*c.Vs*c.Vs/(c.Vp*c.Vp)*(c.DRho/c.Rho+2*c.DVs/c.Vs)
	return
}

// Shuey computes the two-term Shuey approximation R(θ) = R0 + G・sin²θ
//  Input:
//   thetai -- angle of incidence in radians
//   mode   -- RTheta returns [R(θ)]; R0G returns [R0, G]
func Shuey(thetai, vp1, vs1, rho1, vp2, vs2, rho2 float64, mode ShueyMode) []float64 {
	R0, G := ShueyTerms(vp1, vs1, rho1, vp2, vs2, rho2)
	switch mode {
	case RTheta:
		return []float64{R0 + G*math.Pow(math.Sin(thetai), 2)}
	case R0G:
		return []float64{R0, G}
	}
	chk.Panic("Shuey mode %d is invalid", int(mode))
	return nil
}
