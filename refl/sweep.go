// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// sweep keys
const (
	KeyAng       = "ang"
	KeyZoepRp    = "zoepRp"
	KeyZoepTp    = "zoepTp"
	KeyZoepRs    = "zoepRs"
	KeyZoepTs    = "zoepTs"
	KeyBortfeld  = "bortfeldRp"
	KeyArAvseth  = "ar_avsethRp"
	KeyArAr      = "ar_arRp"
	KeyShuey     = "shuey"
	KeyZoepFullR = "zoepFullRp"
)

// SweepKeys returns all keys of an angle sweep in table order
func SweepKeys() []string {
	return []string{KeyAng, KeyZoepRp, KeyZoepTp, KeyZoepRs, KeyZoepTs, KeyBortfeld, KeyArAvseth, KeyArAr, KeyShuey, KeyZoepFullR}
}

// Sweep holds reflectivity models evaluated over a range of incidence angles
type Sweep struct {
	Top, Bot Medium               // half-spaces
	Ang      []float64            // incidence angles in degrees
	Cols     map[string][]float64 // key => values; one value per angle
}

// AngleSweep evaluates the Zoeppritz solutions and all approximations from θmin to θmax (degrees)
//  Note: n ≥ 2 angles including both limits
func AngleSweep(θmin, θmax float64, n int, top, bot Medium) (o *Sweep, err error) {
	if n < 2 {
		return nil, chk.Err("angle sweep needs at least 2 angles. n = %d is invalid", n)
	}
	if θmax < θmin {
		return nil, chk.Err("angle sweep: θmax = %g must not be smaller than θmin = %g", θmax, θmin)
	}
	o = &Sweep{Top: top, Bot: bot, Ang: utl.LinSpace(θmin, θmax, n), Cols: make(map[string][]float64)}
	for _, key := range SweepKeys() {
		o.Cols[key] = make([]float64, n)
	}
	copy(o.Cols[KeyAng], o.Ang)
	m1, m2 := top, bot
	for i, deg := range o.Ang {
		a := deg * math.Pi / 180.0
		z := ZoeppritzPdown(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho)
		o.Cols[KeyZoepRp][i] = z[0]
		o.Cols[KeyZoepTp][i] = z[1]
		o.Cols[KeyZoepRs][i] = z[2]
		o.Cols[KeyZoepTs][i] = z[3]
		o.Cols[KeyBortfeld][i] = Bortfeld(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho)
		o.Cols[KeyArAvseth][i] = AkiRichards(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho, Avseth)
		o.Cols[KeyArAr][i] = AkiRichards(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho, AR)
		o.Cols[KeyShuey][i] = Shuey(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho, RTheta)[0]
		full, e := ZoeppritzFull(a, m1.Vp, m1.Vs, m1.Rho, m2.Vp, m2.Vs, m2.Rho)
		if e != nil {
			full[0] = math.NaN()
		}
		o.Cols[KeyZoepFullR][i] = full[0]
	}
	return
}

// Column returns the values of key or nil if key is not available
func (o Sweep) Column(key string) []float64 {
	return o.Cols[key]
}
