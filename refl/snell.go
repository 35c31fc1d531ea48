// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package refl implements plane-wave reflection and transmission coefficients at a flat
// interface between two elastic half-spaces
//  References:
//   [1] Aki K and Richards PG (1980) Quantitative Seismology. W.H. Freeman
//   [2] Avseth P, Mukerji T and Mavko G (2005) Quantitative Seismic Interpretation. Cambridge
//   [3] Bortfeld R (1961) Approximations to the reflection and transmission coefficients of
//       plane longitudinal and transverse waves. Geophysical Prospecting, 9(4) 485-502
//   [4] Shuey RT (1985) A simplification of the Zoeppritz equations. Geophysics, 50(4) 609-614
package refl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Units selects how incidence angles are read and how angles are returned
type Units int

const (
	Radians Units = iota // input in radians; output in radians
	Degrees              // input in degrees; output in degrees
	Deg2Rad              // input in degrees; output in radians
	Rad2Deg              // input in radians; output in degrees
)

// unitNames maps units to names
var unitNames = map[Units]string{
	Radians: "radians",
	Degrees: "degrees",
	Deg2Rad: "deg2rad",
	Rad2Deg: "rad2deg",
}

// String returns the name of the units
func (o Units) String() string {
	if s, ok := unitNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseUnits returns the units corresponding to name
func ParseUnits(name string) (Units, error) {
	for u, s := range unitNames {
		if s == name {
			return u, nil
		}
	}
	return 0, chk.Err("angle units %q are invalid; options are \"radians\", \"degrees\", \"deg2rad\" and \"rad2deg\"", name)
}

// inDegrees tells whether input angles are in degrees
func (o Units) inDegrees() (bool, error) {
	switch o {
	case Degrees, Deg2Rad:
		return true, nil
	case Radians, Rad2Deg:
		return false, nil
	}
	return false, chk.Err("angle units %d are invalid", int(o))
}

// outDegrees tells whether output angles are in degrees
func (o Units) outDegrees() bool {
	return o == Degrees || o == Rad2Deg
}

// Snell computes the reflected and transmitted angles of an incident P-wave
//  Output:
//   [0] -- angle of P-wave incidence (= angle of P-wave reflection)
//   [1] -- angle of P-wave transmission
//   [2] -- angle of S-wave reflection
//   [3] -- angle of S-wave transmission
//  Note: beyond the critical angle the arcsine is undefined and NaN is returned in place
func Snell(thetai, vp1, vs1, vp2, vs2 float64, units Units) (ang [4]float64, err error) {
	deg, err := units.inDegrees()
	if err != nil {
		return
	}
	θ := thetai
	if deg {
		θ = thetai * math.Pi / 180.0
	}
	sinθ := math.Sin(θ)
	ang[0] = θ
	ang[1] = math.Asin(vp2 * sinθ / vp1)
	ang[2] = math.Asin(vs1 * sinθ / vp1)
	ang[3] = math.Asin(vs2 * sinθ / vp1)
	if units.outDegrees() {
		for i := range ang {
			ang[i] *= 180.0 / math.Pi
		}
	}
	return
}

// snell computes the angles for an incidence angle in radians
func snell(θ, vp1, vs1, vp2, vs2 float64) [4]float64 {
	ang, err := Snell(θ, vp1, vs1, vp2, vs2, Radians)
	if err != nil {
		chk.Panic("%v", err)
	}
	return ang
}
