// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to check complete scenarios against reference results
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/inp"
	"github.com/trhallam/rockavo/mdl/rock"
	"github.com/trhallam/rockavo/refl"
)

// Elastic holds the elastic properties of one saturated rock
type Elastic struct {
	Vp   float64 `json:"vp"`   // P-wave velocity
	Vs   float64 `json:"vs"`   // S-wave velocity
	Rho  float64 `json:"rho"`  // bulk density
	Pimp float64 `json:"pimp"` // acoustic impedance
}

// Results holds reference results for one pressure scenario
type Results struct {
	Pressure   string               `json:"pressure"`   // name of pressure scenario
	Overburden Elastic              `json:"overburden"` // overburden rock
	Reservoir  Elastic              `json:"reservoir"`  // reservoir rock
	Sweep      map[string][]float64 `json:"sweep"`      // sweep key => values; must contain "ang"
}

// ResultsSet is a set of comparison results
type ResultsSet []*Results

// ReadResults reads a .cmp file
func ReadResults(cmpfname string) (set ResultsSet, err error) {
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		return
	}
	err = json.Unmarshal(buf, &set)
	return
}

// CompareResults runs a scenario once per pressure scenario in the .cmp file and compares
// the rock properties and the angle sweep against the reference values
func CompareResults(tst *testing.T, scenariofile, cmpfname string, tolr, tolR float64, verbose bool) {

	// scenario
	sc, err := inp.ReadScenario(scenariofile)
	if err != nil {
		chk.Panic("cannot read scenario:\n%v", err)
	}

	// read file with comparison results
	cmpSet, err := ReadResults(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadResults failed:%v\n", err)
		return
	}

	// run comparisons
	for _, cmp := range cmpSet {
		if verbose {
			io.PfYel("\n\npressure = %s . . . . . . . . . . . . . . . . . . . . . . . . . . . . .\n", cmp.Pressure)
		}
		sc.Pressure = cmp.Pressure
		ob, res, err := sc.Build()
		if err != nil {
			tst.Errorf("CompareResults: Build failed:%v\n", err)
			return
		}

		// rocks
		if verbose {
			io.Pfgreen(". . . checking rocks . . .\n")
		}
		compareRock(tst, "overburden", tolr, ob, cmp.Overburden, verbose)
		compareRock(tst, "reservoir", tolr, res, cmp.Reservoir, verbose)

		// sweep
		ang := cmp.Sweep[refl.KeyAng]
		if len(ang) < 2 {
			tst.Errorf("CompareResults: reference sweep needs at least 2 angles\n")
			return
		}
		sw, err := refl.AngleSweep(ang[0], ang[len(ang)-1], len(ang), ob.Medium(), res.Medium())
		if err != nil {
			tst.Errorf("CompareResults: AngleSweep failed:%v\n", err)
			return
		}
		if verbose {
			io.Pfgreen(". . . checking sweep . . .\n")
		}
		chk.Array(tst, "ang", 1e-12, sw.Ang, ang)
		for key, vals := range cmp.Sweep {
			if key == refl.KeyAng {
				continue
			}
			got := sw.Column(key)
			if got == nil {
				tst.Errorf("CompareResults: sweep key %q is not available\n", key)
				return
			}
			for i, v := range vals {
				chk.AnaNum(tst, io.Sf("%s(%g)", key, ang[i]), tolR, got[i], v, verbose)
			}
		}
	}
}

// compareRock checks one rock against reference properties
func compareRock(tst *testing.T, name string, tol float64, r *rock.Rock, e Elastic, verbose bool) {
	if verbose {
		io.Pforan("%s = %s\n", name, r.Name())
	}
	chk.AnaNum(tst, name+".vp  ", tol, r.Vp, e.Vp, verbose)
	chk.AnaNum(tst, name+".vs  ", tol, r.Vs, e.Vs, verbose)
	chk.AnaNum(tst, name+".rho ", tol, r.Rho, e.Rho, verbose)
	chk.AnaNum(tst, name+".pimp", tol, r.Pimp, e.Pimp, verbose)
}
