// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a scenario JSON file and the rock,
// fluid and pressure tables it refers to
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/trhallam/rockavo/mdl/rock"
)

// Selection holds the names of a rock and a fluid
type Selection struct {
	Rock  string `json:"rock"`  // name of rock in the rocks table
	Fluid string `json:"fluid"` // name of fluid in the fluids table
}

// SweepData holds the angles of the reflectivity sweep
type SweepData struct {
	Amin float64 `json:"amin"` // minimum angle of incidence [deg]
	Amax float64 `json:"amax"` // maximum angle of incidence [deg]
	N    int     `json:"n"`    // number of angles
}

// GridData holds the settings of the 4D grid
type GridData struct {
	N        int     `json:"n"`        // number of pressures and saturations
	Pmin     float64 `json:"pmin"`     // minimum reservoir pressure [MPa]
	Pmax     float64 `json:"pmax"`     // maximum reservoir pressure [MPa]
	Absolute bool    `json:"absolute"` // image holds impedances instead of % changes
	Nworkers int     `json:"nworkers"` // number of concurrent rows; 0 means all CPUs
}

// AvoData holds the settings of the Monte-Carlo AVO models
type AvoData struct {
	Nsim int     `json:"nsim"` // number of realizations
	Std  float64 `json:"std"`  // scale factor of standard deviations
	Var  float64 `json:"var"`  // variation fraction around the seed quantiles
	VpVs float64 `json:"vpvs"` // background Vp/Vs of the Fatti terms
	Seed uint64  `json:"seed"` // seed of the random numbers generator
}

// Scenario holds all input data
type Scenario struct {

	// input
	Desc       string    `json:"desc"`       // description of scenario
	RocksFile  string    `json:"rocks"`      // rocks table; relative to the scenario file
	FluidsFile string    `json:"fluids"`     // fluids table; relative to the scenario file
	PresFile   string    `json:"pres"`       // pressure scenarios table; relative to the scenario file
	Depth      float64   `json:"depth"`      // depth [m TVDSS]
	Pressure   string    `json:"pressure"`   // name of pressure scenario
	Overburden Selection `json:"overburden"` // overburden rock and fluid
	Reservoir  Selection `json:"reservoir"`  // reservoir rock and fluid
	Sweep      SweepData `json:"sweep"`      // reflectivity sweep
	Grid       GridData  `json:"grid"`       // 4D grid
	Avo        AvoData   `json:"avo"`        // Monte-Carlo AVO

	// derived
	Key    string     // filename key
	Dir    string     // directory of the scenario file
	Rocks  []RockRec  // rocks table
	Fluids []FluidRec // fluids table
	Pres   []PresRec  // pressure scenarios table
}

// SetDefault sets default values
func (o *Scenario) SetDefault() {
	o.Depth = 3180
	o.Sweep = SweepData{Amin: 0, Amax: 40, N: 41}
	o.Grid = GridData{N: 50, Pmin: 9, Pmax: 15}
	o.Avo = AvoData{Nsim: 200, Std: 1.5, Var: 0.4, VpVs: 2, Seed: 1234}
}

// ReadScenario reads a scenario JSON file and the tables it refers to
func ReadScenario(path string) (o *Scenario, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read scenario file %q: %v", path, err)
	}

	// decode
	o = new(Scenario)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal scenario file %q: %v", path, err)
	}
	o.Dir = filepath.Dir(os.ExpandEnv(path))
	o.Key = io.FnKey(filepath.Base(path))

	// tables
	o.Rocks, err = ReadRocks(o.path(o.RocksFile))
	if err != nil {
		return
	}
	o.Fluids, err = ReadFluids(o.path(o.FluidsFile))
	if err != nil {
		return
	}
	o.Pres, err = ReadPres(o.path(o.PresFile))
	if err != nil {
		return
	}
	err = o.check()
	return
}

// Rock returns the rock record named name
func (o Scenario) Rock(name string) (rec RockRec, err error) {
	for _, r := range o.Rocks {
		if r.Name == name {
			return r, nil
		}
	}
	return rec, chk.Err("cannot find rock %q", name)
}

// Fluid returns the fluid record named name
func (o Scenario) Fluid(name string) (rec FluidRec, err error) {
	for _, r := range o.Fluids {
		if r.Name == name {
			return r, nil
		}
	}
	return rec, chk.Err("cannot find fluid %q", name)
}

// Profile returns the pressure scenario named name; an empty name selects the first one
func (o Scenario) Profile(name string) (rec PresRec, err error) {
	if name == "" && len(o.Pres) > 0 {
		return o.Pres[0], nil
	}
	for _, r := range o.Pres {
		if r.Name == name {
			return r, nil
		}
	}
	return rec, chk.Err("cannot find pressure scenario %q", name)
}

// Build builds the overburden and reservoir rocks
func (o Scenario) Build() (overburden, reservoir *rock.Rock, err error) {
	pres, err := o.Profile(o.Pressure)
	if err != nil {
		return
	}
	overburden, err = o.build(o.Overburden, pres)
	if err != nil {
		return
	}
	reservoir, err = o.build(o.Reservoir, pres)
	return
}

// build builds one rock of the scenario
func (o Scenario) build(sel Selection, pres PresRec) (r *rock.Rock, err error) {
	rr, err := o.Rock(sel.Rock)
	if err != nil {
		return
	}
	fr, err := o.Fluid(sel.Fluid)
	if err != nil {
		return
	}
	frm, err := rr.DryFrame(pres, o.Depth)
	if err != nil {
		return
	}
	fld, err := fr.Fluid()
	if err != nil {
		return
	}
	return rock.New(frm, fld), nil
}

// path returns fn relative to the directory of the scenario file
func (o Scenario) path(fn string) string {
	fn = os.ExpandEnv(fn)
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.Dir, fn)
}

// check checks the settings
func (o Scenario) check() (err error) {
	if o.Depth <= 0 {
		return chk.Err("depth must be positive. depth = %g is invalid", o.Depth)
	}
	if o.Sweep.N < 2 || o.Sweep.Amax < o.Sweep.Amin {
		return chk.Err("sweep must have n ≥ 2 and amax ≥ amin. %+v is invalid", o.Sweep)
	}
	if o.Grid.N < 2 || o.Grid.Pmax <= o.Grid.Pmin {
		return chk.Err("grid must have n ≥ 2 and pmax > pmin. %+v is invalid", o.Grid)
	}
	if o.Avo.Nsim < 1 {
		return chk.Err("avo must have nsim ≥ 1. nsim = %d is invalid", o.Avo.Nsim)
	}
	return
}
