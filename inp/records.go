// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/trhallam/rockavo/mdl/fluid"
	"github.com/trhallam/rockavo/mdl/frame"
	"github.com/trhallam/rockavo/mdl/mineral"
)

// column names
var (
	RockCols  = []string{"kclay", "muclay", "rhoclay", "knonclay", "munonclay", "rhononclay", "vclay", "phi", "dryEk", "dryPk", "dryEg", "dryPg"}
	FluidCols = []string{"ko", "rhoo", "kw", "rhow", "kg", "rhog", "so", "sw", "sg"}
	PresCols  = []string{"OB_Grad", "init_Pres", "curr_Pres"}
)

// RockRec holds the minerals, porosity and stress sensitivity of a rock
type RockRec struct {
	Name       string
	Kclay      float64 // bulk modulus of clay [GPa]
	Muclay     float64 // shear modulus of clay [GPa]
	Rhoclay    float64 // density of clay [g/cc]
	Knonclay   float64 // bulk modulus of non-clay mineral [GPa]
	Munonclay  float64 // shear modulus of non-clay mineral [GPa]
	Rhononclay float64 // density of non-clay mineral [g/cc]
	Vclay      float64 // volume of clay
	Phi        float64 // porosity
	DryEk      float64 // bulk modulus stress sensitivity
	DryPk      float64 // bulk modulus characteristic pressure [MPa]
	DryEg      float64 // shear modulus stress sensitivity
	DryPg      float64 // shear modulus characteristic pressure [MPa]
}

// FluidRec holds the phases of a fluid mix
type FluidRec struct {
	Name string
	Ko   float64 // bulk modulus of oil [GPa]
	Rhoo float64 // density of oil [g/cc]
	Kw   float64 // bulk modulus of water [GPa]
	Rhow float64 // density of water [g/cc]
	Kg   float64 // bulk modulus of gas [GPa]
	Rhog float64 // density of gas [g/cc]
	So   float64 // oil saturation
	Sw   float64 // water saturation
	Sg   float64 // gas saturation
}

// PresRec holds a pressure scenario
type PresRec struct {
	Name     string
	OBGrad   float64 // vertical stress gradient [MPa/m]
	InitPres float64 // initial reservoir pressure [MPa]
	CurrPres float64 // current reservoir pressure [MPa]
}

// ReadRocks reads rock records from a table file
func ReadRocks(path string) (recs []RockRec, err error) {
	t, err := ReadTable(path)
	if err != nil {
		return
	}
	return RocksFromTable(t)
}

// ReadFluids reads fluid records from a table file
func ReadFluids(path string) (recs []FluidRec, err error) {
	t, err := ReadTable(path)
	if err != nil {
		return
	}
	return FluidsFromTable(t)
}

// ReadPres reads pressure records from a table file
func ReadPres(path string) (recs []PresRec, err error) {
	t, err := ReadTable(path)
	if err != nil {
		return
	}
	return PresFromTable(t)
}

// RocksFromTable converts the rows of t into rock records
func RocksFromTable(t *Table) (recs []RockRec, err error) {
	for i := 0; i < t.Nrows(); i++ {
		name, v, e := row(t, i, RockCols)
		if e != nil {
			return nil, e
		}
		recs = append(recs, RockRec{name, v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10], v[11]})
	}
	return
}

// FluidsFromTable converts the rows of t into fluid records
func FluidsFromTable(t *Table) (recs []FluidRec, err error) {
	for i := 0; i < t.Nrows(); i++ {
		name, v, e := row(t, i, FluidCols)
		if e != nil {
			return nil, e
		}
		recs = append(recs, FluidRec{name, v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8]})
	}
	return
}

// PresFromTable converts the rows of t into pressure records
func PresFromTable(t *Table) (recs []PresRec, err error) {
	for i := 0; i < t.Nrows(); i++ {
		name, v, e := row(t, i, PresCols)
		if e != nil {
			return nil, e
		}
		recs = append(recs, PresRec{name, v[0], v[1], v[2]})
	}
	return
}

// Stress returns the stress regime at depth
func (o PresRec) Stress(depth float64) frame.Stress {
	return frame.Stress{VsGrad: o.OBGrad, Depth: depth, InitP: o.InitPres, CurP: o.CurrPres}
}

// Minerals returns the non-clay and clay minerals
func (o RockRec) Minerals() (nonshale, shale mineral.Mineral) {
	nonshale = mineral.New(o.Name+"_nonclay", o.Knonclay, o.Munonclay, o.Rhononclay)
	shale = mineral.New(o.Name+"_clay", o.Kclay, o.Muclay, o.Rhoclay)
	return
}

// Prms returns the dry-frame parameters
func (o RockRec) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "phi", V: o.Phi},
		&dbf.P{N: "vclay", V: o.Vclay},
		&dbf.P{N: "dryEk", V: o.DryEk},
		&dbf.P{N: "dryPk", V: o.DryPk},
		&dbf.P{N: "dryEg", V: o.DryEg},
		&dbf.P{N: "dryPg", V: o.DryPg},
	}
}

// DryFrame builds the dry frame and computes its moduli for a pressure scenario at depth
func (o RockRec) DryFrame(pres PresRec, depth float64) (frm *frame.DryFrame, err error) {
	nonshale, shale := o.Minerals()
	frm = frame.New(o.Name, nonshale, shale, o.Vclay, o.Phi)
	err = frm.Init(o.Prms())
	if err != nil {
		return nil, err
	}
	frm.ComputeMatrixModuli()
	frm.ComputeDryFrameModuli(pres.Stress(depth), frm.Sens)
	return
}

// Prms returns the fluid parameters
func (o FluidRec) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "kw", V: o.Kw},
		&dbf.P{N: "rhow", V: o.Rhow},
		&dbf.P{N: "sw", V: o.Sw},
		&dbf.P{N: "ko", V: o.Ko},
		&dbf.P{N: "rhoo", V: o.Rhoo},
		&dbf.P{N: "so", V: o.So},
		&dbf.P{N: "kg", V: o.Kg},
		&dbf.P{N: "rhog", V: o.Rhog},
		&dbf.P{N: "sg", V: o.Sg},
	}
}

// Fluid builds the fluid mix
func (o FluidRec) Fluid() (fld *fluid.Model, err error) {
	fld = &fluid.Model{Name: o.Name}
	err = fld.Init(o.Prms())
	if err != nil {
		return nil, err
	}
	return
}

// row returns the name and values of row i
func row(t *Table, i int, keys []string) (name string, vals []float64, err error) {
	name, err = t.Str(i, "Name")
	if err != nil {
		return
	}
	if name == "" {
		return "", nil, chk.Err("row %d does not have a name", i+1)
	}
	vals, err = t.Floats(i, keys...)
	if err != nil {
		err = chk.Err("%q: %v", name, err)
	}
	return
}
