// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdi implements 4D impedance sensitivity grids over reservoir pressure and
// water saturation
package fdi

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/trhallam/rockavo/mdl/fluid"
	"github.com/trhallam/rockavo/mdl/frame"
	"github.com/trhallam/rockavo/mdl/rock"
)

// mesh keys
var MeshKeys = []string{"image", "mesh_pres", "mesh_sw", "mesh_so", "mesh_sg", "mesh_kfl", "mesh_rhofl", "mesh_dryk", "mesh_dryg", "mesh_pimp", "mesh_dpimp"}

// vector keys
var VecKeys = []string{"pres", "sw", "so", "sg", "swso", "dimpcsat", "dimpcpres", "cpres", "csw"}

// Grid holds impedances of a reservoir rock evaluated on a pressure × water saturation mesh
//  Note: meshes are indexed as [saturation][pressure]
type Grid struct {

	// settings
	N        int  // number of pressures and saturations
	Absolute bool // image holds the impedance instead of the % change
	Nworkers int  // number of concurrent rows; 0 means runtime.NumCPU()

	// reference state
	RefImp   float64 // reference impedance
	InitPres float64 // initial reservoir pressure of the frame
	InitSw   float64 // initial water saturation of the fluid
	OilFrac  float64 // fraction of hydrocarbons that is oil

	// axes
	Pres []float64 // reservoir pressure
	Sw   []float64 // water saturation
	So   []float64 // oil saturation
	Sg   []float64 // gas saturation
	SwSo []float64 // water + oil saturation

	// meshes
	MeshPres  [][]float64 // pressure
	MeshSw    [][]float64 // water saturation
	MeshSo    [][]float64 // oil saturation
	MeshSg    [][]float64 // gas saturation
	MeshKfl   [][]float64 // bulk modulus of mixed fluid
	MeshRhofl [][]float64 // density of mixed fluid
	MeshDryK  [][]float64 // dry-frame bulk modulus
	MeshDryG  [][]float64 // dry-frame shear modulus
	MeshPimp  [][]float64 // acoustic impedance
	MeshDPimp [][]float64 // 100 (Pimp - RefImp) / RefImp

	// cross sections
	CurPres   float64   // pressure of the constant pressure section
	CurSat    float64   // saturation of the constant saturation section
	IPres     int       // index of CurPres in Pres
	ISat      int       // index of CurSat in Sw
	DImpCSat  []float64 // image along pressure at constant saturation
	DImpCPres []float64 // image along saturation at constant pressure
	CPres     []float64 // constant pressure line
	CSw       []float64 // constant saturation line
}

// New returns a new grid with n pressures and n saturations
func New(n int) (o *Grid, err error) {
	if n < 2 {
		return nil, chk.Err("4D grid needs at least 2 nodes per axis. n = %d is invalid", n)
	}
	o = &Grid{N: n}
	o.MeshPres = utl.Alloc(n, n)
	o.MeshSw = utl.Alloc(n, n)
	o.MeshSo = utl.Alloc(n, n)
	o.MeshSg = utl.Alloc(n, n)
	o.MeshKfl = utl.Alloc(n, n)
	o.MeshRhofl = utl.Alloc(n, n)
	o.MeshDryK = utl.Alloc(n, n)
	o.MeshDryG = utl.Alloc(n, n)
	o.MeshPimp = utl.Alloc(n, n)
	o.MeshDPimp = utl.Alloc(n, n)
	o.So = make([]float64, n)
	o.Sg = make([]float64, n)
	o.SwSo = make([]float64, n)
	o.CPres = make([]float64, n)
	o.CSw = make([]float64, n)
	o.DImpCSat = make([]float64, n)
	o.DImpCPres = make([]float64, n)
	return
}

// Update evaluates all cells for a reservoir frame and fluid between pmin and pmax
//  Input:
//   frm    -- dry frame with computed dry moduli; provides the stress regime
//   fld    -- fluid; its saturations set the oil/gas split and the initial Sw
//   refImp -- reference impedance of the % change
//  Note: frm and fld are not modified; each worker uses its own copies
//        the cross sections are set at the initial pressure (limited to pmax) and saturation
func (o *Grid) Update(frm *frame.DryFrame, fld *fluid.Model, pmin, pmax, refImp float64) (err error) {

	// check
	if frm == nil || fld == nil {
		return chk.Err("4D grid: frame and fluid are required")
	}
	if !frm.Ready() {
		return chk.Err("4D grid: dry-frame moduli of %q must be computed first", frm.Name)
	}
	if pmax <= pmin {
		return chk.Err("4D grid: pmax = %g must be greater than pmin = %g", pmax, pmin)
	}
	if refImp <= 0 {
		return chk.Err("4D grid: reference impedance must be positive. refImp = %g is invalid", refImp)
	}

	// axes
	n := o.N
	o.RefImp = refImp
	o.InitPres = frm.Stress.CurP
	o.InitSw = fld.Water.S
	o.Pres = utl.LinSpace(pmin, pmax, n)
	o.Sw = utl.LinSpace(0, 1, n)
	o.OilFrac = 1
	if hyd := fld.Oil.S + fld.Gas.S; hyd > 0 {
		o.OilFrac = fld.Oil.S / hyd
	}
	for i, sw := range o.Sw {
		o.So[i] = (1.0 - sw) * o.OilFrac
		o.Sg[i] = (1.0 - sw) * (1.0 - o.OilFrac)
		o.SwSo[i] = 1.0 - o.Sg[i]
	}

	// rows
	nw := o.Nworkers
	if nw < 1 {
		nw = runtime.NumCPU()
	}
	if nw > n {
		nw = n
	}
	rows := make(chan int, n)
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			r := rock.New(frm.Clone(), fld.Clone())
			for i := range rows {
				if e := o.row(r, i); e != nil && errs[w] == nil {
					errs[w] = e
				}
			}
		}(w)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	pc := o.InitPres
	if pc > pmax {
		pc = pmax
	}
	return o.CrossSections(pc, o.InitSw)
}

// row evaluates the cells of saturation row i with the rock owned by one worker
func (o *Grid) row(r *rock.Rock, i int) (err error) {
	r.Fluid.UpdateSaturation(o.Sw[i], o.So[i], o.Sg[i])
	for j, p := range o.Pres {
		err = r.Frame.UpdatePressure(p)
		if err != nil {
			return
		}
		r.Update()
		o.MeshPres[i][j] = p
		o.MeshSw[i][j] = o.Sw[i]
		o.MeshSo[i][j] = o.So[i]
		o.MeshSg[i][j] = o.Sg[i]
		o.MeshKfl[i][j] = r.Fluid.K
		o.MeshRhofl[i][j] = r.Fluid.Rho
		o.MeshDryK[i][j] = r.Frame.Kdry
		o.MeshDryG[i][j] = r.Frame.Gdry
		o.MeshPimp[i][j] = r.Pimp
		o.MeshDPimp[i][j] = 100.0 * (r.Pimp - o.RefImp) / o.RefImp
	}
	return
}

// Image returns the mesh displayed by charts
func (o Grid) Image() [][]float64 {
	if o.Absolute {
		return o.MeshPimp
	}
	return o.MeshDPimp
}

// SetAbsolute selects the absolute impedance (true) or the % change (false) as image and
// refreshes the cross sections
func (o *Grid) SetAbsolute(absolute bool) (err error) {
	o.Absolute = absolute
	if o.Pres == nil {
		return
	}
	return o.CrossSections(o.CurPres, o.CurSat)
}

// CrossSections extracts the image at constant pressure and at constant saturation
//  Note: the nodes are the first ones with axis values greater than or equal to the targets
func (o *Grid) CrossSections(pres, sat float64) (err error) {
	if o.Pres == nil {
		return chk.Err("4D grid: Update must be called before CrossSections")
	}
	ip, ok := firstGeq(o.Pres, pres)
	if !ok {
		return chk.Err("4D grid: pressure %g is beyond the pressure axis [%g, %g]", pres, o.Pres[0], o.Pres[o.N-1])
	}
	is, ok := firstGeq(o.Sw, sat)
	if !ok {
		return chk.Err("4D grid: saturation %g is beyond the saturation axis [0, 1]", sat)
	}
	o.CurPres, o.CurSat = pres, sat
	o.IPres, o.ISat = ip, is
	img := o.Image()
	for k := 0; k < o.N; k++ {
		o.CPres[k] = o.Pres[ip]
		o.CSw[k] = o.Sw[is]
		o.DImpCPres[k] = img[k][ip]
		o.DImpCSat[k] = img[is][k]
	}
	return
}

// Mesh returns the mesh corresponding to key; nil if key is unknown
func (o Grid) Mesh(key string) [][]float64 {
	switch key {
	case "image":
		return o.Image()
	case "mesh_pres":
		return o.MeshPres
	case "mesh_sw":
		return o.MeshSw
	case "mesh_so":
		return o.MeshSo
	case "mesh_sg":
		return o.MeshSg
	case "mesh_kfl":
		return o.MeshKfl
	case "mesh_rhofl":
		return o.MeshRhofl
	case "mesh_dryk":
		return o.MeshDryK
	case "mesh_dryg":
		return o.MeshDryG
	case "mesh_pimp":
		return o.MeshPimp
	case "mesh_dpimp":
		return o.MeshDPimp
	}
	return nil
}

// Vec returns the vector corresponding to key; nil if key is unknown
func (o Grid) Vec(key string) []float64 {
	switch key {
	case "pres":
		return o.Pres
	case "sw":
		return o.Sw
	case "so":
		return o.So
	case "sg":
		return o.Sg
	case "swso":
		return o.SwSo
	case "dimpcsat":
		return o.DImpCSat
	case "dimpcpres":
		return o.DImpCPres
	case "cpres":
		return o.CPres
	case "csw":
		return o.CSw
	}
	return nil
}

// firstGeq returns the index of the first value of x greater than or equal to v
func firstGeq(x []float64, v float64) (idx int, ok bool) {
	for i, a := range x {
		if a >= v {
			return i, true
		}
	}
	return -1, false
}
